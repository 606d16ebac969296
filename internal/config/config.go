package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultLLMAPIURL    = "http://127.0.0.1:1234/v1/chat/completions"
	DefaultLLMModelName = "deepseek-r1-distill-qwen-14b"
	DefaultHTTPAddr     = "127.0.0.1:5001"
	DefaultLLMTimeout   = 85 * time.Second
)

type Config struct {
	HTTPAddr    string
	LogLevel    string
	CORSOrigins []string
	LLM         LLMConfig
}

// LLMConfig describes the chat-completion upstream.
type LLMConfig struct {
	APIURL    string
	ModelName string
	Timeout   time.Duration
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", DefaultHTTPAddr)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.CORSOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", ""))

	timeout, err := parseDuration(getEnv("LLM_TIMEOUT", DefaultLLMTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("parse LLM_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("parse LLM_TIMEOUT: must be positive, got %s", timeout)
	}

	cfg.LLM = LLMConfig{
		APIURL:    getEnv("LLM_API_URL", DefaultLLMAPIURL),
		ModelName: getEnv("LLM_MODEL_NAME", DefaultLLMModelName),
		Timeout:   timeout,
	}
	if strings.TrimSpace(cfg.LLM.APIURL) == "" {
		return Config{}, errors.New("LLM_API_URL is empty")
	}
	if strings.TrimSpace(cfg.LLM.ModelName) == "" {
		return Config{}, errors.New("LLM_MODEL_NAME is empty")
	}

	return cfg, nil
}

// LoadDotEnv populates the environment from a .env file without overriding
// variables that are already set. A missing file is ignored unless required.
func LoadDotEnv(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
