package questions

import (
	"context"
	"log/slog"
	"time"

	"interviewq/internal/llm"
)

type ServiceConfig struct {
	Client  llm.Client
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// Service generates interview questions from résumé text. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	client  llm.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client:  cfg.Client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

// Generate performs one bounded chat-completion call. Failures are reported
// through Result, never as a panic or a separate error.
func (s *Service) Generate(ctx context.Context, resumeText string) Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	content, err := s.client.ChatCompletion(ctx, llm.Request{
		Model:       s.model,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: BuildPrompt(resumeText)}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Stop:        stopSequences,
	})
	if err != nil {
		if llm.IsTimeout(err) {
			s.logger.Warn("llm call timed out",
				slog.Duration("timeout", s.timeout),
				slog.String("error", err.Error()))
			return Result{Outcome: OutcomeTimeout, Err: err}
		}
		s.logger.Error("llm call failed", slog.String("error", err.Error()))
		return Result{Outcome: OutcomeUpstreamError, Err: err}
	}

	questions := ParseQuestions(content)
	s.logger.Debug("questions generated", slog.Int("count", len(questions)))
	return Result{Outcome: OutcomeSuccess, Questions: questions}
}

// GenerateAsync runs Generate on its own goroutine. The channel receives
// exactly one Result and is then closed.
func (s *Service) GenerateAsync(ctx context.Context, resumeText string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		out <- s.Generate(ctx, resumeText)
	}()
	return out
}
