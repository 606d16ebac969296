package questions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"interviewq/internal/httpserver"
	"interviewq/internal/middleware"
)

// Generator is the part of Service the HTTP layer depends on.
type Generator interface {
	GenerateAsync(ctx context.Context, resumeText string) <-chan Result
}

type ResumeRequest struct {
	ResumeText *string `json:"resume_text"`
}

type QuestionResponse struct {
	Questions []string `json:"questions"`
}

type Handler struct {
	generator Generator
	logger    *slog.Logger
}

func NewHandler(generator Generator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{generator: generator, logger: logger}
}

// ServeHTTP answers 200 for every well-formed request; upstream problems are
// folded into the question list.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r.Body)
	if err != nil {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	res := <-h.generator.GenerateAsync(r.Context(), *req.ResumeText)
	h.logger.Info("questions request handled",
		slog.String("outcome", res.Outcome.String()),
		slog.Int("questions", len(res.Questions)),
		slog.String("request_id", middleware.RequestIDFromContext(r.Context())))

	httpserver.WriteJSON(w, http.StatusOK, QuestionResponse{Questions: res.Degraded()})
}

func decodeRequest(body io.Reader) (ResumeRequest, error) {
	var req ResumeRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, errors.New("request body is required")
		}
		return req, errors.New("invalid JSON body: " + err.Error())
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return req, errors.New("invalid JSON body: unexpected data after object")
	}
	if req.ResumeText == nil {
		return req, errors.New("resume_text: field required")
	}
	return req, nil
}
