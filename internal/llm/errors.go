package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

const snippetLimit = 200

var (
	ErrInvalidModel   = errors.New("model is required")
	ErrNoChoices      = errors.New("response has no choices")
	ErrMissingContent = errors.New("first choice has no message content")
)

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode  int
	BodySnippet string
}

func (e *StatusError) Error() string {
	if e.BodySnippet == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.BodySnippet)
}

// IsTimeout reports whether err was caused by a deadline or a client timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func bodySnippet(body []byte) string {
	if len(body) <= snippetLimit {
		return string(body)
	}
	return string(body[:snippetLimit])
}
