package ai

import (
	"context"
	"strings"
	"time"

	"bitbucket.org/sotavant/alexa-ai-skill/internal/logger"
	"go.uber.org/zap"
)

// FallbackText is spoken whenever the completion service cannot be reached.
const FallbackText = "I'm having trouble connecting to my knowledge base right now. Please try again in a moment."

// Alexa rejects speech payloads over 8000 characters.
const (
	speechLimit   = 8000
	truncateLimit = 7900
	ellipsis      = "..."
)

// Completer issues one synchronous chat-completion request.
type Completer interface {
	Complete(ctx context.Context, query string) (string, error)
}

// Responder turns a free-text query into speech-sized text. Every failure of
// the underlying completer resolves to FallbackText, never an error.
type Responder struct {
	completer Completer
	timeout   time.Duration
}

func NewResponder(c Completer, timeout time.Duration) *Responder {
	return &Responder{completer: c, timeout: timeout}
}

// Respond returns the completion for query. The userID is not used yet,
// it is kept for future per-user context.
func (r *Responder) Respond(ctx context.Context, query, userID string) string {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.completer.Complete(ctx, query)
	if err != nil {
		logger.Log.Error("completion request failed",
			zap.String("userId", userID),
			zap.Error(err))
		return FallbackText
	}

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Log.Error("completion returned no text", zap.String("userId", userID))
		return FallbackText
	}

	return Truncate(text)
}

// Truncate caps text at the Alexa payload limit, marking the cut with an
// ellipsis.
func Truncate(text string) string {
	if len(text) > speechLimit {
		return text[:truncateLimit] + ellipsis
	}
	return text
}
