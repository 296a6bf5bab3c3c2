package ai_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bitbucket.org/sotavant/alexa-ai-skill/internal/ai"
	"bitbucket.org/sotavant/alexa-ai-skill/internal/ai/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mock.NewMockCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), "what is Go").
		Return("  Go is a programming language.  ", nil)

	r := ai.NewResponder(completer, time.Second)

	text := r.Respond(context.Background(), "what is Go", "user-1")
	assert.Equal(t, "Go is a programming language.", text)
}

func TestRespondCompleterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mock.NewMockCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("", errors.New("connection refused"))

	r := ai.NewResponder(completer, time.Second)

	text := r.Respond(context.Background(), "anything", "user-1")
	assert.Equal(t, ai.FallbackText, text)
}

func TestRespondEmptyCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mock.NewMockCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return("   ", nil)

	r := ai.NewResponder(completer, time.Second)

	text := r.Respond(context.Background(), "anything", "user-1")
	assert.Equal(t, ai.FallbackText, text)
}

func TestRespondSetsDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mock.NewMockCompleter(ctrl)

	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, query string) (string, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "completion context must carry a deadline")
			return "ok", nil
		})

	r := ai.NewResponder(completer, 3*time.Second)

	text := r.Respond(context.Background(), "anything", "user-1")
	assert.Equal(t, "ok", text)
}

func TestRespondTruncatesLongCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	completer := mock.NewMockCompleter(ctrl)

	long := strings.Repeat("a", 9000)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		Return(long, nil)

	r := ai.NewResponder(completer, time.Second)

	text := r.Respond(context.Background(), "anything", "user-1")
	require.LessOrEqual(t, len(text), 8000)
	assert.Equal(t, 7903, len(text))
	assert.True(t, strings.HasSuffix(text, "..."))
	assert.Equal(t, strings.Repeat("a", 7900), text[:7900])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", ai.Truncate("short"))

	exact := strings.Repeat("b", 8000)
	assert.Equal(t, exact, ai.Truncate(exact))

	over := strings.Repeat("b", 8001)
	got := ai.Truncate(over)
	assert.Equal(t, 7903, len(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}
