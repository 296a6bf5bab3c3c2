package skill

import (
	"context"

	"bitbucket.org/sotavant/alexa-ai-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-ai-skill/internal/models"
	"go.uber.org/zap"
)

const (
	greetingText    = "Hello! I'm your AI assistant. How can I help you today?"
	repromptText    = "What would you like me to help you with?"
	helpText        = "I'm your AI assistant. You can ask me questions, get information, or have a conversation. Just say what you need help with!"
	goodbyeText     = "Goodbye!"
	repeatText      = "I didn't catch what you said. Could you repeat that?"
	notUnderstood   = "I didn't understand that request."
	unknownTypeText = "Unknown request type"
	unknownUserID   = "unknown"
)

// Responder produces speech text for a free-text query. It must never fail:
// any outbound trouble resolves to degraded speech text.
type Responder interface {
	Respond(ctx context.Context, query, userID string) string
}

// Skill routes an Alexa request to exactly one response. Handle never
// returns an error; every failure path yields valid degraded speech.
type Skill struct {
	responder Responder
}

func New(r Responder) *Skill {
	return &Skill{responder: r}
}

func (s *Skill) Handle(ctx context.Context, req *models.Request) models.Response {
	switch req.Request.Type {
	case models.TypeLaunchRequest:
		return models.NewSpeechResponse(greetingText, false).WithReprompt(repromptText)
	case models.TypeIntentRequest:
		return s.handleIntent(ctx, req)
	case models.TypeSessionEndedRequest:
		return models.NewEmptyResponse()
	default:
		logger.Log.Error("unknown request type", zap.String("type", req.Request.Type))
		return models.NewSpeechResponse(unknownTypeText, false)
	}
}

func (s *Skill) handleIntent(ctx context.Context, req *models.Request) models.Response {
	intent := req.Request.Intent

	switch intent.Name {
	case models.IntentChat:
		return s.handleChat(ctx, req)
	case models.IntentHelp:
		return models.NewSpeechResponse(helpText, false)
	case models.IntentCancel, models.IntentStop:
		return models.NewSpeechResponse(goodbyeText, true)
	default:
		logger.Log.Error("unknown intent", zap.String("intent", intent.Name))
		return models.NewSpeechResponse(notUnderstood, false)
	}
}

func (s *Skill) handleChat(ctx context.Context, req *models.Request) models.Response {
	query := req.Request.Intent.SlotValue(models.SlotQuery)
	if query == "" {
		logger.Log.Error("chat intent without query slot")
		return models.NewSpeechResponse(repeatText, false)
	}

	userID := req.Session.User.UserID
	if userID == "" {
		userID = unknownUserID
	}

	text := s.responder.Respond(ctx, query, userID)
	return models.NewSpeechResponse(text, false)
}
