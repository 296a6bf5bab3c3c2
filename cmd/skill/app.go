package main

import (
	"encoding/json"
	"net/http"

	"bitbucket.org/sotavant/alexa-ai-skill/internal/logger"
	"bitbucket.org/sotavant/alexa-ai-skill/internal/models"
	"bitbucket.org/sotavant/alexa-ai-skill/internal/skill"
	"go.uber.org/zap"
)

// apologyText is spoken when request processing panics. Alexa expects a
// speech-shaped 200 even then.
const apologyText = "Sorry, I encountered an error. Please try again."

type app struct {
	skill *skill.Skill
}

func newApp(s *skill.Skill) *app {
	return &app{skill: s}
}

type errorBody struct {
	Error string `json:"error"`
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
		return
	}

	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Error("cannot decode request JSON body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid Alexa request"})
		return
	}

	if req.Request.Type == "" {
		logger.Log.Error("request without type")
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid Alexa request"})
		return
	}

	defer func() {
		if p := recover(); p != nil {
			logger.Log.Error("panic while processing request",
				zap.Any("panic", p),
				zap.String("type", req.Request.Type),
				zap.String("intent", req.Request.Intent.Name))
			writeJSON(w, http.StatusOK, models.NewSpeechResponse(apologyText, true))
		}
	}()

	resp := a.skill.Handle(ctx, &req)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	if err := enc.Encode(body); err != nil {
		logger.Log.Error("error encoding response", zap.Error(err))
	}
}
