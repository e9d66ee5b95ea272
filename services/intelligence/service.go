// File: services/intelligence/service.go
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelagent/models"
	"travelagent/utils"

	"go.uber.org/zap"
)

// ErrModelNotConfigured is returned when no API key was provided.
var ErrModelNotConfigured = errors.New("GEMINI_API_KEY not set in environment")

func NewChatService(model ChatModel, store ContextStore, timeout time.Duration, logger *zap.Logger) *DefaultChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultChatService{Model: model, Store: store, Timeout: timeout, Logger: logger}
}

func (s *DefaultChatService) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, utils.NewValidationError("message", "Message is required")
	}
	if s.Model == nil {
		return nil, ErrModelNotConfigured
	}

	var history []models.ChatTurn
	if req.SessionID != "" && s.Store != nil {
		h, err := s.Store.Get(ctx, req.SessionID)
		if err != nil {
			s.Logger.Warn("Failed to load chat history", zap.String("session", req.SessionID), zap.Error(err))
		}
		history = h
	}

	prompt, err := buildPrompt(message, req.Context)
	if err != nil {
		return nil, err
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	reply, err := s.Model.Reply(ctx, history, prompt)
	if err != nil {
		s.Logger.Error("Chat model call failed", zap.Error(err))
		return nil, err
	}

	if req.SessionID != "" && s.Store != nil {
		turns := []models.ChatTurn{{Role: "user", Text: message}, {Role: "model", Text: reply}}
		if err := s.Store.Append(ctx, req.SessionID, turns...); err != nil {
			s.Logger.Warn("Failed to save chat history", zap.String("session", req.SessionID), zap.Error(err))
		}
	}

	return &models.ChatResponse{Success: true, Response: reply, SessionID: req.SessionID}, nil
}

// buildPrompt appends the page context the frontend sends, if any, as JSON.
func buildPrompt(message string, pageContext map[string]interface{}) (string, error) {
	if len(pageContext) == 0 {
		return message, nil
	}
	b, err := json.Marshal(pageContext)
	if err != nil {
		return "", fmt.Errorf("encode chat context: %w", err)
	}
	return message + "\n\nContext: " + string(b), nil
}
