// File: services/intelligence/interface.go
package ai

import (
	"context"
	"time"

	"travelagent/models"

	"go.uber.org/zap"
)

const systemPrompt = "You are a helpful travel assistant for a booking site offering flights, hotels and local transport. " +
	"Answer concisely. Prices on the site are shown in Indian rupees."

// ChatModel is a generative model that can continue a conversation.
type ChatModel interface {
	Reply(ctx context.Context, history []models.ChatTurn, prompt string) (string, error)
}

// ChatService answers chat messages from the frontend.
type ChatService interface {
	Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

// DefaultChatService forwards messages to Model. Store is consulted only
// for requests carrying a session id.
type DefaultChatService struct {
	Model   ChatModel
	Store   ContextStore
	Timeout time.Duration
	Logger  *zap.Logger
}
