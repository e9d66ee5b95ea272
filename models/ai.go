package models

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	Message   string                 `json:"message"`              // user's message
	Context   map[string]interface{} `json:"context"`              // optional page context (current search etc.)
	SessionID string                 `json:"session_id,omitempty"` // keeps history across turns when set
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Success   bool   `json:"success"`
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatTurn is one stored message of a conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}
