package models

// ChatMessage is one turn of conversation history as exchanged with the
// frontend and forwarded to the hosted-model relay.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// TurnRequest is the payload coming from the frontend into /api/chat/turn.
type TurnRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message" binding:"required"`
}

// TurnResponse is what the chat handler returns to the frontend.
type TurnResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	Phase     Phase  `json:"phase"`
	Intent    string `json:"intent,omitempty"`
}

// StreamRequest is the payload for /api/chat/stream: the full ordered
// conversation history to forward to the hosted model.
type StreamRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}
