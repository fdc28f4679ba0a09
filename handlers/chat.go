package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"lamaison/models"
	"lamaison/services/dialog"
	"lamaison/services/relay"
	"lamaison/services/session"
	"lamaison/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader carries the session ID when the frontend prefers headers
// over the JSON body.
const SessionHeader = "X-Session-ID"

// ChatHandler serves the conversational endpoints. Every turn goes through
// the deterministic engine first; the hosted-model relay is consulted only
// for unknown-intent turns when the fallback is enabled, and for the raw
// streaming endpoint.
type ChatHandler struct {
	Engine        *dialog.Engine
	Sessions      session.Store
	Relay         *relay.Client // nil when no API key is configured
	RelayFallback bool
}

func NewChatHandler(engine *dialog.Engine, sessions session.Store, relayClient *relay.Client, relayFallback bool) *ChatHandler {
	return &ChatHandler{
		Engine:        engine,
		Sessions:      sessions,
		Relay:         relayClient,
		RelayFallback: relayFallback,
	}
}

// Greeting returns the opening message shown before the first user turn.
func (h *ChatHandler) Greeting(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reply": h.Engine.Greeting()})
}

// Turn processes one user message through the dialog engine.
func (h *ChatHandler) Turn(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat turn request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetHeader(SessionHeader)
	}
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	ctx := c.Request.Context()
	state, err := h.Sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load session", zap.String("session_id", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Session unavailable", "Could not load conversation state")
		return
	}

	next, turn := h.Engine.ProcessTurn(state, req.Message)

	reply := turn.Reply
	if turn.FallbackEligible && h.RelayFallback && h.Relay != nil {
		reply = h.relayFallbackReply(ctx, req.Message, reply)
	}

	if err := h.Sessions.Set(ctx, sessionID, next); err != nil {
		logger.Error("Failed to save session", zap.String("session_id", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Session unavailable", "Could not save conversation state")
		return
	}

	c.Header(SessionHeader, sessionID)
	c.JSON(http.StatusOK, models.TurnResponse{
		SessionID: sessionID,
		Reply:     reply,
		Phase:     next.Phase,
		Intent:    string(turn.Intent),
	})
}

// relayFallbackReply asks the hosted model to answer a turn the engine had
// nothing deterministic for. The canned reply stands in when the relay
// fails.
func (h *ChatHandler) relayFallbackReply(ctx context.Context, message, canned string) string {
	logger := utils.GetLogger()

	text, err := h.Relay.Reply(ctx, []models.ChatMessage{{Role: "user", Content: message}})
	if err != nil {
		logger.Warn("Relay fallback failed", zap.Error(err))
		return canned
	}
	if text == "" {
		return canned
	}
	return text
}

// Stream forwards the full conversation history to the hosted model and
// streams the reply back as server-sent events, terminated by a [DONE]
// marker. A failure before the first delta is reported as a JSON error; a
// failure mid-stream is surfaced as a final error event so the client
// never mistakes a truncated answer for a complete one.
func (h *ChatHandler) Stream(c *gin.Context) {
	logger := utils.GetLogger()

	if h.Relay == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Chat relay is not configured", "")
		return
	}

	var req models.StreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat stream request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	started := false
	startStream := func() {
		if started {
			return
		}
		started = true
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.WriteHeader(http.StatusOK)
	}

	err := h.Relay.StreamReply(c.Request.Context(), req.Messages, func(delta string) {
		startStream()
		payload, _ := json.Marshal(gin.H{"delta": delta})
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
		c.Writer.Flush()
	})

	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Client went away mid-stream; nothing left to tell it.
			return
		}
		logger.Error("Relay stream failed", zap.Error(err))
		if !started {
			c.JSON(relay.StatusCode(err), gin.H{"error": relay.UserMessage(err)})
			return
		}
		payload, _ := json.Marshal(gin.H{"error": relay.UserMessage(err)})
		fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	}

	startStream()
	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}
