package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lamaison/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// User-facing fallback strings for relay failures. The frontend shows these
// verbatim; partial streams are never presented as success.
const (
	MsgRateLimited = "We're receiving too many requests right now. Please try again in a moment."
	MsgNoCredits   = "AI service credits exhausted. Please try again later."
	MsgGeneric     = "Something went wrong. Please try again."
)

// Client forwards conversation history to the hosted model and streams the
// reply back. It is the only fallible boundary in the system; the
// deterministic engine never touches it.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient connects to the hosted model. The model name comes from
// configuration so deployments can track gateway model churn without a
// rebuild.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create model client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// buildChat splits the ordered history into prior turns and the message to
// send. Roles map user->user and assistant->model.
func (c *Client) buildChat(history []models.ChatMessage) (*genai.ChatSession, string, error) {
	if len(history) == 0 {
		return nil, "", errors.New("empty conversation history")
	}

	last := history[len(history)-1]
	if last.Role != "user" {
		return nil, "", errors.New("last turn must be from the user")
	}

	cs := c.model.StartChat()
	for _, msg := range history[:len(history)-1] {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return cs, last.Content, nil
}

// Reply returns the model's full answer in one piece. Used for the
// deterministic engine's unknown-intent fallback.
func (c *Client) Reply(ctx context.Context, history []models.ChatMessage) (string, error) {
	cs, message, err := c.buildChat(history)
	if err != nil {
		return "", err
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}
	return collectText(resp), nil
}

// StreamReply streams the model's answer incrementally through onDelta.
// Cancelling ctx terminates the stream early; the error returned then wraps
// the context error and no further deltas are delivered.
func (c *Client) StreamReply(ctx context.Context, history []models.ChatMessage, onDelta func(string)) error {
	cs, message, err := c.buildChat(history)
	if err != nil {
		return err
	}

	iter := cs.SendMessageStream(ctx, genai.Text(message))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream reply: %w", err)
		}
		if text := collectText(resp); text != "" {
			onDelta(text)
		}
	}
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	return sb.String()
}

// UserMessage maps a relay error to the single readable string shown to
// the user.
func UserMessage(err error) string {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return MsgRateLimited
		case http.StatusPaymentRequired:
			return MsgNoCredits
		}
	}
	return MsgGeneric
}

// StatusCode maps a relay error to the HTTP status surfaced to the
// frontend.
func StatusCode(err error) int {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests, http.StatusPaymentRequired:
			return apiErr.Code
		}
	}
	return http.StatusInternalServerError
}
