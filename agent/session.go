package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Role tags a message of the conversation, using the genai vocabulary.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry of the conversation history.
type Message struct {
	Role    Role
	Content string
}

// transport is the opaque connection to the remote conversational endpoint.
// Turn-to-turn state (prior exchanges) lives on the remote side, so a turn
// only carries the new user text.
type transport interface {
	Send(ctx context.Context, text string) (string, error)
}

// chatTransport is the production transport, backed by a genai chat.
type chatTransport struct {
	chat *genai.Chat
}

func (t *chatTransport) Send(ctx context.Context, text string) (string, error) {
	resp, err := t.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Session is one grounded conversation.
//
// The grounding context is captured when the session is created and never
// updated: analyzing a new file requires a new session. History is
// append-only and owned by the session; it is never shared between
// sessions.
type Session struct {
	grounding string
	transport transport
	history   []Message
}

// Grounding returns the dataset snapshot this session is scoped to.
func (s *Session) Grounding() string { return s.grounding }

// History returns a copy of the conversation so far, in order.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) append(role Role, content string) {
	s.history = append(s.history, Message{Role: role, Content: content})
}
