package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the model used for both chat sessions and commentary.
const DefaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a professional and friendly financial
analysis assistant, answering questions grounded in the financial statement
analysis provided below.

Current financial analysis of the company:
%s

Use this data to answer the user's questions. When the answer is not in the
table, fall back to general financial knowledge. Always answer in %s.`

// Greeting is the synthetic assistant message opening every session.
const Greeting = "Hello! I am the AI assistant. Ask me anything about the financial statement you just uploaded."

// sentinelFailure is recorded in history in place of a reply when the
// remote call fails, so the transcript stays structurally consistent.
const sentinelFailure = "Error: no reply could be obtained from the AI for this message."

// Assistant manages at most one active chat session at a time, scoped to
// one analyzed statement.
type Assistant struct {
	Model string
	Lang  string

	session *Session

	// dial opens the remote session; tests substitute a fake.
	dial func(ctx context.Context, instruction string) (transport, error)
}

// New creates an Assistant speaking through the given genai client. A nil
// client makes every Start fail with ErrUnavailable.
func New(client *genai.Client, model, lang string) *Assistant {
	a := &Assistant{Model: model, Lang: lang}
	if a.Model == "" {
		a.Model = DefaultModel
	}
	if a.Lang == "" {
		a.Lang = "English"
	}
	if client != nil {
		a.dial = func(ctx context.Context, instruction string) (transport, error) {
			config := &genai.GenerateContentConfig{
				SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
			}
			chat, err := client.Chats.Create(ctx, a.Model, config, nil)
			if err != nil {
				return nil, err
			}
			return &chatTransport{chat: chat}, nil
		}
	}
	return a
}

// Active reports whether a session exists.
func (a *Assistant) Active() bool { return a.session != nil }

// Session returns the active session, or nil.
func (a *Assistant) Session() *Session { return a.session }

// Start opens a new remote chat session grounded in the given dataset
// snapshot and records the opening greeting. Any previous session is
// discarded first.
func (a *Assistant) Start(ctx context.Context, grounding string) error {
	a.Reset()
	if a.dial == nil {
		return ErrUnavailable
	}
	instruction := fmt.Sprintf(systemInstruction, grounding, a.Lang)
	tr, err := a.dial(ctx, instruction)
	if err != nil {
		return &RemoteSessionError{Err: err}
	}
	s := &Session{grounding: grounding, transport: tr}
	s.append(RoleModel, Greeting)
	a.session = s
	return nil
}

// Reset discards the current session and its history unconditionally.
func (a *Assistant) Reset() { a.session = nil }

// Send forwards one user turn to the remote session and returns the reply.
//
// The user turn is always recorded. On a remote failure the sentinel
// failure message is recorded in place of the reply, so the history grows
// by exactly two entries either way, and the returned *RemoteCallError
// carries the cause for the caller to surface as a transient warning. The
// session remains active after a failed turn.
func (a *Assistant) Send(ctx context.Context, text string) (string, error) {
	if a.session == nil {
		return "", ErrNoActiveSession
	}
	a.session.append(RoleUser, text)
	reply, err := a.session.transport.Send(ctx, text)
	if err != nil {
		a.session.append(RoleModel, sentinelFailure)
		return "", &RemoteCallError{Err: err}
	}
	a.session.append(RoleModel, reply)
	return reply, nil
}

// History returns the conversation of the active session, or nil.
func (a *Assistant) History() []Message {
	if a.session == nil {
		return nil
	}
	return a.session.History()
}
