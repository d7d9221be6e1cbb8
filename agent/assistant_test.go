package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeTransport scripts the remote endpoint for tests.
type fakeTransport struct {
	replies []string
	err     error
	calls   int
}

func (f *fakeTransport) Send(_ context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "echo: " + text, nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

// newTestAssistant returns an assistant dialing the given fake instead of
// the real endpoint, and records the instruction it was started with.
func newTestAssistant(tr *fakeTransport) (*Assistant, *string) {
	var instruction string
	a := New(nil, "", "")
	a.dial = func(_ context.Context, instr string) (transport, error) {
		instruction = instr
		return tr, nil
	}
	return a, &instruction
}

func TestAssistant_StartAppendsGreeting(t *testing.T) {
	a, instruction := newTestAssistant(&fakeTransport{})

	if err := a.Start(context.Background(), "| TOTAL ASSETS | 100 | 200 |"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	history := a.History()
	if len(history) != 1 {
		t.Fatalf("history length after Start = %d, want 1", len(history))
	}
	if history[0].Role != RoleModel || history[0].Content != Greeting {
		t.Errorf("first message = %+v, want the model greeting", history[0])
	}
	if !strings.Contains(*instruction, "| TOTAL ASSETS | 100 | 200 |") {
		t.Errorf("system instruction does not embed the grounding context:\n%s", *instruction)
	}
	if !strings.Contains(*instruction, "English") {
		t.Errorf("system instruction does not name the answer language:\n%s", *instruction)
	}
}

func TestAssistant_StartWithoutClient(t *testing.T) {
	a := New(nil, "", "")
	if err := a.Start(context.Background(), "data"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Start() error = %v, want ErrUnavailable", err)
	}
}

func TestAssistant_StartRemoteFailure(t *testing.T) {
	a := New(nil, "", "")
	a.dial = func(context.Context, string) (transport, error) {
		return nil, fmt.Errorf("quota exceeded")
	}

	err := a.Start(context.Background(), "data")
	var remote *RemoteSessionError
	if !errors.As(err, &remote) {
		t.Fatalf("Start() error = %v, want *RemoteSessionError", err)
	}
	if a.Active() {
		t.Error("assistant is active after a failed Start")
	}
}

func TestAssistant_SendRoundTrip(t *testing.T) {
	a, _ := newTestAssistant(&fakeTransport{replies: []string{"assets doubled"}})
	if err := a.Start(context.Background(), "data"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	reply, err := a.Send(context.Background(), "how did assets evolve?")
	if err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	if reply != "assets doubled" {
		t.Errorf("Send() = %q, want %q", reply, "assets doubled")
	}

	history := a.History()
	if len(history) != 3 { // greeting, user, model
		t.Fatalf("history length = %d, want 3", len(history))
	}
	if history[1].Role != RoleUser || history[2].Role != RoleModel {
		t.Errorf("history roles = %v %v, want user then model", history[1].Role, history[2].Role)
	}
}

func TestAssistant_SendWithoutSession(t *testing.T) {
	a, _ := newTestAssistant(&fakeTransport{})
	if _, err := a.Send(context.Background(), "hello"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Send() error = %v, want ErrNoActiveSession", err)
	}
}

func TestAssistant_ResetThenSend(t *testing.T) {
	a, _ := newTestAssistant(&fakeTransport{})
	if err := a.Start(context.Background(), "data"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	a.Reset()
	if a.Active() {
		t.Fatal("assistant still active after Reset")
	}
	if _, err := a.Send(context.Background(), "hello"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Send() after Reset error = %v, want ErrNoActiveSession", err)
	}

	// A fresh Start builds a fresh session with only the greeting.
	if err := a.Start(context.Background(), "data"); err != nil {
		t.Fatalf("second Start() failed: %v", err)
	}
	if got := len(a.History()); got != 1 {
		t.Errorf("history length after restart = %d, want 1", got)
	}
}

func TestAssistant_FailedSendRecordsSentinel(t *testing.T) {
	tr := &fakeTransport{err: fmt.Errorf("rate limited")}
	a, _ := newTestAssistant(tr)
	if err := a.Start(context.Background(), "data"); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	before := len(a.History())

	_, err := a.Send(context.Background(), "hello")
	var remote *RemoteCallError
	if !errors.As(err, &remote) {
		t.Fatalf("Send() error = %v, want *RemoteCallError", err)
	}

	history := a.History()
	// The user turn and the sentinel reply, never just one entry.
	if got := len(history) - before; got != 2 {
		t.Fatalf("history grew by %d entries on failure, want 2", got)
	}
	last := history[len(history)-1]
	if last.Role != RoleModel || last.Content != sentinelFailure {
		t.Errorf("last message = %+v, want the sentinel failure message", last)
	}
	if !a.Active() {
		t.Error("session not active after a failed turn")
	}

	// The endpoint remains usable for subsequent turns.
	tr.err = nil
	if _, err := a.Send(context.Background(), "again"); err != nil {
		t.Errorf("Send() after recovery failed: %v", err)
	}
}
