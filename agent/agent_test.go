package agent

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestAgent_Run(t *testing.T) {
	a, _ := newTestAssistant(&fakeTransport{replies: []string{"they doubled"}})

	var out bytes.Buffer
	in := strings.NewReader("how did assets evolve?\nbye\n")

	repl := NewAgent(&out, in, a)
	if err := repl.Run(context.Background(), "data"); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !strings.Contains(out.String(), Greeting) {
		t.Errorf("Run() output missing greeting:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "they doubled") {
		t.Errorf("Run() output missing model reply:\n%s", out.String())
	}
}

func TestAgent_RunSurvivesFailedTurn(t *testing.T) {
	tr := &fakeTransport{err: context.DeadlineExceeded}
	a, _ := newTestAssistant(tr)

	var out bytes.Buffer
	in := strings.NewReader("hello\nbye\n")

	repl := NewAgent(&out, in, a)
	if err := repl.Run(context.Background(), "data"); err != nil {
		t.Fatalf("Run() returned the remote error instead of warning: %v", err)
	}
	if !strings.Contains(out.String(), "warning:") {
		t.Errorf("Run() output missing the transient warning:\n%s", out.String())
	}
}

func TestAgent_RunEOFIsClean(t *testing.T) {
	a, _ := newTestAssistant(&fakeTransport{})
	var out bytes.Buffer

	repl := NewAgent(&out, strings.NewReader(""), a)
	if err := repl.Run(context.Background(), "data"); err != nil {
		t.Errorf("Run() on EOF = %v, want nil", err)
	}
}
