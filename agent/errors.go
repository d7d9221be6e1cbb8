package agent

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports that no API client is configured (missing
	// credential). AI features are disabled but the rest of the analysis
	// is unaffected.
	ErrUnavailable = errors.New("agent: assistant unavailable, no API client configured")

	// ErrNoActiveSession reports a Send without a prior successful Start.
	ErrNoActiveSession = errors.New("agent: no active chat session, call Start first")
)

// RemoteSessionError reports a remote endpoint that rejected the creation
// of a chat session (invalid credential, quota exceeded).
type RemoteSessionError struct {
	Err error
}

func (e *RemoteSessionError) Error() string {
	return fmt.Sprintf("agent: creating remote chat session: %v", e.Err)
}

func (e *RemoteSessionError) Unwrap() error { return e.Err }

// RemoteCallError reports a failed turn within an otherwise usable session
// (rate limit, network, malformed response). The session stays active.
type RemoteCallError struct {
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("agent: sending message to remote session: %v", e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }
