package orchestration

import "errors"

var (
	// ErrSessionNotStarted rejects turn operations before a session exists.
	ErrSessionNotStarted = errors.New("interview session not started")
	// ErrSessionCompleted rejects turn operations after completion; the
	// session is terminal.
	ErrSessionCompleted = errors.New("interview session already completed")
	// ErrTurnInFlight rejects a turn while another advance-turn call is
	// outstanding. Calls are rejected, never queued.
	ErrTurnInFlight = errors.New("turn request already in flight")
	// ErrNoTurnEngine rejects turn operations when no engine client was
	// configured.
	ErrNoTurnEngine = errors.New("no turn engine configured")
	// ErrCaptureUnavailable signals, persistently, that the host cannot
	// capture speech; the session still functions via Skip.
	ErrCaptureUnavailable = errors.New("speech capture unavailable")
	// ErrAlreadyListening rejects a listening activation while one is active.
	ErrAlreadyListening = errors.New("capture activation already in progress")
)
