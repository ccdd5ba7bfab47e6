package events

const (
	// KindSessionStarted identifies the start of a fresh interview session.
	KindSessionStarted Kind = "session.started"
	// KindSessionCompleted identifies engine-signalled session completion.
	KindSessionCompleted Kind = "session.completed"
	// KindSessionReset identifies an explicit reset back to not-started.
	KindSessionReset Kind = "session.reset"
)

// SessionStarted marks that a fresh session replaced any prior one.
type SessionStarted struct {
	Base
	SessionID string
}

// NewSessionStarted creates a session started event.
func NewSessionStarted(sessionID string) SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted), SessionID: sessionID}
}

// SessionCompleted carries the final closing message of a completed session.
type SessionCompleted struct {
	Base
	FinalMessage string
}

// NewSessionCompleted creates a session completed event.
func NewSessionCompleted(finalMessage string) SessionCompleted {
	return SessionCompleted{Base: NewBase(KindSessionCompleted), FinalMessage: finalMessage}
}

// SessionReset marks that the session was discarded.
type SessionReset struct{ Base }

// NewSessionReset creates a session reset event.
func NewSessionReset() SessionReset {
	return SessionReset{Base: NewBase(KindSessionReset)}
}
