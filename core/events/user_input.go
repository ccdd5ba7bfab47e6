package events

const (
	// KindListeningStarted identifies the start of a capture activation.
	KindListeningStarted Kind = "user_input.listening_started"
	// KindListeningStopped identifies an activation ending without a transcript.
	KindListeningStopped Kind = "user_input.listening_stopped"
	// KindUserTranscriptFinal identifies the final transcript for the activation.
	KindUserTranscriptFinal Kind = "user_input.transcript_final"
	// KindCaptureFailed identifies a failed capture activation.
	KindCaptureFailed Kind = "user_input.capture_failed"
)

// ListeningStarted marks the start of a capture activation.
type ListeningStarted struct{ Base }

// NewListeningStarted creates a listening started event.
func NewListeningStarted() ListeningStarted {
	return ListeningStarted{Base: NewBase(KindListeningStarted)}
}

// ListeningStopped marks an activation that ended without a transcript.
type ListeningStopped struct{ Base }

// NewListeningStopped creates a listening stopped event.
func NewListeningStopped() ListeningStopped {
	return ListeningStopped{Base: NewBase(KindListeningStopped)}
}

// UserTranscriptFinal carries the single final transcript of an activation.
type UserTranscriptFinal struct {
	Base
	Transcript string
}

// NewUserTranscriptFinal creates a final transcript event.
func NewUserTranscriptFinal(transcript string) UserTranscriptFinal {
	return UserTranscriptFinal{Base: NewBase(KindUserTranscriptFinal), Transcript: transcript}
}

// CaptureFailed carries the reason a capture activation failed.
type CaptureFailed struct {
	Base
	Reason string
}

// NewCaptureFailed creates a capture failed event.
func NewCaptureFailed(reason string) CaptureFailed {
	return CaptureFailed{Base: NewBase(KindCaptureFailed), Reason: reason}
}
