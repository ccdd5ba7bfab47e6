package events

const (
	// KindInterviewerUtteranceStarted identifies the start of utterance playback.
	KindInterviewerUtteranceStarted Kind = "interviewer_speech.utterance_started"
	// KindInterviewerUtteranceEnded identifies utterance playback running to completion.
	KindInterviewerUtteranceEnded Kind = "interviewer_speech.utterance_ended"
)

// InterviewerUtteranceStarted marks the start of playback for an utterance.
type InterviewerUtteranceStarted struct {
	Base
	Text string
}

// NewInterviewerUtteranceStarted creates an utterance started event.
func NewInterviewerUtteranceStarted(text string) InterviewerUtteranceStarted {
	return InterviewerUtteranceStarted{Base: NewBase(KindInterviewerUtteranceStarted), Text: text}
}

// InterviewerUtteranceEnded marks playback completion for an utterance.
//
// Cancelled utterances do not emit this.
type InterviewerUtteranceEnded struct {
	Base
	Text string
}

// NewInterviewerUtteranceEnded creates an utterance ended event.
func NewInterviewerUtteranceEnded(text string) InterviewerUtteranceEnded {
	return InterviewerUtteranceEnded{Base: NewBase(KindInterviewerUtteranceEnded), Text: text}
}
