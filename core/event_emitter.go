package orchestration

import "github.com/voxprep/interview-core/core/events"

type eventEmitter func(event events.Event)

func noopEventEmitter(events.Event) {}

// newCallbackEventEmitter translates internal events into the caller's
// Orchestrate callbacks. Unhandled kinds are dropped silently.
func newCallbackEventEmitter(opts OrchestrateOptions) eventEmitter {
	return func(event events.Event) {
		switch e := event.(type) {
		case events.SessionStarted:
			if opts.sessionStartedCallback != nil {
				opts.sessionStartedCallback(e.SessionID)
			}
		case events.SessionCompleted:
			if opts.completedCallback != nil {
				opts.completedCallback(e.FinalMessage)
			}
		case events.SessionReset:
			if opts.sessionResetCallback != nil {
				opts.sessionResetCallback()
			}
		case events.QuestionAsked:
			if opts.questionCallback != nil {
				opts.questionCallback(e.Question, e.AdvisorTip)
			}
			if opts.phaseChangedCallback != nil {
				opts.phaseChangedCallback(e.Phase, e.Topic)
			}
		case events.UserTranscriptFinal:
			if opts.transcriptCallback != nil {
				opts.transcriptCallback(e.Transcript)
			}
		case events.ListeningStarted:
			if opts.listeningCallback != nil {
				opts.listeningCallback(true)
			}
		case events.ListeningStopped:
			if opts.listeningCallback != nil {
				opts.listeningCallback(false)
			}
		case events.CaptureFailed:
			if opts.captureErrorCallback != nil {
				opts.captureErrorCallback(e.Reason)
			}
		case events.TurnFailed:
			if opts.turnErrorCallback != nil {
				opts.turnErrorCallback(e.Reason)
			}
		case events.InterviewerUtteranceEnded:
			if opts.utteranceEndedCallback != nil {
				opts.utteranceEndedCallback(e.Text)
			}
		}
	}
}
