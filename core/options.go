package orchestration

import (
	"context"

	"github.com/voxprep/interview-core/core/audio"
	"github.com/voxprep/interview-core/core/interview"
	"github.com/voxprep/interview-core/core/speechtotext"
	"github.com/voxprep/interview-core/core/texttospeech"
)

// TurnEngine advances the interview by one turn against the remote question
// generation engine.
type TurnEngine interface {
	AdvanceTurn(ctx context.Context, request interview.TurnRequest) (*interview.TurnResult, error)
}

// SpeechSynthesizer converts interviewer text into audible speech. Speak
// blocks until the utterance finishes or ctx is cancelled.
type SpeechSynthesizer interface {
	Speak(ctx context.Context, text string, opts ...texttospeech.SpeechOption) error
}

// SpeechRecognizer captures one spoken answer per activation. SendAudio
// streams microphone audio into the active activation.
type SpeechRecognizer interface {
	Capture(ctx context.Context, opts ...speechtotext.CaptureOption) error
	SendAudio(audio []byte) error
	Stop() error
	Available() bool
}

// HostAudio is the duplex host audio device: playback for interviewer
// speech, capture for the candidate's microphone.
type HostAudio interface {
	StartCapture(ctx context.Context, onAudio func(audio []byte)) error
	StopCapture() error
	SendAudio(audio []byte) error
	ClearBuffer()
	NotifyDrained(callback func())
	EncodingInfo() audio.EncodingInfo
	CaptureEncodingInfo() audio.EncodingInfo
}

// ProfileCache persists the candidate profile between runs.
type ProfileCache interface {
	PutProfile(ctx context.Context, job, resume string) error
	Profile(ctx context.Context) (job string, resume string, err error)
}

type OrchestratorOption func(*Orchestrator)

// WithTurnEngine sets the engine client that advances the interview.
func WithTurnEngine(engine TurnEngine) OrchestratorOption {
	return func(o *Orchestrator) {
		o.engine = engine
	}
}

// WithSpeechSynthesizer sets the client that speaks interviewer questions.
// Without one, questions are delivered through events only.
func WithSpeechSynthesizer(client SpeechSynthesizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.speechOutput.set(client)
	}
}

// WithSpeechRecognizer sets the client that captures spoken answers. Without
// one, answers arrive through SubmitAnswer only.
func WithSpeechRecognizer(client SpeechRecognizer) OrchestratorOption {
	return func(o *Orchestrator) {
		o.speechInput.set(client)
	}
}

// WithHostAudio sets the device that plays interviewer speech and feeds
// microphone audio into the recognizer. Without one, the speech clients are
// expected to handle audio themselves.
func WithHostAudio(client HostAudio) OrchestratorOption {
	return func(o *Orchestrator) {
		o.speechOutput.setHostAudio(client)
		o.speechInput.setHostAudio(client)
	}
}

// WithProfileCache sets the store that remembers the candidate profile
// across restarts. Cache failures are logged, never fatal.
func WithProfileCache(cache ProfileCache) OrchestratorOption {
	return func(o *Orchestrator) {
		o.cache = cache
	}
}

type OrchestrateOptions struct {
	sessionStartedCallback func(sessionID string)
	questionCallback       func(question, advisorTip string)
	phaseChangedCallback   func(phase, topic string)
	transcriptCallback     func(transcript string)
	listeningCallback      func(listening bool)
	captureErrorCallback   func(reason string)
	turnErrorCallback      func(reason string)
	completedCallback      func(finalMessage string)
	utteranceEndedCallback func(text string)
	sessionResetCallback   func()

	fallbackAcknowledgement string
}

type OrchestrateOption func(*OrchestrateOptions)

// WithSessionStartedCallback fires when a fresh session replaces any prior
// one.
func WithSessionStartedCallback(callback func(sessionID string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.sessionStartedCallback = callback
	}
}

// WithQuestionCallback fires for every question presented to the candidate,
// including the starter question.
func WithQuestionCallback(callback func(question, advisorTip string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.questionCallback = callback
	}
}

// WithPhaseChangedCallback fires alongside every question with the engine's
// interview phase and topic labels.
func WithPhaseChangedCallback(callback func(phase, topic string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.phaseChangedCallback = callback
	}
}

// WithTranscriptCallback fires with the final transcript of a capture
// activation, before the answer is submitted.
func WithTranscriptCallback(callback func(transcript string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.transcriptCallback = callback
	}
}

// WithListeningCallback fires when capture starts (true) and when the
// activation ends without a transcript (false).
func WithListeningCallback(callback func(listening bool)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.listeningCallback = callback
	}
}

// WithCaptureErrorCallback fires when a capture activation fails.
func WithCaptureErrorCallback(callback func(reason string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.captureErrorCallback = callback
	}
}

// WithTurnErrorCallback fires when an advance-turn request fails. The
// session state is unchanged and the same answer may be resubmitted.
func WithTurnErrorCallback(callback func(reason string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.turnErrorCallback = callback
	}
}

// WithCompletedCallback fires once when the engine declares the interview
// over, with the final closing message.
func WithCompletedCallback(callback func(finalMessage string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.completedCallback = callback
	}
}

// WithUtteranceEndedCallback fires when an interviewer utterance played out
// to completion. Cancelled utterances do not fire it.
func WithUtteranceEndedCallback(callback func(text string)) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.utteranceEndedCallback = callback
	}
}

// WithSessionResetCallback fires when the session is discarded by Reset.
func WithSessionResetCallback(callback func()) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.sessionResetCallback = callback
	}
}

// WithFallbackAcknowledgement sets a short phrase spoken when an
// advance-turn request fails, so the candidate is not left in silence.
func WithFallbackAcknowledgement(text string) OrchestrateOption {
	return func(o *OrchestrateOptions) {
		o.fallbackAcknowledgement = text
	}
}
