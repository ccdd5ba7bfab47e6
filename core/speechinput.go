package orchestration

import (
	"context"
	"sync"

	"github.com/voxprep/interview-core/core/events"
	"github.com/voxprep/interview-core/core/speechtotext"
)

type listeningState string

const (
	listeningIdle       listeningState = "idle"
	listeningActive     listeningState = "listening"
	listeningProcessing listeningState = "processing"
)

// speechInput fronts the recognizer with a small state machine: Idle,
// Listening while audio is captured, Processing between the final
// transcript and the submitted answer. One activation yields at most one
// transcript.
type speechInput struct {
	client    SpeechRecognizer
	hostAudio HostAudio
	emitEvent eventEmitter

	mu    sync.Mutex
	state listeningState
}

func newSpeechInput(client SpeechRecognizer) *speechInput {
	return &speechInput{
		client:    client,
		emitEvent: noopEventEmitter,
		state:     listeningIdle,
	}
}

func (s *speechInput) set(client SpeechRecognizer) {
	s.client = client
}

func (s *speechInput) setHostAudio(client HostAudio) {
	s.hostAudio = client
}

func (s *speechInput) setEventEmitter(emitEvent eventEmitter) {
	if emitEvent == nil {
		emitEvent = noopEventEmitter
	}
	s.emitEvent = emitEvent
}

// Available reports whether the host can capture speech at all. When it
// returns false it keeps returning false; callers should fall back to typed
// answers.
func (s *speechInput) Available() bool {
	return s != nil && s.client != nil && s.client.Available()
}

// StartListening begins a capture activation. The transcript callback fires
// off the caller's goroutine with the single final transcript; the facade is
// already in Processing state by then and finishProcessing releases it.
func (s *speechInput) StartListening(ctx context.Context, onTranscript func(transcript string)) error {
	if s == nil || s.client == nil {
		return ErrCaptureUnavailable
	}

	s.mu.Lock()
	if s.state != listeningIdle {
		s.mu.Unlock()
		return ErrAlreadyListening
	}
	s.state = listeningActive
	s.mu.Unlock()

	captureOpts := []speechtotext.CaptureOption{
		speechtotext.WithTranscriptCallback(func(transcript string) {
			s.beginProcessing()
			s.stopHostCapture()
			onTranscript(transcript)
		}),
		speechtotext.WithErrorCallback(func(err error) {
			s.toIdle()
			s.stopHostCapture()
			s.emitEvent(events.NewCaptureFailed(err.Error()))
		}),
		speechtotext.WithEndedCallback(func() {
			s.toIdle()
			s.stopHostCapture()
			s.emitEvent(events.NewListeningStopped())
		}),
	}
	if s.hostAudio != nil {
		captureOpts = append(captureOpts, speechtotext.WithEncodingInfo(s.hostAudio.CaptureEncodingInfo()))
	}

	if err := s.client.Capture(ctx, captureOpts...); err != nil {
		s.toIdle()
		return err
	}

	if s.hostAudio != nil {
		if err := s.hostAudio.StartCapture(ctx, func(chunk []byte) {
			_ = s.client.SendAudio(chunk)
		}); err != nil {
			if stopErr := s.client.Stop(); stopErr != nil {
				logger.Warn("Failed to stop capture activation", "error", stopErr)
			}
			s.toIdle()
			return err
		}
	}

	s.emitEvent(events.NewListeningStarted())
	return nil
}

// Stop ends the activation without waiting for a transcript. The stopped
// event fires from the activation's ended callback.
func (s *speechInput) Stop() error {
	if s == nil || s.client == nil {
		return nil
	}

	s.mu.Lock()
	if s.state != listeningActive {
		s.mu.Unlock()
		return nil
	}
	s.state = listeningIdle
	s.mu.Unlock()

	s.stopHostCapture()
	return s.client.Stop()
}

func (s *speechInput) stopHostCapture() {
	if s.hostAudio == nil {
		return
	}
	if err := s.hostAudio.StopCapture(); err != nil {
		logger.Warn("Failed to stop host audio capture", "error", err)
	}
}

func (s *speechInput) beginProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == listeningActive {
		s.state = listeningProcessing
	}
}

func (s *speechInput) finishProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == listeningProcessing {
		s.state = listeningIdle
	}
}

func (s *speechInput) toIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = listeningIdle
}

func (s *speechInput) currentState() listeningState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
