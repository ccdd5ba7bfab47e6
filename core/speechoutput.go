package orchestration

import (
	"context"
	"errors"
	"sync"

	"github.com/voxprep/interview-core/core/events"
	"github.com/voxprep/interview-core/core/texttospeech"
)

// speechOutput fronts the synthesizer with the at-most-one-utterance rule:
// a new Speak cancels whatever is still playing. Without a configured client
// every call is a no-op.
type speechOutput struct {
	client    SpeechSynthesizer
	hostAudio HostAudio
	emitEvent eventEmitter

	mu            sync.Mutex
	utteranceID   uint64
	cancelCurrent context.CancelFunc
}

func newSpeechOutput(client SpeechSynthesizer) *speechOutput {
	return &speechOutput{
		client:    client,
		emitEvent: noopEventEmitter,
	}
}

func (s *speechOutput) set(client SpeechSynthesizer) {
	s.client = client
}

func (s *speechOutput) setHostAudio(client HostAudio) {
	s.hostAudio = client
}

func (s *speechOutput) setEventEmitter(emitEvent eventEmitter) {
	if emitEvent == nil {
		emitEvent = noopEventEmitter
	}
	s.emitEvent = emitEvent
}

func (s *speechOutput) isConfigured() bool {
	return s != nil && s.client != nil
}

// Speak starts playback of text, cancelling any utterance still in flight.
// It returns immediately; completion is reported through the utterance
// ended event.
func (s *speechOutput) Speak(ctx context.Context, text string) {
	if !s.isConfigured() || text == "" {
		return
	}

	s.mu.Lock()
	if s.cancelCurrent != nil {
		s.cancelCurrent()
	}
	utteranceCtx, cancel := context.WithCancel(ctx)
	s.cancelCurrent = cancel
	s.utteranceID++
	id := s.utteranceID
	s.mu.Unlock()

	s.emitEvent(events.NewInterviewerUtteranceStarted(text))

	// With a host audio device, synthesized audio is routed to playback and
	// the utterance counts as ended only once the playback buffer drains.
	emitEnded := func() {
		s.emitEvent(events.NewInterviewerUtteranceEnded(text))
	}
	opts := []texttospeech.SpeechOption{}
	if s.hostAudio != nil {
		opts = append(opts,
			texttospeech.WithEncodingInfo(s.hostAudio.EncodingInfo()),
			texttospeech.WithAudioCallback(func(chunk []byte) {
				if err := s.hostAudio.SendAudio(chunk); err != nil {
					logger.Warn("Failed to play utterance audio", "error", err)
				}
			}),
			texttospeech.WithEndedCallback(func() {
				s.hostAudio.NotifyDrained(emitEnded)
			}),
		)
	} else {
		opts = append(opts, texttospeech.WithEndedCallback(emitEnded))
	}

	go func() {
		defer func() {
			s.mu.Lock()
			if s.utteranceID == id {
				s.cancelCurrent = nil
			}
			s.mu.Unlock()
			cancel()
		}()

		if err := s.client.Speak(utteranceCtx, text, opts...); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Failed to speak utterance", "error", err)
		}
	}()
}

// Cancel stops the in-flight utterance, if any.
func (s *speechOutput) Cancel() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelCurrent != nil {
		s.cancelCurrent()
		s.cancelCurrent = nil
	}
	if s.hostAudio != nil {
		s.hostAudio.ClearBuffer()
	}
}
