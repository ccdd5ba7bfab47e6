package orchestration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/voxprep/interview-core/core/events"
	"github.com/voxprep/interview-core/core/texttospeech"
)

// blockingSynthesizer holds every utterance until released or cancelled.
// Cancelled utterances never fire their ended callback.
type blockingSynthesizer struct {
	release chan struct{}
}

func (s *blockingSynthesizer) Speak(ctx context.Context, _ string, opts ...texttospeech.SpeechOption) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.release:
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	options := texttospeech.SpeechOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.EndedCallback != nil {
		options.EndedCallback()
	}
	return nil
}

func collectEvents(ch chan<- events.Event) eventEmitter {
	return func(event events.Event) {
		ch <- event
	}
}

func TestSpeakEmitsUtteranceEvents(t *testing.T) {
	emitted := make(chan events.Event, 4)

	output := newSpeechOutput(&synthesizerStub{})
	output.setEventEmitter(collectEvents(emitted))

	output.Speak(context.Background(), "Tell me about yourself.")

	started := waitFor(t, emitted, "utterance started event")
	if started.Kind() != events.KindInterviewerUtteranceStarted {
		t.Fatalf("expected an utterance started event, got %s", started.Kind())
	}

	ended := waitFor(t, emitted, "utterance ended event")
	endedEvent, ok := ended.(events.InterviewerUtteranceEnded)
	if !ok {
		t.Fatalf("expected an utterance ended event, got %s", ended.Kind())
	}
	if endedEvent.Text != "Tell me about yourself." {
		t.Errorf("unexpected utterance text: %q", endedEvent.Text)
	}
}

func TestSpeakCancelsInFlightUtterance(t *testing.T) {
	emitted := make(chan events.Event, 8)
	synthesizer := &blockingSynthesizer{release: make(chan struct{})}

	output := newSpeechOutput(synthesizer)
	output.setEventEmitter(collectEvents(emitted))

	output.Speak(context.Background(), "first utterance")
	waitFor(t, emitted, "first utterance started event")

	output.Speak(context.Background(), "second utterance")
	waitFor(t, emitted, "second utterance started event")

	close(synthesizer.release)

	ended := waitFor(t, emitted, "utterance ended event")
	endedEvent, ok := ended.(events.InterviewerUtteranceEnded)
	if !ok {
		t.Fatalf("expected an utterance ended event, got %s", ended.Kind())
	}
	if endedEvent.Text != "second utterance" {
		t.Errorf("expected only the second utterance to finish, got %q", endedEvent.Text)
	}
	expectQuiet(t, emitted, "ended event for the cancelled utterance")
}

func TestCancelStopsPlayback(t *testing.T) {
	emitted := make(chan events.Event, 4)
	synthesizer := &blockingSynthesizer{release: make(chan struct{})}

	output := newSpeechOutput(synthesizer)
	output.setEventEmitter(collectEvents(emitted))

	output.Speak(context.Background(), "an utterance")
	waitFor(t, emitted, "utterance started event")

	output.Cancel()
	close(synthesizer.release)

	expectQuiet(t, emitted, "ended event for a cancelled utterance")
}

func TestSpeakWithoutClientIsNoOp(t *testing.T) {
	emitted := make(chan events.Event, 1)

	output := newSpeechOutput(nil)
	output.setEventEmitter(collectEvents(emitted))

	output.Speak(context.Background(), "nobody is listening")
	output.Cancel()

	select {
	case event := <-emitted:
		t.Fatalf("expected no events without a client, got %s", event.Kind())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSpeakIgnoresEmptyText(t *testing.T) {
	emitted := make(chan events.Event, 1)
	var mu sync.Mutex
	var spoken int

	output := newSpeechOutput(&countingSynthesizer{mu: &mu, count: &spoken})
	output.setEventEmitter(collectEvents(emitted))

	output.Speak(context.Background(), "")

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if spoken != 0 {
		t.Error("expected empty text to not be spoken")
	}
}

type countingSynthesizer struct {
	mu    *sync.Mutex
	count *int
}

func (s *countingSynthesizer) Speak(context.Context, string, ...texttospeech.SpeechOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.count++
	return nil
}
