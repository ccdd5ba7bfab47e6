package orchestration

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/voxprep/interview-core/core/interview"
	"github.com/voxprep/interview-core/core/speechtotext"
	"github.com/voxprep/interview-core/core/texttospeech"
)

type engineStub struct {
	advance func(request interview.TurnRequest) (*interview.TurnResult, error)
}

func (s *engineStub) AdvanceTurn(_ context.Context, request interview.TurnRequest) (*interview.TurnResult, error) {
	return s.advance(request)
}

// synthesizerStub finishes every utterance immediately.
type synthesizerStub struct{}

func (s *synthesizerStub) Speak(_ context.Context, _ string, opts ...texttospeech.SpeechOption) error {
	options := texttospeech.SpeechOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.EndedCallback != nil {
		options.EndedCallback()
	}
	return nil
}

// recognizerStub hands activation callbacks back to the test so it can
// script transcript delivery and failures.
type recognizerStub struct {
	mu         sync.Mutex
	options    speechtotext.CaptureOptions
	sent       [][]byte
	captureErr error
}

func (s *recognizerStub) Capture(_ context.Context, opts ...speechtotext.CaptureOption) error {
	if s.captureErr != nil {
		return s.captureErr
	}

	options := speechtotext.CaptureOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	s.mu.Lock()
	s.options = options
	s.mu.Unlock()
	return nil
}

func (s *recognizerStub) SendAudio(audio []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, append([]byte(nil), audio...))
	return nil
}

func (s *recognizerStub) Stop() error {
	s.mu.Lock()
	options := s.options
	s.mu.Unlock()

	if options.EndedCallback != nil {
		options.EndedCallback()
	}
	return nil
}

func (s *recognizerStub) Available() bool {
	return true
}

func (s *recognizerStub) deliver(transcript string) {
	s.mu.Lock()
	options := s.options
	s.mu.Unlock()

	if options.TranscriptCallback != nil {
		options.TranscriptCallback(transcript)
	}
}

func (s *recognizerStub) fail(err error) {
	s.mu.Lock()
	options := s.options
	s.mu.Unlock()

	if options.ErrorCallback != nil {
		options.ErrorCallback(err)
	}
}

func starterPayload() interview.StartPayload {
	return interview.StartPayload{
		Question:   "Tell me about yourself.",
		AdvisorTip: "Keep it short.",
		Job:        "Backend engineer",
		Resume:     "Ten years of Go.",
		Phase:      "introduction",
		Topic:      "background",
	}
}

func nextTurnResult() *interview.TurnResult {
	return &interview.TurnResult{
		NextQuestion: "What was your hardest production incident?",
		AdvisorTip:   "Use the STAR structure.",
		Phase:        "technical",
		Topic:        "reliability",
	}
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case value := <-ch:
		return value
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %s", what)
		panic("unreachable")
	}
}

func expectQuiet[T any](t *testing.T, ch <-chan T, what string) {
	t.Helper()
	select {
	case value := <-ch:
		t.Fatalf("expected no %s, got %v", what, value)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStartValidatesPayload(t *testing.T) {
	o := NewOrchestrator(WithTurnEngine(&engineStub{}))
	o.Orchestrate(context.Background())

	err := o.Start(interview.StartPayload{Job: "Backend engineer"})
	if !errors.Is(err, interview.ErrMalformedStart) {
		t.Fatalf("expected ErrMalformedStart, got %v", err)
	}
	if o.Session().Phase != PhaseNotStarted {
		t.Error("expected no session state from a rejected start")
	}
}

func TestStartAnnouncesStarterQuestion(t *testing.T) {
	started := make(chan string, 1)
	questions := make(chan string, 4)
	phases := make(chan string, 4)
	spoken := make(chan string, 4)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithSpeechSynthesizer(&synthesizerStub{}),
	)
	o.Orchestrate(context.Background(),
		WithSessionStartedCallback(func(sessionID string) { started <- sessionID }),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
		WithPhaseChangedCallback(func(phase, _ string) { phases <- phase }),
		WithUtteranceEndedCallback(func(text string) { spoken <- text }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}

	if sessionID := waitFor(t, started, "session started callback"); sessionID == "" {
		t.Error("expected a non-empty session ID")
	}
	if question := waitFor(t, questions, "starter question"); question != "Tell me about yourself." {
		t.Errorf("unexpected starter question: %q", question)
	}
	if phase := waitFor(t, phases, "phase change"); phase != "introduction" {
		t.Errorf("unexpected phase: %q", phase)
	}
	if text := waitFor(t, spoken, "spoken starter question"); text != "Tell me about yourself." {
		t.Errorf("expected the starter question to be spoken, got %q", text)
	}

	session := o.Session()
	if session.Phase != PhaseInProgress {
		t.Errorf("expected session in progress, got %s", session.Phase)
	}
	if session.CurrentQuestion != "Tell me about yourself." {
		t.Errorf("unexpected current question: %q", session.CurrentQuestion)
	}
}

func TestSubmitAnswerAdvancesTurn(t *testing.T) {
	requests := make(chan interview.TurnRequest, 1)
	questions := make(chan string, 4)

	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(request interview.TurnRequest) (*interview.TurnResult, error) {
			requests <- request
			return nextTurnResult(), nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected answer submission to succeed, got %v", err)
	}

	request := waitFor(t, requests, "engine request")
	if request.Job != "Backend engineer" || request.Resume != "Ten years of Go." {
		t.Errorf("unexpected profile in request: %q / %q", request.Job, request.Resume)
	}
	if len(request.History) != 1 {
		t.Fatalf("expected the pending turn in the request history, got %d turns", len(request.History))
	}
	if request.History[0].Question != "Tell me about yourself." || request.History[0].Answer != "I build backends." {
		t.Errorf("unexpected pending turn: %+v", request.History[0])
	}

	if question := waitFor(t, questions, "next question"); question != "What was your hardest production incident?" {
		t.Errorf("unexpected next question: %q", question)
	}

	session := o.Session()
	if len(session.History) != 1 {
		t.Fatalf("expected one recorded turn, got %d", len(session.History))
	}
	if session.History[0].Phase != "introduction" {
		t.Errorf("expected the recorded turn to keep its ask-time phase, got %q", session.History[0].Phase)
	}
	if session.InterviewPhase != "technical" {
		t.Errorf("expected the session to advance phase, got %q", session.InterviewPhase)
	}
}

func TestSkipOmitsQuestionFromHistory(t *testing.T) {
	requests := make(chan interview.TurnRequest, 1)
	questions := make(chan string, 4)

	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(request interview.TurnRequest) (*interview.TurnResult, error) {
			requests <- request
			return nextTurnResult(), nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.Skip(); err != nil {
		t.Fatalf("expected skip to succeed, got %v", err)
	}

	request := waitFor(t, requests, "engine request")
	if len(request.History) != 0 {
		t.Errorf("expected the skipped question to stay out of the request, got %d turns", len(request.History))
	}

	waitFor(t, questions, "next question")
	session := o.Session()
	if len(session.History) != 0 {
		t.Errorf("expected the skipped question to stay out of history, got %d turns", len(session.History))
	}
	if session.CurrentQuestion != "What was your hardest production incident?" {
		t.Errorf("expected the session to move past the skipped question, got %q", session.CurrentQuestion)
	}
}

func TestTurnOperationsRejectedOutsideInProgress(t *testing.T) {
	o := NewOrchestrator(WithTurnEngine(&engineStub{}))
	o.Orchestrate(context.Background())

	if err := o.SubmitAnswer("early"); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("expected ErrSessionNotStarted before start, got %v", err)
	}
	if err := o.Skip(); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("expected ErrSessionNotStarted before start, got %v", err)
	}
}

func TestSubmitAnswerWithoutEngine(t *testing.T) {
	o := NewOrchestrator()
	o.Orchestrate(context.Background())

	if err := o.SubmitAnswer("answer"); !errors.Is(err, ErrNoTurnEngine) {
		t.Fatalf("expected ErrNoTurnEngine, got %v", err)
	}
}

func TestConcurrentTurnRejected(t *testing.T) {
	release := make(chan struct{})
	questions := make(chan string, 4)

	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
			<-release
			return nextTurnResult(), nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("first"); err != nil {
		t.Fatalf("expected first submission to succeed, got %v", err)
	}
	if err := o.SubmitAnswer("second"); !errors.Is(err, ErrTurnInFlight) {
		t.Errorf("expected ErrTurnInFlight for a concurrent answer, got %v", err)
	}
	if err := o.Skip(); !errors.Is(err, ErrTurnInFlight) {
		t.Errorf("expected ErrTurnInFlight for a concurrent skip, got %v", err)
	}

	close(release)
	waitFor(t, questions, "next question")

	// The previous turn settled; the guard must be released.
	if err := o.Skip(); err != nil {
		t.Errorf("expected a fresh turn after the previous settled, got %v", err)
	}
}

func TestTurnFailureKeepsSessionIntact(t *testing.T) {
	turnErrors := make(chan string, 1)
	questions := make(chan string, 4)

	failing := true
	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
			if failing {
				return nil, fmt.Errorf("%w: connection refused", interview.ErrTransport)
			}
			return nextTurnResult(), nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
		WithTurnErrorCallback(func(reason string) { turnErrors <- reason }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	waitFor(t, turnErrors, "turn error callback")

	session := o.Session()
	if len(session.History) != 0 {
		t.Errorf("expected a failed turn to record nothing, got %d turns", len(session.History))
	}
	if session.CurrentQuestion != "Tell me about yourself." {
		t.Errorf("expected the current question to be unchanged, got %q", session.CurrentQuestion)
	}

	// The same answer can be resubmitted once the engine recovers.
	failing = false
	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected resubmission to succeed, got %v", err)
	}
	waitFor(t, questions, "next question")
	if len(o.Session().History) != 1 {
		t.Error("expected the resubmitted turn to be recorded")
	}
}

func TestTurnFailureSpeaksFallbackAcknowledgement(t *testing.T) {
	turnErrors := make(chan string, 1)
	spoken := make(chan string, 4)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{
			advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
				return nil, fmt.Errorf("%w: connection refused", interview.ErrTransport)
			},
		}),
		WithSpeechSynthesizer(&synthesizerStub{}),
	)
	o.Orchestrate(context.Background(),
		WithTurnErrorCallback(func(reason string) { turnErrors <- reason }),
		WithUtteranceEndedCallback(func(text string) { spoken <- text }),
		WithFallbackAcknowledgement("Let me think about that for a moment."),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	waitFor(t, turnErrors, "turn error callback")

	for {
		if text := waitFor(t, spoken, "fallback acknowledgement"); text == "Let me think about that for a moment." {
			return
		}
	}
}

func TestCompletionIsTerminal(t *testing.T) {
	completed := make(chan string, 1)
	questions := make(chan string, 4)

	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
			return &interview.TurnResult{
				IsCompleted:  true,
				NextQuestion: "That concludes the interview, thank you.",
			}, nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
		WithCompletedCallback(func(finalMessage string) { completed <- finalMessage }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}

	if finalMessage := waitFor(t, completed, "completion callback"); finalMessage != "That concludes the interview, thank you." {
		t.Errorf("unexpected final message: %q", finalMessage)
	}

	if err := o.SubmitAnswer("another answer"); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("expected ErrSessionCompleted for an answer, got %v", err)
	}
	if err := o.Skip(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("expected ErrSessionCompleted for a skip, got %v", err)
	}

	session := o.Session()
	if session.Phase != PhaseCompleted {
		t.Errorf("expected a completed session, got %s", session.Phase)
	}
	if session.FinalMessage != "That concludes the interview, thank you." {
		t.Errorf("unexpected final message in session: %q", session.FinalMessage)
	}
	if session.CurrentQuestion != session.FinalMessage {
		t.Errorf("expected the current question to carry the final message, got %q", session.CurrentQuestion)
	}
	if len(session.History) != 1 {
		t.Errorf("expected the closing turn to be recorded, got %d turns", len(session.History))
	}
}

func TestResetReturnsToNotStarted(t *testing.T) {
	resets := make(chan struct{}, 1)

	o := NewOrchestrator(WithTurnEngine(&engineStub{}))
	o.Orchestrate(context.Background(),
		WithSessionResetCallback(func() { resets <- struct{}{} }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}

	o.Reset()
	waitFor(t, resets, "session reset callback")

	if o.Session().Phase != PhaseNotStarted {
		t.Errorf("expected a not-started session after reset, got %s", o.Session().Phase)
	}
	if err := o.SubmitAnswer("answer"); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("expected ErrSessionNotStarted after reset, got %v", err)
	}

	// A new session can be started from scratch.
	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected a fresh start after reset, got %v", err)
	}
}

func TestResetDiscardsInFlightTurnResult(t *testing.T) {
	release := make(chan struct{})
	questions := make(chan string, 4)

	o := NewOrchestrator(WithTurnEngine(&engineStub{
		advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
			<-release
			return nextTurnResult(), nil
		},
	}))
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("I build backends."); err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	o.Reset()
	close(release)

	expectQuiet(t, questions, "question from a stale turn result")
	if phase := o.Session().Phase; phase != PhaseNotStarted {
		t.Errorf("expected the stale result to be discarded, got phase %s", phase)
	}
}

func TestListeningSubmitsTranscript(t *testing.T) {
	recognizer := &recognizerStub{}
	listening := make(chan bool, 4)
	transcripts := make(chan string, 1)
	questions := make(chan string, 4)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{
			advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
				return nextTurnResult(), nil
			},
		}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
		WithListeningCallback(func(active bool) { listening <- active }),
		WithTranscriptCallback(func(transcript string) { transcripts <- transcript }),
	)

	if !o.CanListen() {
		t.Fatal("expected listening to be available")
	}
	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.StartListening(); err != nil {
		t.Fatalf("expected listening to start, got %v", err)
	}
	if active := waitFor(t, listening, "listening started callback"); !active {
		t.Error("expected the listening callback to report active")
	}

	recognizer.deliver("I build backends.")

	if transcript := waitFor(t, transcripts, "transcript callback"); transcript != "I build backends." {
		t.Errorf("unexpected transcript: %q", transcript)
	}
	waitFor(t, questions, "next question")

	session := o.Session()
	if len(session.History) != 1 || session.History[0].Answer != "I build backends." {
		t.Errorf("expected the transcript to be submitted as the answer, got %+v", session.History)
	}
}

func TestStartListeningGuards(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	recognizer := &recognizerStub{}
	questions := make(chan string, 4)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{
			advance: func(interview.TurnRequest) (*interview.TurnResult, error) {
				<-release
				return nextTurnResult(), nil
			},
		}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background(),
		WithQuestionCallback(func(question, _ string) { questions <- question }),
	)

	if err := o.StartListening(); !errors.Is(err, ErrSessionNotStarted) {
		t.Errorf("expected ErrSessionNotStarted before start, got %v", err)
	}

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	waitFor(t, questions, "starter question")

	if err := o.SubmitAnswer("answer"); err != nil {
		t.Fatalf("expected submission to succeed, got %v", err)
	}
	if err := o.StartListening(); !errors.Is(err, ErrTurnInFlight) {
		t.Errorf("expected ErrTurnInFlight during an in-flight turn, got %v", err)
	}
}

func TestStartListeningWhileListening(t *testing.T) {
	recognizer := &recognizerStub{}

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background())

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.StartListening(); err != nil {
		t.Fatalf("expected listening to start, got %v", err)
	}
	if err := o.StartListening(); !errors.Is(err, ErrAlreadyListening) {
		t.Errorf("expected ErrAlreadyListening, got %v", err)
	}
}

func TestStopListeningAbandonsActivation(t *testing.T) {
	recognizer := &recognizerStub{}
	listening := make(chan bool, 4)
	transcripts := make(chan string, 1)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background(),
		WithListeningCallback(func(active bool) { listening <- active }),
		WithTranscriptCallback(func(transcript string) { transcripts <- transcript }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.StartListening(); err != nil {
		t.Fatalf("expected listening to start, got %v", err)
	}
	waitFor(t, listening, "listening started callback")

	if err := o.StopListening(); err != nil {
		t.Fatalf("expected listening to stop, got %v", err)
	}
	if active := waitFor(t, listening, "listening stopped callback"); active {
		t.Error("expected the listening callback to report inactive")
	}
	expectQuiet(t, transcripts, "transcript after stop")

	// The activation is over; a new one can start.
	if err := o.StartListening(); err != nil {
		t.Errorf("expected a fresh activation to start, got %v", err)
	}
}

func TestCaptureFailureReported(t *testing.T) {
	recognizer := &recognizerStub{}
	captureErrors := make(chan string, 1)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background(),
		WithCaptureErrorCallback(func(reason string) { captureErrors <- reason }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.StartListening(); err != nil {
		t.Fatalf("expected listening to start, got %v", err)
	}

	recognizer.fail(errors.New("microphone disconnected"))

	if reason := waitFor(t, captureErrors, "capture error callback"); reason != "microphone disconnected" {
		t.Errorf("unexpected capture error: %q", reason)
	}

	// A failed activation releases the state machine.
	if err := o.StartListening(); err != nil {
		t.Errorf("expected a fresh activation after the failure, got %v", err)
	}
}

func TestStaleTranscriptDiscardedAfterReset(t *testing.T) {
	recognizer := &recognizerStub{}
	transcripts := make(chan string, 1)

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithSpeechRecognizer(recognizer),
	)
	o.Orchestrate(context.Background(),
		WithTranscriptCallback(func(transcript string) { transcripts <- transcript }),
	)

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.StartListening(); err != nil {
		t.Fatalf("expected listening to start, got %v", err)
	}

	o.Reset()
	recognizer.deliver("late transcript")

	expectQuiet(t, transcripts, "transcript from a replaced session")
	if o.Session().Phase != PhaseNotStarted {
		t.Error("expected the late transcript to leave the session untouched")
	}
}

func TestCanListenWithoutRecognizer(t *testing.T) {
	o := NewOrchestrator(WithTurnEngine(&engineStub{}))
	o.Orchestrate(context.Background())

	if o.CanListen() {
		t.Error("expected listening to be unavailable without a recognizer")
	}
	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}
	if err := o.StartListening(); !errors.Is(err, ErrCaptureUnavailable) {
		t.Errorf("expected ErrCaptureUnavailable, got %v", err)
	}
}

func TestProfileCacheRoundTrip(t *testing.T) {
	cache := &profileCacheStub{}

	o := NewOrchestrator(
		WithTurnEngine(&engineStub{}),
		WithProfileCache(cache),
	)
	o.Orchestrate(context.Background())

	if err := o.Start(starterPayload()); err != nil {
		t.Fatalf("expected start to succeed, got %v", err)
	}

	job, resume, err := o.RestoreProfile(context.Background())
	if err != nil {
		t.Fatalf("expected profile restore to succeed, got %v", err)
	}
	if job != "Backend engineer" || resume != "Ten years of Go." {
		t.Errorf("unexpected restored profile: %q / %q", job, resume)
	}
}

type profileCacheStub struct {
	mu     sync.Mutex
	job    string
	resume string
}

func (s *profileCacheStub) PutProfile(_ context.Context, job, resume string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = job
	s.resume = resume
	return nil
}

func (s *profileCacheStub) Profile(_ context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job, s.resume, nil
}
