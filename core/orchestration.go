// Package orchestration drives a voice mock interview: it presents engine
// generated questions, captures or accepts the candidate's answers, and
// advances the session one turn at a time against a remote question
// generation engine.
//
// The orchestrator owns the session state machine and the speech ports; the
// engine client, synthesizer, recognizer, and profile cache are injected
// through options so hosts can swap or omit any of them.
package orchestration

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"

	"github.com/voxprep/interview-core/core/events"
	"github.com/voxprep/interview-core/core/interview"
)

type Orchestrator struct {
	session *session
	engine  TurnEngine
	cache   ProfileCache

	speechOutput *speechOutput
	speechInput  *speechInput

	emitEvent          eventEmitter
	orchestrateOptions OrchestrateOptions
	baseContext        context.Context

	// turnMu serializes the turn protocol; awaitingTurn is the busy flag
	// that rejects, never queues, concurrent submissions.
	turnMu       sync.Mutex
	awaitingTurn bool

	// generation increments on every Start and Reset so in-flight engine
	// responses and transcripts from a previous session are discarded
	// instead of applied.
	generation atomic.Int64

	closeOnce sync.Once
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		session:      newSession(),
		speechOutput: newSpeechOutput(nil),
		speechInput:  newSpeechInput(nil),
		emitEvent:    noopEventEmitter,
		baseContext:  context.Background(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Orchestrate binds the caller's context and callbacks. Call it before
// Start; ctx bounds all engine and speech activity.
func (o *Orchestrator) Orchestrate(ctx context.Context, opts ...OrchestrateOption) {
	options := OrchestrateOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	o.baseContext = ctx
	o.orchestrateOptions = options
	o.emitEvent = newCallbackEventEmitter(options)
	o.speechOutput.setEventEmitter(o.emitEvent)
	o.speechInput.setEventEmitter(o.emitEvent)
}

// Start begins a fresh session from a bootstrap payload, discarding any
// session in progress. The starter question is announced and spoken.
func (o *Orchestrator) Start(payload interview.StartPayload) error {
	ctx, span := tracer.Start(o.baseContext, "start interview session")
	defer span.End()

	if err := payload.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	o.generation.Add(1)
	o.turnMu.Lock()
	o.awaitingTurn = false
	o.turnMu.Unlock()
	o.speechOutput.Cancel()
	if err := o.speechInput.Stop(); err != nil {
		logger.Warn("Failed to stop capture on session start", "error", err)
	}

	sessionID := o.session.start(payload)

	if o.cache != nil {
		if err := o.cache.PutProfile(ctx, payload.Job, payload.Resume); err != nil {
			logger.Warn("Failed to cache candidate profile", "error", err)
		}
	}

	o.emitEvent(events.NewSessionStarted(sessionID))
	o.emitEvent(events.NewQuestionAsked(payload.Question, payload.AdvisorTip, payload.Phase, payload.Topic))
	o.speechOutput.Speak(o.baseContext, payload.Question)

	return nil
}

// SubmitAnswer records the answer to the current question and requests the
// next turn. It returns once the request is dispatched; the outcome arrives
// through events.
func (o *Orchestrator) SubmitAnswer(answer string) error {
	return o.submitTurn(answer, false)
}

// Skip requests the next turn without recording the current question, which
// is forfeited and never enters the history.
func (o *Orchestrator) Skip() error {
	return o.submitTurn("", true)
}

func (o *Orchestrator) submitTurn(answer string, skip bool) error {
	if o.engine == nil {
		return ErrNoTurnEngine
	}

	o.turnMu.Lock()
	defer o.turnMu.Unlock()

	switch o.session.currentPhase() {
	case PhaseNotStarted:
		return ErrSessionNotStarted
	case PhaseCompleted:
		return ErrSessionCompleted
	}
	if o.awaitingTurn {
		return ErrTurnInFlight
	}
	o.awaitingTurn = true

	request := o.session.turnRequest()
	var record *interview.Turn
	if !skip {
		turn := o.session.pendingTurn(answer)
		request.History = append(request.History, turn)
		record = &turn
	}

	o.emitEvent(events.NewTurnSubmitted(skip))
	go o.advanceTurn(o.generation.Load(), request, record)

	return nil
}

// advanceTurn runs the engine call off the caller's goroutine and applies
// the outcome, unless the session was replaced while the call was in
// flight.
func (o *Orchestrator) advanceTurn(generation int64, request interview.TurnRequest, record *interview.Turn) {
	ctx, span := tracer.Start(o.baseContext, "advance interview turn")
	defer span.End()

	result, err := o.engine.AdvanceTurn(ctx, request)

	o.turnMu.Lock()
	defer o.turnMu.Unlock()

	if o.generation.Load() != generation {
		logger.Info("Discarding turn result for a replaced session")
		return
	}
	o.awaitingTurn = false

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.emitEvent(events.NewTurnFailed(err.Error()))
		if ack := o.orchestrateOptions.fallbackAcknowledgement; ack != "" {
			o.speechOutput.Speak(o.baseContext, ack)
		}
		return
	}

	o.session.applyResult(*result, record)
	o.emitEvent(events.NewTurnApplied(result.IsCompleted))

	if result.IsCompleted {
		o.emitEvent(events.NewSessionCompleted(result.NextQuestion))
	} else {
		o.emitEvent(events.NewQuestionAsked(result.NextQuestion, result.AdvisorTip, result.Phase, result.Topic))
	}
	o.speechOutput.Speak(o.baseContext, result.NextQuestion)
}

// CanListen reports whether spoken answers are possible on this host.
func (o *Orchestrator) CanListen() bool {
	return o.speechInput.Available()
}

// StartListening begins capturing one spoken answer. The final transcript
// is submitted as if passed to SubmitAnswer.
func (o *Orchestrator) StartListening() error {
	switch o.session.currentPhase() {
	case PhaseNotStarted:
		return ErrSessionNotStarted
	case PhaseCompleted:
		return ErrSessionCompleted
	}

	o.turnMu.Lock()
	awaiting := o.awaitingTurn
	o.turnMu.Unlock()
	if awaiting {
		return ErrTurnInFlight
	}

	generation := o.generation.Load()
	return o.speechInput.StartListening(o.baseContext, func(transcript string) {
		o.handleTranscript(generation, transcript)
	})
}

// StopListening abandons the capture activation without submitting anything.
func (o *Orchestrator) StopListening() error {
	return o.speechInput.Stop()
}

func (o *Orchestrator) handleTranscript(generation int64, transcript string) {
	defer o.speechInput.finishProcessing()

	if o.generation.Load() != generation {
		logger.Info("Discarding transcript for a replaced session")
		return
	}

	o.emitEvent(events.NewUserTranscriptFinal(transcript))

	if err := o.submitTurn(transcript, false); err != nil {
		o.emitEvent(events.NewTurnFailed(err.Error()))
	}
}

// Reset discards the session and returns to the not-started phase. Results
// of any in-flight turn or capture are dropped when they arrive.
func (o *Orchestrator) Reset() {
	o.generation.Add(1)
	o.turnMu.Lock()
	o.awaitingTurn = false
	o.turnMu.Unlock()

	o.speechOutput.Cancel()
	if err := o.speechInput.Stop(); err != nil {
		logger.Warn("Failed to stop capture on reset", "error", err)
	}

	o.session.reset()
	o.emitEvent(events.NewSessionReset())
}

// Session returns a point-in-time deep copy of the session state.
func (o *Orchestrator) Session() SessionV1 {
	return o.session.Snapshot()
}

// RestoreProfile reads the cached candidate profile from a previous run.
func (o *Orchestrator) RestoreProfile(ctx context.Context) (job string, resume string, err error) {
	if o.cache == nil {
		return "", "", nil
	}
	return o.cache.Profile(ctx)
}

// Close stops speech activity. The orchestrator is not usable afterwards.
func (o *Orchestrator) Close() {
	o.closeOnce.Do(func() {
		o.generation.Add(1)
		o.speechOutput.Cancel()
		if err := o.speechInput.Stop(); err != nil {
			logger.Warn("Failed to stop capture on close", "error", err)
		}
	})
}
