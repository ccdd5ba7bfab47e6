package orchestration

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/voxprep/interview-core/core/interview"
)

// Phase is the session lifecycle phase. Transitions are monotonic within one
// session: NotStarted to InProgress to Completed. Only a reset goes back.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseCompleted  Phase = "completed"
)

// SessionV1 is a point-in-time deep copy of the session state, safe to hold
// across later mutations.
type SessionV1 struct {
	ID    string
	Phase Phase

	Job    string
	Resume string

	CurrentQuestion   string
	CurrentAdvisorTip string
	// InterviewPhase and Topic are the engine's labels for where the
	// conversation is, distinct from the lifecycle Phase above.
	InterviewPhase string
	Topic          string

	History      []interview.Turn
	FinalMessage string
}

// session is the mutable state behind SessionV1. All access goes through its
// mutex; history is append-only and existing entries are never rewritten.
type session struct {
	mu sync.RWMutex

	id    string
	phase Phase

	job    string
	resume string

	currentQuestion   string
	currentAdvisorTip string
	interviewPhase    string
	topic             string

	turns        []interview.Turn
	finalMessage string
}

func newSession() *session {
	return &session{phase: PhaseNotStarted}
}

// start replaces the whole session with a fresh one seeded from the
// bootstrap payload. Returns the new session ID.
func (s *session) start(payload interview.StartPayload) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.NewString()
	s.phase = PhaseInProgress
	s.job = payload.Job
	s.resume = payload.Resume
	s.currentQuestion = payload.Question
	s.currentAdvisorTip = payload.AdvisorTip
	s.interviewPhase = payload.Phase
	s.topic = payload.Topic
	s.turns = nil
	s.finalMessage = ""

	return s.id
}

func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = ""
	s.phase = PhaseNotStarted
	s.job = ""
	s.resume = ""
	s.currentQuestion = ""
	s.currentAdvisorTip = ""
	s.interviewPhase = ""
	s.topic = ""
	s.turns = nil
	s.finalMessage = ""
}

func (s *session) currentPhase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// pendingTurn builds the history record for answering the current question,
// capturing phase and topic as of when the question was asked.
func (s *session) pendingTurn(answer string) interview.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return interview.Turn{
		Question:   s.currentQuestion,
		Answer:     answer,
		AdvisorTip: s.currentAdvisorTip,
		Phase:      s.interviewPhase,
		Topic:      s.topic,
	}
}

// turnRequest assembles the engine request from the profile and a copy of
// the recorded history.
func (s *session) turnRequest() interview.TurnRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := make([]interview.Turn, len(s.turns))
	copy(history, s.turns)

	return interview.TurnRequest{
		Job:     s.job,
		Resume:  s.resume,
		History: history,
	}
}

// applyResult records the completed turn (nil when the question was skipped)
// and advances the session to the engine's result.
func (s *session) applyResult(result interview.TurnResult, record *interview.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record != nil {
		s.turns = append(s.turns, *record)
	}

	// On completion the closing message doubles as the current question so
	// callers rendering the session keep showing it.
	if result.IsCompleted {
		s.phase = PhaseCompleted
		s.finalMessage = result.NextQuestion
		s.currentQuestion = result.NextQuestion
		s.currentAdvisorTip = ""
		return
	}

	s.currentQuestion = result.NextQuestion
	s.currentAdvisorTip = result.AdvisorTip
	s.interviewPhase = result.Phase
	s.topic = result.Topic
}

// Snapshot returns a deep copy of the current session state.
func (s *session) Snapshot() SessionV1 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := SessionV1{
		ID:                s.id,
		Phase:             s.phase,
		Job:               s.job,
		Resume:            s.resume,
		CurrentQuestion:   s.currentQuestion,
		CurrentAdvisorTip: s.currentAdvisorTip,
		InterviewPhase:    s.interviewPhase,
		Topic:             s.topic,
		FinalMessage:      s.finalMessage,
	}
	if err := copier.CopyWithOption(&snapshot.History, &s.turns, copier.Option{DeepCopy: true}); err != nil {
		logger.Error("Failed to copy session history", "error", err)
	}

	return snapshot
}
