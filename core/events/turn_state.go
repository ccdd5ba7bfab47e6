package events

const (
	// KindTurnSubmitted identifies an advance-turn request going out.
	KindTurnSubmitted Kind = "turn_state.submitted"
	// KindTurnApplied identifies an engine response applied to session state.
	KindTurnApplied Kind = "turn_state.applied"
	// KindTurnFailed identifies a failed advance-turn request.
	KindTurnFailed Kind = "turn_state.failed"
)

// TurnSubmitted marks that an advance-turn request was issued.
type TurnSubmitted struct {
	Base
	// Skipped marks requests that forfeit recording the unanswered question.
	Skipped bool
}

// NewTurnSubmitted creates a turn submitted event.
func NewTurnSubmitted(skipped bool) TurnSubmitted {
	return TurnSubmitted{Base: NewBase(KindTurnSubmitted), Skipped: skipped}
}

// TurnApplied marks that the engine response was applied to the session.
type TurnApplied struct {
	Base
	Completed bool
}

// NewTurnApplied creates a turn applied event.
func NewTurnApplied(completed bool) TurnApplied {
	return TurnApplied{Base: NewBase(KindTurnApplied), Completed: completed}
}

// TurnFailed marks a failed advance-turn request; session state is unchanged.
type TurnFailed struct {
	Base
	Reason string
}

// NewTurnFailed creates a turn failed event.
func NewTurnFailed(reason string) TurnFailed {
	return TurnFailed{Base: NewBase(KindTurnFailed), Reason: reason}
}
