// Package interview holds the wire-level domain types shared between the
// orchestration core and turn engine clients.
package interview

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks advance-turn calls that produced no usable result
	// (network failure or non-success status).
	ErrTransport = errors.New("turn engine transport failure")
	// ErrProtocol marks responses whose body could not be normalized.
	ErrProtocol = errors.New("turn engine protocol violation")
	// ErrMalformedStart marks bootstrap payloads too incomplete to start a
	// session from.
	ErrMalformedStart = errors.New("malformed interview start payload")
)

// Turn is one recorded question/answer exchange. Immutable once appended to
// a session's history.
type Turn struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AdvisorTip string `json:"advisor_tip,omitempty"`
	// Phase and Topic reflect the session state at the time the question was
	// asked, not the state after the answer.
	Phase string `json:"phase,omitempty"`
	Topic string `json:"topic,omitempty"`
}

// TurnRequest is the advance-turn request payload: the candidate profile and
// the ordered history that is the engine's sole memory of the conversation.
type TurnRequest struct {
	Job     string `json:"job"`
	Resume  string `json:"resume"`
	History []Turn `json:"history"`
}

// TurnResult is the normalized advance-turn response. When IsCompleted is
// set, NextQuestion carries the final closing message and the remaining
// fields are not meaningful for further turns.
type TurnResult struct {
	IsCompleted  bool
	NextQuestion string
	AdvisorTip   string
	Phase        string
	Topic        string
}

// StartPayload is what the bootstrap step yields to seed a session.
type StartPayload struct {
	Question   string `json:"question"`
	AdvisorTip string `json:"advisor_tip,omitempty"`
	Job        string `json:"job"`
	Resume     string `json:"resume"`
	Phase      string `json:"phase,omitempty"`
	Topic      string `json:"topic,omitempty"`
}

// Validate reports whether the payload is complete enough to start a session.
func (p StartPayload) Validate() error {
	if p.Question == "" {
		return fmt.Errorf("%w: missing starter question", ErrMalformedStart)
	}
	if p.Job == "" {
		return fmt.Errorf("%w: missing job description", ErrMalformedStart)
	}
	if p.Resume == "" {
		return fmt.Errorf("%w: missing resume text", ErrMalformedStart)
	}
	return nil
}
