package dodge

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the session lifecycle state.
type State int

const (
	StateRunning State = iota
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome tells why a session ended.
type Outcome int

const (
	OutcomeNone   Outcome = iota // still running
	OutcomeCaught                // an active enemy reached the player
	OutcomeQuit                  // the player asked to quit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCaught:
		return "caught"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is the externally reported end of a session.
type Result struct {
	ID       uuid.UUID
	Outcome  Outcome
	Score    int
	Duration time.Duration
}

// Message is the line printed when the session is over.
func (r Result) Message() string {
	if r.Outcome == OutcomeCaught {
		return fmt.Sprintf("Game Over! The enemy caught you. Final score: %d. Goodbye!", r.Score)
	}
	return fmt.Sprintf("Final score: %d. Goodbye!", r.Score)
}
