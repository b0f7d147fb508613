package voyage

import (
	"errors"
	"fmt"

	"ocean-router/internal/grid"
)

// State is the lifecycle stage of a voyage.
type State int

const (
	Planning State = iota
	Traveling
	Rerouting
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Planning:
		return "planning"
	case Traveling:
		return "traveling"
	case Rerouting:
		return "rerouting"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText renders the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finished reports whether no further steps are possible.
func (s State) Finished() bool {
	return s == Completed || s == Aborted
}

// ErrVoyageFinished is returned when advancing a completed or aborted voyage.
var ErrVoyageFinished = errors.New("voyage: already finished")

// Error describes a voyage that had to be aborted. It carries where the
// vessel was so callers can report the partial voyage, and unwraps to the
// planner failure.
type Error struct {
	State    State
	Position grid.Coordinate
	History  []grid.Coordinate
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("voyage: %s failed at %v after %d waypoints: %v", e.State, e.Position, len(e.History), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
