package booking

import (
	"strings"

	"github.com/Eenot/shareit/internal/domain"
)

// State is a query filter classifying bookings for the list views. WAITING and
// REJECTED filter on status; CURRENT, PAST and FUTURE partition bookings by
// their window relative to "now", independent of status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

var knownStates = map[State]struct{}{
	StateAll:      {},
	StateCurrent:  {},
	StatePast:     {},
	StateFuture:   {},
	StateWaiting:  {},
	StateRejected: {},
}

// ParseState converts a case-insensitive string into a State. Unrecognized
// values fail with an UnsupportedStateError carrying the original literal.
func ParseState(s string) (State, error) {
	state := State(strings.ToUpper(s))
	if _, ok := knownStates[state]; !ok {
		return "", domain.NewUnsupportedStateError(s)
	}
	return state, nil
}

// String returns the string representation of the state.
func (s State) String() string {
	return string(s)
}
