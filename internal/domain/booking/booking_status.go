package booking

import "fmt"

// Status represents the lifecycle state of a booking.
type Status string

const (
	// StatusWaiting is the initial status of every booking.
	StatusWaiting Status = "WAITING"
	// StatusApproved is set by the item owner's positive decision.
	StatusApproved Status = "APPROVED"
	// StatusRejected is set by the item owner's negative decision.
	StatusRejected Status = "REJECTED"
	// StatusCanceled is set by the booker withdrawing a waiting booking. It is
	// terminal and queried together with REJECTED.
	StatusCanceled Status = "CANCELED"
)

var knownStatuses = map[Status]struct{}{
	StatusWaiting:  {},
	StatusApproved: {},
	StatusRejected: {},
	StatusCanceled: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, ok := knownStatuses[s]
	return ok
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
