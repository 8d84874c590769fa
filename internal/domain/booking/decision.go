package booking

import (
	"strings"

	"github.com/Eenot/shareit/internal/domain"
)

// Decision is the owner's verdict on a waiting booking, parsed once at the
// boundary from the literal query values "true" and "false".
type Decision bool

const (
	DecisionApprove Decision = true
	DecisionReject  Decision = false
)

// ParseDecision converts a case-insensitive string into a Decision. Anything
// but the two literals fails with a ValidationError.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(s) {
	case "true":
		return DecisionApprove, nil
	case "false":
		return DecisionReject, nil
	default:
		return false, domain.NewValidationError("invalid decision value: " + s)
	}
}
