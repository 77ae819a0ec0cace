package ballot

import (
	"errors"
	"fmt"
)

var (
	// ErrSimulationRejected is matched by a *RejectedError.
	ErrSimulationRejected = errors.New("vote rejected by contract")
	// ErrSimulationFailed is returned when the simulation could not be run at all.
	ErrSimulationFailed = errors.New("vote simulation failed")
	// ErrSubmissionFailure is returned when the vote transaction could not be broadcast.
	// The ballot is left as it was before the attempt.
	ErrSubmissionFailure = errors.New("vote submission failed")

	ErrAlreadySubmitted    = errors.New("vote already submitted")
	ErrNothingToSubmit     = errors.New("ballot has not been filled in")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrIndexOutOfRange     = errors.New("candidate index out of range")
	ErrRankOutOfRange      = errors.New("rank out of range")
	ErrUnknownCandidate    = errors.New("unknown candidate")
	ErrTooManyCandidates   = errors.New("too many candidates")
	ErrBusy                = errors.New("vote submission in progress")
)

// RejectedError carries the message the contract returned when it refused a vote.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSimulationRejected, e.Message)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrSimulationRejected
}
