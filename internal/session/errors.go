package session

import "errors"

var (
	// ErrSubjectNotFound is returned when no subject matches the requested name.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrInvalidPhase is returned when an operation is not allowed in the current phase.
	ErrInvalidPhase = errors.New("invalid phase")

	// ErrNoSelection is returned when an answer is submitted without a chosen option.
	ErrNoSelection = errors.New("no option selected")

	// ErrNoActiveQuestion is returned by CurrentQuestion outside PhaseInProgress.
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrInvalidChoice is returned for an option that was not presented.
	ErrInvalidChoice = errors.New("invalid choice")
)
