// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// ErrorKind classifies a ValidationError
type ErrorKind string

const (
	InvalidQuantity      ErrorKind = "invalid_quantity"
	NomineeNotInCategory ErrorKind = "nominee_not_in_category"
)

// ValidationError is returned when a vote order cannot be priced.
// It is local to the caller and never retryable.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same Kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidQuantity = &ValidationError{
		Kind:    InvalidQuantity,
		Message: "quantity must be a whole number of at least 1",
	}
	ErrNomineeNotInCategory = &ValidationError{
		Kind:    NomineeNotInCategory,
		Message: "please select a nominee from this category",
	}

	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidVotingWindow = errors.New("voting start must not be after voting end")
)
