package main

import "fmt"

// invalidInputError reports a biometric or tunable field that is missing,
// non-positive, or outside its sane bounds. The engine fails fast — no
// partial result is ever produced alongside one of these.
type invalidInputError struct {
	Field  string
	Reason string
}

func (e *invalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// invalidInput is a small constructor so call sites stay one line.
func invalidInput(field, reason string) error {
	return &invalidInputError{Field: field, Reason: reason}
}

// unsupportedGoalModeError reports an ambiguous goal request: both the
// intensity-percentage and mass/timeframe parameters were supplied, or
// neither. The two modes are mutually exclusive.
type unsupportedGoalModeError struct {
	Reason string
}

func (e *unsupportedGoalModeError) Error() string {
	return "unsupported goal mode: " + e.Reason
}
