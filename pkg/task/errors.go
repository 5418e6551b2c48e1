package task

import "fmt"

// InvalidArgumentError reports that the builder was given no source input at
// all. It is returned by Build when both the source file set and the
// directory root set are empty.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Reason)
}

// InvalidStateError reports that a required builder field is missing or
// failed its precondition at Build time.
type InvalidStateError struct {
	Field  string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s: %s", e.Field, e.Reason)
}
