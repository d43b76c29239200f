package smoketests

import "fmt"

// StatusMismatchError means a response was received but its status was not the expected one.
type StatusMismatchError struct {
	Expected int
	Actual   int
}

func (e StatusMismatchError) Error() string {
	return fmt.Sprintf("Expected %d, got %d", e.Expected, e.Actual)
}

// TransportError means no usable response was received: connection failure, timeout or an
// unreadable body.
type TransportError struct {
	Err error
}

func (e TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Err)
}

func (e TransportError) Unwrap() error {
	return e.Err
}

// MissingPrerequisiteError means a case needed an identifier that an earlier case never captured.
// No request is sent in that case.
type MissingPrerequisiteError struct {
	Key SessionKey
}

func (e MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("missing prerequisite: no %s in session", e.Key)
}
