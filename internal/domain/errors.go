package domain

import "errors"

var (
	// ErrKeyNotFound reports an absent storage key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrBusy rejects a send, save or reset while another one is in flight.
	ErrBusy = errors.New("another action is already in progress")

	// ErrConfirmRequired guards discarding a thread that already contains
	// user messages.
	ErrConfirmRequired = errors.New("confirmation required to discard the current conversation")
)

// ValidationError rejects user input before any external call is made.
// Msg is safe to show inline.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string { return e.Msg }

// TransportError wraps a failed or empty completion call. Err keeps the
// technical detail for logs; UserMessage is the only part shown to the user.
type TransportError struct {
	UserMessage string
	Err         error
}

func (e *TransportError) Error() string { return e.UserMessage }

func (e *TransportError) Unwrap() error { return e.Err }
