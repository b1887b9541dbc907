package domainerrors

import "errors"

// Code represents an identity error category independent of the transport layer.
// Codes describe what went wrong in domain terms, not HTTP terms.
type Code string

const (
	// CodeInvalidIdentifier: the version field matches no supported (or compiled-in) mode.
	CodeInvalidIdentifier Code = "invalid_identifier"
	// CodeInvalidUsername: the directory reported no match for a name or id lookup.
	CodeInvalidUsername Code = "invalid_username"
	// CodeTransport: the round trip to the directory could not complete.
	CodeTransport Code = "transport"
	// CodeUnknown: a success response did not match the expected contract.
	CodeUnknown Code = "unknown"
	// CodeInvalidInput is used by the command line and the mock directory for bad arguments.
	CodeInvalidInput Code = "invalid_input"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across the library, client and CLI layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost domain error in the chain, or
// CodeUnknown when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
