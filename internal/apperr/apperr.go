package apperr

import "errors"

// Kind classifies failures that cross the service boundary. Handlers map
// each kind to an HTTP status and business code; nothing else about an
// error is inspected at the boundary.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuthRequired
	KindValidation
	KindNotFound
	KindStorage
)

// Error is a failure with a stable kind and a user-facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// AuthRequired reports a protected operation attempted without a session.
func AuthRequired(msg string) *Error {
	return &Error{Kind: KindAuthRequired, Msg: msg}
}

// Validation reports rejected input. No state was mutated.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound reports an operation referencing an unknown record.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Storage wraps a failed document read or write.
func Storage(msg string, err error) *Error {
	return &Error{Kind: KindStorage, Msg: msg, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
