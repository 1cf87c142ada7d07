package preg

import "fmt"

// Code identifies the failure kind reported by the engine or by pattern
// translation. The numeric values of the engine-reported codes mirror
// the PCRE error-code set.
type Code int

const (
	// CodeNone reports that no error occurred.
	CodeNone Code = iota

	// CodeInternal reports an unspecified engine failure.
	CodeInternal

	// CodeBacktrackLimit reports that the engine gave up after
	// exceeding its backtracking budget. See MatchTimeout.
	CodeBacktrackLimit

	// CodeRecursionLimit reports that the engine exceeded its
	// recursion budget. Retained for the closed engine code set; the
	// current engine bounds work by time, not recursion depth, so this
	// code has no runtime trigger.
	CodeRecursionLimit

	// CodeBadUTF8 reports a subject that is not valid UTF-8. Raised
	// only for patterns compiled with the "u" flag.
	CodeBadUTF8

	// CodeBadUTF8Offset reports a match offset outside the subject.
	CodeBadUTF8Offset

	// CodeBadPattern reports a pattern that could not be parsed or
	// compiled: a bad delimiter, an unknown modifier, or a syntax
	// error rejected by the engine.
	CodeBadPattern
)

// ErrorString returns the human-readable description of a Code. Unknown
// codes are reported as such rather than panicking.
func ErrorString(c Code) string {
	switch c {
	case CodeNone:
		return "No error"
	case CodeInternal:
		return "Internal error"
	case CodeBacktrackLimit:
		return "Backtrack limit exhausted"
	case CodeRecursionLimit:
		return "Recursion limit exhausted"
	case CodeBadUTF8:
		return "Malformed UTF-8 characters, possibly incorrectly encoded"
	case CodeBadUTF8Offset:
		return "The offset did not correspond to the beginning of a valid UTF-8 code point"
	case CodeBadPattern:
		return "Invalid pattern"
	}
	return fmt.Sprintf("Unknown error (%d)", int(c))
}

// String implements fmt.Stringer.
func (c Code) String() string { return ErrorString(c) }

// Error is the failure type returned by every fallible operation in
// this package. It carries the translated code alongside the message,
// so callers can branch on kind with errors.As:
//
//	var perr *preg.Error
//	if errors.As(err, &perr) && perr.Code == preg.CodeBadPattern {
//	    ...
//	}
type Error struct {
	Code    Code
	Message string
	Err     error // underlying engine error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return "preg: " + e.Message
	}
	return "preg: " + ErrorString(e.Code)
}

// Unwrap returns the underlying engine error, if any.
func (e *Error) Unwrap() error { return e.Err }

func newError(c Code, format string, args ...any) *Error {
	return &Error{Code: c, Message: fmt.Sprintf(format, args...)}
}
