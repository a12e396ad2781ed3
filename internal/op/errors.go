package op

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes operation failures.
type ErrorCode string

const (
	// ErrCodeBadIndex indicates an out-of-range bulk, line or frame index.
	ErrCodeBadIndex ErrorCode = "BAD_INDEX"

	// ErrCodePrecondition indicates a mismatch between an operation's
	// stored value and the actual field value in the script.
	ErrCodePrecondition ErrorCode = "PRECONDITION"

	// ErrCodeBadSplit indicates a split point on a bulk boundary or a merge
	// point that is not one.
	ErrCodeBadSplit ErrorCode = "BAD_SPLIT"

	// ErrCodeUnparseable indicates that stored line text failed to
	// re-parse. Unlike the codes above it is a content error, not a
	// structural-integrity error.
	ErrCodeUnparseable ErrorCode = "UNPARSEABLE"
)

// Error is the failure of an operation's Apply or Undo.
//
// Both error classes mean the operation log and the script have
// desynchronized (e.g. a history replayed against the wrong script). They
// are fatal: callers must surface them as a corrupted-project condition,
// never retry or partially apply.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsIntegrity reports whether err is a structural-integrity failure: an
// out-of-range index, a precondition mismatch or an invalid split point.
// Uses errors.As to handle wrapped errors.
func IsIntegrity(err error) bool {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Code != ErrCodeUnparseable
	}
	return false
}

// IsContent reports whether err is a content failure: stored operation text
// no longer parses. Uses errors.As to handle wrapped errors.
func IsContent(err error) bool {
	var oe *Error
	if errors.As(err, &oe) {
		return oe.Code == ErrCodeUnparseable
	}
	return false
}

func errBadIndex(format string, args ...any) error {
	return &Error{Code: ErrCodeBadIndex, Message: fmt.Sprintf(format, args...)}
}

func errPrecondition(format string, args ...any) error {
	return &Error{Code: ErrCodePrecondition, Message: fmt.Sprintf(format, args...)}
}

func errBadSplit(format string, args ...any) error {
	return &Error{Code: ErrCodeBadSplit, Message: fmt.Sprintf(format, args...)}
}

func errUnparseable(text string, cause error) error {
	return &Error{Code: ErrCodeUnparseable, Message: fmt.Sprintf("stored line %q: %v", text, cause)}
}
