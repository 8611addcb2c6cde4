package errors

import (
	"errors"
	"fmt"
)

// Wrap attaches a code and message to err, keeping err as the cause.
// The severity of a wrapped Error is preserved. Returns nil if err is nil.
//
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeQueryFailed, "git show-ref failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	if err == nil {
		return nil
	}

	severity := defaultSeverity(code)
	var coded Error
	if errors.As(err, &coded) {
		severity = coded.Severity()
	}

	return &codedError{
		code:     code,
		severity: severity,
		message:  message,
		cause:    err,
	}
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
