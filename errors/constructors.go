package errors

import "fmt"

// New creates an Error with the default severity for code.
//
//	err := errors.New(errors.CodeLoadInProgress, "repository is already loading")
func New(code ErrorCode, message string) Error {
	return &codedError{
		code:     code,
		severity: defaultSeverity(code),
		message:  message,
	}
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}
