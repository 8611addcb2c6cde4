package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Join wraps the standard library errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// GetCode returns the code of the outermost Error in the chain, or
// CodeUnknown.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Code()
	}
	return CodeUnknown
}

// HasCode reports whether the outermost Error in the chain carries code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetSeverity returns the severity of the outermost Error in the chain.
// Plain errors are SeverityError.
func GetSeverity(err error) Severity {
	var coded Error
	if err != nil && stderrors.As(err, &coded) {
		return coded.Severity()
	}
	return SeverityError
}
