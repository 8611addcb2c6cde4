package errors

import "errors"

// WithContext returns a copy of err with key set in its context map.
// Plain errors are converted using CodeUnknown. Returns nil if err is nil.
//
//	err = errors.WithContext(err, "branch", name)
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap merges fields into the context of err. New keys override
// existing ones. Returns nil if err is nil.
func WithContextMap(err error, fields map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	base := asCoded(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]interface{}, len(fields))
	}
	for k, v := range fields {
		merged[k] = v
	}

	return &codedError{
		code:     base.Code(),
		severity: base.Severity(),
		message:  base.Message(),
		context:  merged,
		cause:    base.Unwrap(),
	}
}

// WithSeverity returns a copy of err with the given severity.
func WithSeverity(err error, severity Severity) Error {
	if err == nil {
		return nil
	}

	base := asCoded(err)
	return &codedError{
		code:     base.Code(),
		severity: severity,
		message:  base.Message(),
		context:  base.Context(),
		cause:    base.Unwrap(),
	}
}

func asCoded(err error) Error {
	var coded Error
	if errors.As(err, &coded) {
		return coded
	}
	return &codedError{
		code:     CodeUnknown,
		severity: SeverityError,
		message:  err.Error(),
		cause:    err,
	}
}
