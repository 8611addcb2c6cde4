package errors

// Error extends the standard error interface with a code, a severity and
// attached context.
type Error interface {
	error

	// Code returns the error code identifying the condition.
	Code() ErrorCode

	// Severity reports how the failure should be surfaced.
	Severity() Severity

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

// codedError is the only implementation of Error.
type codedError struct {
	code     ErrorCode
	severity Severity
	message  string
	context  map[string]interface{}
	cause    error
}

// Error formats as "[CODE] message" or "[CODE] message: cause".
func (e *codedError) Error() string {
	if e.cause != nil {
		return "[" + string(e.code) + "] " + e.message + ": " + e.cause.Error()
	}
	return "[" + string(e.code) + "] " + e.message
}

func (e *codedError) Code() ErrorCode    { return e.code }
func (e *codedError) Severity() Severity { return e.severity }
func (e *codedError) Message() string    { return e.message }
func (e *codedError) Unwrap() error      { return e.cause }

func (e *codedError) Context() map[string]interface{} {
	return copyContext(e.context)
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
