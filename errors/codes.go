package errors

// ErrorCode identifies a failure condition. Codes are strings so they read
// well in logs and JSON output.
type ErrorCode string

const (
	// Configuration errors.

	// CodeInvalidConfig indicates missing or inconsistent configuration,
	// for example no working directory.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeInvalidInput indicates a malformed argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeNotRepository indicates the working directory is not inside a git repository.
	CodeNotRepository ErrorCode = "NOT_A_REPOSITORY"

	// Load cycle errors.

	// CodeLoadInProgress indicates a load was requested while another one runs.
	CodeLoadInProgress ErrorCode = "LOAD_IN_PROGRESS"

	// CodeCanceled indicates the in-flight request was cancelled.
	CodeCanceled ErrorCode = "CANCELED"

	// Query errors.

	// CodeQueryFailed indicates a git invocation exited unsuccessfully.
	CodeQueryFailed ErrorCode = "QUERY_FAILED"

	// CodeParseFailed indicates git output did not match the expected format.
	CodeParseFailed ErrorCode = "PARSE_FAILED"

	// CodeTimeout indicates a query exceeded its deadline.
	CodeTimeout ErrorCode = "TIMEOUT"

	// System errors.

	// CodeInternal indicates a bug or an unexpected state.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown is used for errors that were not created by this package.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Severity tells callers how loudly to report an error.
type Severity string

const (
	// SeverityWarning marks conditions that are expected during normal
	// operation and need no user action.
	SeverityWarning Severity = "WARNING"

	// SeverityError marks genuine failures.
	SeverityError Severity = "ERROR"
)

var defaultSeverities = map[ErrorCode]Severity{
	CodeLoadInProgress: SeverityWarning,
	CodeCanceled:       SeverityWarning,
}

func defaultSeverity(code ErrorCode) Severity {
	if s, ok := defaultSeverities[code]; ok {
		return s
	}
	return SeverityError
}
