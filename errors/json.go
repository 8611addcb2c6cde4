package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of an error. The cause chain is left
// out; the CLI prints it separately at debug level.
type ErrorResponse struct {
	Code     string                 `json:"code"`
	Message  string                 `json:"message"`
	Severity string                 `json:"severity"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts err to an ErrorResponse. Returns nil if err is nil.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Code:     string(GetCode(err)),
		Message:  err.Error(),
		Severity: string(GetSeverity(err)),
	}

	var coded Error
	if As(err, &coded) {
		resp.Message = coded.Message()
		resp.Context = coded.Context()
	}
	return resp
}

// MarshalJSON implements json.Marshaler.
func (e *codedError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:     string(e.code),
		Message:  e.message,
		Severity: string(e.severity),
		Context:  e.context,
	})
	if err != nil {
		return nil, &codedError{
			code:     CodeInternal,
			severity: SeverityError,
			message:  "failed to marshal error response",
			cause:    err,
		}
	}
	return data, nil
}
