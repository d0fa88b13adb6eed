package dto

import "time"

// ErrorResponse is the standard error payload returned by the API and carried
// by MCP tool error results.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Invalid query"`                       // Human-readable summary
	ErrorDetails string    `json:"error_details,omitempty" example:"invalid date format"` // Underlying cause, if any
	Timestamp    time.Time `json:"timestamp" example:"2024-01-31T12:00:00Z"`
}

// Error implements the error interface so responses can travel through
// gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
//
// Parameters:
//   - message (string): summary shown to the client.
//   - err (error): optional cause; its text goes to ErrorDetails.
//
// Returns:
//   - ErrorResponse: ready to be serialized.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
