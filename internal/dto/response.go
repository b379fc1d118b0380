package dto

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewErrorResponse builds the standard failure envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// MessageResponse is the envelope for successful requests that return a
// confirmation instead of data, e.g. deletions.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
