// Package api defines response envelopes shared across HTTP handlers.
package api

// ErrorResponse is the JSON error envelope returned on any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a static informational message.
type MessageResponse struct {
	Message string `json:"message"`
}
