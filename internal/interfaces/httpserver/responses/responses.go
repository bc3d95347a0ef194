// Package responses contains HTTP response DTOs for the voice broker.
// Session-specific response types are in the session subpackage.
package responses

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Agent not found or unauthorized"`
}
