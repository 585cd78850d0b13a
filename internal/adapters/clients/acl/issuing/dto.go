// Package issuing implements the Anti-Corruption Layer translators for the
// issuing API's card PIN resource.
package issuing

// PinDTO matches the issuing.pin object returned by the PIN endpoints.
type PinDTO struct {
	Object string `json:"object"`
	Pin    string `json:"pin"`
}

// ErrorResponseDTO is the error envelope of every non-2xx issuing API
// response.
type ErrorResponseDTO struct {
	Error ErrorDTO `json:"error"`
}

// ErrorDTO describes a failed request. Type is the broad class
// (invalid_request_error, card_error, api_error, ...); Code is the
// machine-readable reason within it.
type ErrorDTO struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Param   string `json:"param"`
}

// Error types used by the issuing API.
const (
	ErrorTypeInvalidRequest = "invalid_request_error"
	ErrorTypeCard           = "card_error"
	ErrorTypeAPI            = "api_error"
)
