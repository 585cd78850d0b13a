// Package acl implements the Anti-Corruption Layer between the issuing API's
// wire representations and the pin domain. Resource DTOs and translators live
// in the issuing subpackage; request execution and error mapping live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/acl/issuing"
	"github.com/jsamuelsen11/issuing-pin-service/internal/domain"
	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// HTTPError is a non-2xx downstream response that is not a structured
// rejection. It unwraps to the domain sentinel matching the status, if any.
type HTTPError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s (status %d): %v", e.Message, e.StatusCode, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a downstream response.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	if rej, ok := pin.AsRejection(err); ok {
		return rej.StatusCode
	}
	return 0
}

// TranslateAPIError maps an issuing API error response to a domain error.
//
// Invalid-request errors on 400/404 become a *pin.RejectionError carrying the
// server code, which is what callers classify. Everything else becomes an
// *HTTPError wrapping ErrForbidden, ErrValidation, ErrNotFound or
// ErrUnavailable.
func TranslateAPIError(resp *http.Response) error {
	e := parseErrorResponse(resp)

	message := e.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	isRejection := resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound
	if isRejection && e.Type == issuing.ErrorTypeInvalidRequest {
		return &pin.RejectionError{
			StatusCode: resp.StatusCode,
			Code:       e.Code,
			Message:    message,
			Param:      e.Param,
		}
	}

	out := &HTTPError{
		StatusCode: resp.StatusCode,
		Type:       e.Type,
		Code:       e.Code,
		Message:    message,
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		out.Err = domain.ErrForbidden
	case resp.StatusCode == http.StatusPaymentRequired, resp.StatusCode == http.StatusBadRequest:
		out.Err = domain.ErrValidation
	case resp.StatusCode == http.StatusNotFound:
		out.Err = domain.ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		out.Err = domain.ErrUnavailable
	}
	return out
}

// parseErrorResponse reads the error envelope from the response. Returns an
// empty ErrorDTO if the body is missing or is not an envelope.
func parseErrorResponse(resp *http.Response) issuing.ErrorDTO {
	if resp.Body == nil {
		return issuing.ErrorDTO{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return issuing.ErrorDTO{}
	}

	var envelope issuing.ErrorResponseDTO
	if err := json.Unmarshal(body, &envelope); err != nil {
		return issuing.ErrorDTO{}
	}
	return envelope.Error
}
