package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain"
	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
)

// FailureCodeHeader carries the PIN failure category of an error response,
// mirroring the body's code member for middleware that never reads bodies.
const FailureCodeHeader = "Pin-Failure-Code"

// ErrorResponse represents an RFC 9457 Problem Details response. Code is an
// extension member carrying the PIN failure category, when there is one.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Code     string        `json:"code,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// pathFields are validation fields that come from the URL, not the body.
var pathFields = map[string]bool{
	"card_id": true,
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from an error.
// The request is used to populate the instance field with the request URI.
//
// A *pin.ActionError is rendered with its caller-facing message only; the
// underlying cause never reaches the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	var actionErr *pin.ActionError
	if errors.As(err, &actionErr) {
		status := categoryToStatus(actionErr.Category)
		return ErrorResponse{
			Type:     "about:blank",
			Title:    http.StatusText(status),
			Status:   status,
			Detail:   actionErr.Message,
			Instance: r.RequestURI,
			Code:     actionErr.Category.String(),
		}
	}

	status := errorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON. PIN
// failures also get FailureCodeHeader.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	if resp.Code != "" {
		w.Header().Set(FailureCodeHeader, resp.Code)
	}
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// categoryToStatus maps PIN failure categories to HTTP status codes.
func categoryToStatus(c pin.Category) int {
	switch c {
	case pin.OneTimeCodeIncorrect, pin.OneTimeCodeExpired:
		return http.StatusUnprocessableEntity
	case pin.OneTimeCodeTooManyAttempts:
		return http.StatusTooManyRequests
	case pin.EphemeralKeyError, pin.UnknownError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorToStatus maps domain sentinel errors to HTTP status codes.
func errorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to sorted
// ErrorDetail entries.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		location := "body." + field
		if pathFields[field] {
			location = "path." + field
		}
		details = append(details, ErrorDetail{
			Location: location,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
