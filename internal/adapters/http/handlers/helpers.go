package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/issuing-pin-service/internal/domain"
)

// CardIDParam is the chi URL parameter naming the card.
const CardIDParam = "cardId"

// cardID extracts the card from the chi URL params. An empty value is left
// for parameter validation to report.
func cardID(r *http.Request) string {
	return chi.URLParam(r, CardIDParam)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body.
// PIN bodies are a handful of short strings.
const maxJSONBodyBytes = 4 << 10

// decodeJSONBody decodes the request body as JSON into dst. Unknown fields
// and oversized bodies are rejected. On failure, it writes a 400 error
// response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}
