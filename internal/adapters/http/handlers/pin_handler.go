package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/logging"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

// PinHandler handles the card PIN endpoints. Each request waits for its
// action to resolve, bounded by the request context. The service only gets a
// weak ref to the waiter, so an abandoned request does not outlive its
// handler.
type PinHandler struct {
	service ports.PinService
}

// NewPinHandler creates a new PinHandler with the given PIN service.
func NewPinHandler(service ports.PinService) *PinHandler {
	return &PinHandler{service: service}
}

// RetrievePin handles POST /api/v1/cards/{cardId}/pin/retrieve.
func (h *PinHandler) RetrievePin(w http.ResponseWriter, r *http.Request) {
	var req dto.RetrievePinRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	card := cardID(r)
	waiter := newPinWaiter()
	if err := h.service.RetrievePin(r.Context(), req.ToParams(card), ports.WeakRetrieval(waiter)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	value, err := waiter.wait(r.Context())
	if err != nil {
		h.logFailure(r, "RetrievePin", err)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PinResponse{CardID: card, PIN: value})
}

// UpdatePin handles PUT /api/v1/cards/{cardId}/pin.
func (h *PinHandler) UpdatePin(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePinRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	waiter := newPinWaiter()
	if err := h.service.UpdatePin(r.Context(), req.ToParams(cardID(r)), ports.WeakUpdate(waiter)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if _, err := waiter.wait(r.Context()); err != nil {
		h.logFailure(r, "UpdatePin", err)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PinHandler) logFailure(r *http.Request, operation string, err error) {
	logging.FromContext(r.Context()).InfoContext(r.Context(), "pin action failed",
		slog.String("operation", operation),
		slog.String("card_id", cardID(r)),
		slog.Any("error", err),
	)
}
