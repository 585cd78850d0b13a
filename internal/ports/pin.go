package ports

import (
	"context"
	"weak"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
)

// ActionExecutor performs PIN actions against the issuing API. Implemented by
// the ACL adapter; called by the dispatcher once a credential is in hand.
//
// Failures are returned raw: a *pin.RejectionError for structured rejections,
// anything else for transport, authentication, or decoding failures.
type ActionExecutor interface {
	// RetrievePin returns the current PIN of the card.
	RetrievePin(ctx context.Context, cardID, verificationID, oneTimeCode, secret string) (string, error)

	// UpdatePin replaces the PIN of the card with newPIN.
	UpdatePin(ctx context.Context, cardID, newPIN, verificationID, oneTimeCode, secret string) error
}

// RetrievalHandler receives the outcome of a PIN retrieval. Exactly one
// method is called, at most once.
type RetrievalHandler interface {
	OnRetrieved(value string)
	OnError(category pin.Category, message string, cause error)
}

// UpdateHandler receives the outcome of a PIN update. Exactly one method is
// called, at most once.
type UpdateHandler interface {
	OnUpdated()
	OnError(category pin.Category, message string, cause error)
}

// RetrievalHandlerRef resolves a retrieval handler at delivery time. It
// returns nil once the handler's owner has released it.
type RetrievalHandlerRef func() RetrievalHandler

// UpdateHandlerRef resolves an update handler at delivery time. It returns
// nil once the handler's owner has released it.
type UpdateHandlerRef func() UpdateHandler

// RetrievalHandlerPtr constrains a retrieval handler to a pointer type so it
// can be referenced weakly.
type RetrievalHandlerPtr[T any] interface {
	*T
	RetrievalHandler
}

// UpdateHandlerPtr constrains an update handler to a pointer type so it can
// be referenced weakly.
type UpdateHandlerPtr[T any] interface {
	*T
	UpdateHandler
}

// WeakRetrieval returns a ref that does not keep handler alive.
func WeakRetrieval[T any, H RetrievalHandlerPtr[T]](handler H) RetrievalHandlerRef {
	ref := weak.Make((*T)(handler))
	return func() RetrievalHandler {
		h := ref.Value()
		if h == nil {
			return nil
		}
		return H(h)
	}
}

// WeakUpdate returns a ref that does not keep handler alive.
func WeakUpdate[T any, H UpdateHandlerPtr[T]](handler H) UpdateHandlerRef {
	ref := weak.Make((*T)(handler))
	return func() UpdateHandler {
		h := ref.Value()
		if h == nil {
			return nil
		}
		return H(h)
	}
}

// PinService defines the service port for credential-gated PIN actions.
// Implemented by the application layer; called by inbound adapters.
//
// Handlers are passed as refs and resolved only when the outcome is ready, so
// a pending action never keeps its caller alive. Build them with
// WeakRetrieval and WeakUpdate.
//
// Both methods return synchronously only for missing parameters
// (domain.ErrValidation). Every other outcome arrives on the handler.
type PinService interface {
	RetrievePin(ctx context.Context, params pin.RetrieveParams, handler RetrievalHandlerRef) error
	UpdatePin(ctx context.Context, params pin.UpdateParams, handler UpdateHandlerRef) error
}
