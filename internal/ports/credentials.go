package ports

import (
	"context"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
)

// CredentialRequest is the correlation record attached to one credential
// fetch. The manager never inspects Action; it hands the request back
// unchanged so the listener can recover what the credential was for.
type CredentialRequest struct {
	Tag    pin.Kind
	Action any
}

// CredentialListener receives the single resolution of a credential request.
// Exactly one of the two methods is called per request, on whatever goroutine
// the manager completes on.
type CredentialListener interface {
	// OnCredentialReady is called when a usable credential is available.
	OnCredentialReady(ctx context.Context, credential pin.Credential, req CredentialRequest)

	// OnCredentialError is called when no credential could be obtained. Code
	// is the backend status code, or 0 when none is known.
	OnCredentialError(ctx context.Context, code int, message string, req CredentialRequest)
}

// CredentialManager hands out short-lived credentials. Implemented by the
// ephemeral key adapter; called by the dispatcher.
type CredentialManager interface {
	// RequestCredential starts resolving a credential for req and returns
	// without blocking on network I/O. The outcome arrives on listener.
	RequestCredential(ctx context.Context, req CredentialRequest, listener CredentialListener)
}

// EphemeralKeyProvider fetches a fresh ephemeral key from the integrator's
// backend. The raw JSON is returned as-is; parsing belongs to the manager.
type EphemeralKeyProvider interface {
	CreateEphemeralKey(ctx context.Context, apiVersion string) (string, error)
}
