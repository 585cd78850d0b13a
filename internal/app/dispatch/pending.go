package dispatch

import (
	"sync/atomic"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

// pendingAction is one submitted PIN action waiting for its credential. It
// travels through the credential manager as the Action of a
// ports.CredentialRequest and is consumed by the first resolution.
type pendingAction struct {
	id     string
	params pin.Params

	// At most one ref is set, matching params.Kind().
	retrieval ports.RetrievalHandlerRef
	update    ports.UpdateHandlerRef

	claimed atomic.Bool
}

// claim marks the action as resolved. Only the first caller gets true.
func (p *pendingAction) claim() bool {
	return p.claimed.CompareAndSwap(false, true)
}

// retrievalHandler resolves the caller's handler, or nil if it is gone.
func (p *pendingAction) retrievalHandler() ports.RetrievalHandler {
	if p.retrieval == nil {
		return nil
	}
	return p.retrieval()
}

// updateHandler resolves the caller's handler, or nil if it is gone.
func (p *pendingAction) updateHandler() ports.UpdateHandler {
	if p.update == nil {
		return nil
	}
	return p.update()
}
