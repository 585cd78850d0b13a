package handlers

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

var (
	_ ports.RetrievalHandler = (*pinWaiter)(nil)
	_ ports.UpdateHandler    = (*pinWaiter)(nil)
)

type pinResult struct {
	value string
	err   *pin.ActionError
}

// pinWaiter turns the dispatcher's callback into a value the request
// goroutine can block on. It serves both retrieval and update; the first
// callback wins and later ones are ignored.
type pinWaiter struct {
	results chan pinResult
}

func newPinWaiter() *pinWaiter {
	return &pinWaiter{results: make(chan pinResult, 1)}
}

func (pw *pinWaiter) OnRetrieved(value string) {
	pw.deliver(pinResult{value: value})
}

func (pw *pinWaiter) OnUpdated() {
	pw.deliver(pinResult{})
}

func (pw *pinWaiter) OnError(category pin.Category, message string, cause error) {
	pw.deliver(pinResult{err: &pin.ActionError{Category: category, Message: message, Cause: cause}})
}

func (pw *pinWaiter) deliver(res pinResult) {
	select {
	case pw.results <- res:
	default:
	}
}

// wait blocks until the action resolves or ctx is done. A failed action
// comes back as a *pin.ActionError.
func (pw *pinWaiter) wait(ctx context.Context) (string, error) {
	select {
	case res := <-pw.results:
		if res.err != nil {
			return "", res.err
		}
		return res.value, nil
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for pin action: %w", ctx.Err())
	}
}
