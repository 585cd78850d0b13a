package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/acl/issuing"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

// IssuingServiceName identifies the issuing API in traces, metrics and the
// health registry.
const IssuingServiceName = "issuing-api"

// Compile-time interface checks.
var (
	_ ports.ActionExecutor = (*IssuingClient)(nil)
	_ ports.HealthChecker  = (*IssuingClient)(nil)
)

// IssuingClient is the outbound adapter for the issuing API's card PIN
// endpoints. It implements [ports.ActionExecutor]. Every call is authorized
// with the ephemeral key secret handed in by the caller.
//
// Error responses are mapped by [TranslateAPIError]: verification failures
// come back as *pin.RejectionError, everything else as a domain error.
type IssuingClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewIssuingClient creates an IssuingClient that sends requests through the
// given [httpclient.Client]. The client should carry the Stripe-Version
// default header.
func NewIssuingClient(client *httpclient.Client, logger *slog.Logger) *IssuingClient {
	return &IssuingClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// RetrievePin fetches the card's PIN from GET /v1/issuing/cards/{card}/pin.
func (c *IssuingClient) RetrievePin(ctx context.Context, cardID, verificationID, oneTimeCode, secret string) (string, error) {
	var dto issuing.PinDTO
	err := c.req.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   issuing.PinPath(cardID),
		Query:  issuing.RetrieveQuery(verificationID, oneTimeCode),
		Bearer: secret,
	}, &dto)
	if err != nil {
		return "", err
	}

	value, err := issuing.ToPIN(dto)
	if err != nil {
		return "", fmt.Errorf("decoding pin of card %s: %w", cardID, err)
	}
	return value, nil
}

// UpdatePin changes the card's PIN with POST /v1/issuing/cards/{card}/pin.
// Each call gets a fresh idempotency key, so transport retries of the same
// call are applied at most once.
func (c *IssuingClient) UpdatePin(ctx context.Context, cardID, newPIN, verificationID, oneTimeCode, secret string) error {
	return c.req.Do(ctx, Request{
		Method:         http.MethodPost,
		Path:           issuing.PinPath(cardID),
		Form:           issuing.UpdateForm(newPIN, verificationID, oneTimeCode),
		Bearer:         secret,
		IdempotencyKey: uuid.NewString(),
	}, nil)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *IssuingClient) Name() string {
	return IssuingServiceName
}

// HealthCheck reports the issuing API's availability from the circuit
// breaker state; no network call is made.
func (c *IssuingClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
