package ephemeralkey

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

// BackendServiceName identifies the key backend in traces, metrics and the
// health registry.
const BackendServiceName = "ephemeral-key-backend"

const keysPath = "/ephemeral_keys"

// Compile-time interface checks.
var (
	_ ports.EphemeralKeyProvider = (*HTTPProvider)(nil)
	_ ports.HealthChecker        = (*HTTPProvider)(nil)
)

// HTTPProvider mints keys by calling POST /ephemeral_keys on the
// integrator's backend.
type HTTPProvider struct {
	req *acl.Requester
}

// NewHTTPProvider creates an HTTPProvider on top of the backend's HTTP client.
func NewHTTPProvider(client *httpclient.Client, logger *slog.Logger) *HTTPProvider {
	return &HTTPProvider{req: acl.NewRequester(client, logger)}
}

// CreateEphemeralKey returns the backend's raw key JSON for apiVersion.
// Non-2xx responses come back as *acl.HTTPError carrying the status. The
// request carries an idempotency key so the client may retry it.
func (p *HTTPProvider) CreateEphemeralKey(ctx context.Context, apiVersion string) (string, error) {
	form := url.Values{}
	form.Set("api_version", apiVersion)

	body, err := p.req.DoRaw(ctx, acl.Request{
		Method:         http.MethodPost,
		Path:           keysPath,
		Form:           form,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Name implements ports.HealthChecker.
func (p *HTTPProvider) Name() string {
	return BackendServiceName
}

// HealthCheck reports the backend's availability from the circuit breaker.
func (p *HTTPProvider) HealthCheck(ctx context.Context) error {
	return p.req.HealthCheck(ctx)
}
