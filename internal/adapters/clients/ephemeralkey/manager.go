package ephemeralkey

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/juju/clock"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/issuing-pin-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/config"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
)

// MsgParseFailure is reported to listeners when the backend returned
// something that is not a key.
const MsgParseFailure = "Failed to parse ephemeral key response"

const fetchKey = "ephemeral_key"

// Compile-time interface check.
var _ ports.CredentialManager = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithClock sets the clock used for expiry checks. Defaults to
// clock.WallClock.
func WithClock(clk clock.Clock) Option {
	return func(m *Manager) {
		m.clock = clk
	}
}

// WithMetrics enables the ephemeral_key.fetch.total counter.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// Manager implements ports.CredentialManager. It caches the most recent key
// and reuses it until refreshBuffer before it expires. Concurrent requests
// that miss the cache share a single backend fetch.
//
// Listeners are always notified on a goroutine of the Manager's own, never
// on the caller's.
type Manager struct {
	provider      ports.EphemeralKeyProvider
	apiVersion    string
	refreshBuffer time.Duration
	fetchTimeout  time.Duration
	clock         clock.Clock
	metrics       *telemetry.Metrics
	logger        *slog.Logger

	group singleflight.Group

	mu  sync.Mutex
	key *EphemeralKey
}

// NewManager creates a Manager that mints keys for apiVersion through
// provider. A nil logger discards output.
func NewManager(
	provider ports.EphemeralKeyProvider,
	cfg *config.EphemeralKeysConfig,
	apiVersion string,
	logger *slog.Logger,
	opts ...Option,
) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		provider:      provider,
		apiVersion:    apiVersion,
		refreshBuffer: cfg.RefreshBuffer,
		fetchTimeout:  cfg.FetchTimeout,
		clock:         clock.WallClock,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RequestCredential implements ports.CredentialManager. It returns at once;
// the listener hears back exactly once.
func (m *Manager) RequestCredential(ctx context.Context, req ports.CredentialRequest, listener ports.CredentialListener) {
	if key := m.cached(); key != nil {
		go listener.OnCredentialReady(ctx, key.Credential(), req)
		return
	}

	go m.fetchAndNotify(ctx, req, listener)
}

func (m *Manager) fetchAndNotify(ctx context.Context, req ports.CredentialRequest, listener ports.CredentialListener) {
	key, err := m.fetch(ctx)
	if err != nil {
		code, message := describe(err)
		m.logger.WarnContext(ctx, "ephemeral key fetch failed",
			slog.String("operation", "RequestCredential"),
			slog.String("tag", req.Tag.String()),
			slog.Int("code", code),
			slog.Any("error", err),
		)
		listener.OnCredentialError(ctx, code, message, req)
		return
	}
	listener.OnCredentialReady(ctx, key.Credential(), req)
}

// fetch mints a new key, sharing the call with any fetch already in flight.
// The fetch outlives the caller's cancellation but not fetchTimeout.
func (m *Manager) fetch(ctx context.Context) (*EphemeralKey, error) {
	v, err, _ := m.group.Do(fetchKey, func() (any, error) {
		if key := m.cached(); key != nil {
			return key, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.fetchTimeout)
		defer cancel()

		raw, err := m.provider.CreateEphemeralKey(fetchCtx, m.apiVersion)
		if err != nil {
			m.record(ctx, "error")
			return nil, err
		}

		key, err := Parse(raw)
		if err != nil {
			m.record(ctx, "parse_error")
			return nil, err
		}

		m.record(ctx, "success")
		m.store(key)

		m.logger.DebugContext(ctx, "ephemeral key refreshed",
			slog.String("key_id", key.ID),
			slog.Time("expires_at", key.ExpiresAt()),
		)
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*EphemeralKey), nil
}

// cached returns the stored key if it is still usable.
func (m *Manager) cached() *EphemeralKey {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.key == nil || !m.key.usableAt(m.clock.Now(), m.refreshBuffer) {
		return nil
	}
	return m.key
}

func (m *Manager) store(key *EphemeralKey) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.key = key
}

func (m *Manager) record(ctx context.Context, result string) {
	if m.metrics == nil {
		return
	}
	m.metrics.EphemeralKeyFetchTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrPeerService.String(BackendServiceName),
		telemetry.AttrResult.String(result),
	))
}

// describe turns a fetch failure into the code and message given to
// listeners. The code is the backend's HTTP status, 500 for an unparseable
// key, or 0 when no status is known.
func describe(err error) (int, string) {
	if errors.Is(err, ErrParse) {
		return http.StatusInternalServerError, MsgParseFailure
	}
	return acl.StatusCode(err), err.Error()
}
