// Package dispatch implements the credential-gated PIN action dispatcher.
//
// A submitted action is parked in a pending record while the credential
// manager obtains an ephemeral credential. When the credential arrives the
// action is executed once against the issuing API and the outcome, or a
// classified error, is handed to the caller's handler.
//
// Handlers are never held strongly: the dispatcher keeps a ref that resolves
// the handler at delivery time. If the caller drops its handler before the
// action completes, the outcome is discarded.
//
//	d := dispatch.New(manager, issuingClient, logger)
//	err := dispatch.RetrievePin(ctx, d, pin.RetrieveParams{...}, handler)
package dispatch

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/issuing-pin-service/internal/domain/pin"
	"github.com/jsamuelsen11/issuing-pin-service/internal/ports"
	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/telemetry"
)

// Compile-time interface checks.
var (
	_ ports.PinService         = (*Dispatcher)(nil)
	_ ports.CredentialListener = (*Dispatcher)(nil)
)

const resultSuccess = "success"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics enables the pin.action.total counter.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// Dispatcher queues PIN actions behind a credential request and executes each
// one exactly once when its credential resolves. It holds no state between
// actions; every submit owns its pending record.
type Dispatcher struct {
	credentials ports.CredentialManager
	executor    ports.ActionExecutor
	logger      *slog.Logger
	metrics     *telemetry.Metrics
}

// New creates a Dispatcher. A nil logger discards output.
func New(credentials ports.CredentialManager, executor ports.ActionExecutor, logger *slog.Logger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	d := &Dispatcher{
		credentials: credentials,
		executor:    executor,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RetrievePin submits a PIN retrieval holding handler weakly. Missing
// parameters are reported synchronously and nothing is queued; every other
// outcome arrives on the handler.
func RetrievePin[T any, H ports.RetrievalHandlerPtr[T]](ctx context.Context, d *Dispatcher, params pin.RetrieveParams, handler H) error {
	return d.RetrievePin(ctx, params, ports.WeakRetrieval[T, H](handler))
}

// UpdatePin submits a PIN change holding handler weakly. Missing parameters
// are reported synchronously and nothing is queued.
func UpdatePin[T any, H ports.UpdateHandlerPtr[T]](ctx context.Context, d *Dispatcher, params pin.UpdateParams, handler H) error {
	return d.UpdatePin(ctx, params, ports.WeakUpdate[T, H](handler))
}

// RetrievePin implements ports.PinService. The ref is resolved once, when the
// outcome is delivered.
func (d *Dispatcher) RetrievePin(ctx context.Context, params pin.RetrieveParams, handler ports.RetrievalHandlerRef) error {
	return d.submit(ctx, params, &pendingAction{retrieval: handler})
}

// UpdatePin implements ports.PinService. The ref is resolved once, when the
// outcome is delivered.
func (d *Dispatcher) UpdatePin(ctx context.Context, params pin.UpdateParams, handler ports.UpdateHandlerRef) error {
	return d.submit(ctx, params, &pendingAction{update: handler})
}

func (d *Dispatcher) submit(ctx context.Context, params pin.Params, action *pendingAction) error {
	if err := params.Validate(); err != nil {
		return err
	}

	action.id = uuid.NewString()
	action.params = params

	d.logger.DebugContext(ctx, "pin action queued",
		slog.String("action_id", action.id),
		slog.String("kind", params.Kind().String()),
		slog.String("card_id", pin.CardOf(params)),
	)

	d.credentials.RequestCredential(ctx, ports.CredentialRequest{
		Tag:    params.Kind(),
		Action: action,
	}, d)
	return nil
}

// OnCredentialReady implements ports.CredentialListener. It runs the pending
// action with the credential and delivers the outcome. The credential is used
// for this one call only.
func (d *Dispatcher) OnCredentialReady(ctx context.Context, credential pin.Credential, req ports.CredentialRequest) {
	action, ok := d.resolve(ctx, req)
	if !ok {
		return
	}

	switch p := action.params.(type) {
	case pin.RetrieveParams:
		value, err := d.executor.RetrievePin(ctx, p.CardID, p.VerificationID, p.OneTimeCode, credential.Secret)
		if err != nil {
			d.fail(ctx, action, err)
			return
		}
		d.deliverRetrieved(ctx, action, value)

	case pin.UpdateParams:
		err := d.executor.UpdatePin(ctx, p.CardID, p.NewPIN, p.VerificationID, p.OneTimeCode, credential.Secret)
		if err != nil {
			d.fail(ctx, action, err)
			return
		}
		d.deliverUpdated(ctx, action)
	}
}

// OnCredentialError implements ports.CredentialListener. The action is not
// executed; its handler receives an EphemeralKeyError carrying message.
func (d *Dispatcher) OnCredentialError(ctx context.Context, code int, message string, req ports.CredentialRequest) {
	action, ok := d.resolve(ctx, req)
	if !ok {
		return
	}

	d.logger.WarnContext(ctx, "ephemeral key unavailable",
		slog.String("operation", "OnCredentialError"),
		slog.String("action_id", action.id),
		slog.String("kind", action.params.Kind().String()),
		slog.Int("code", code),
		slog.String("message", message),
	)

	d.deliverError(ctx, action, &pin.ActionError{
		Category: pin.EphemeralKeyError,
		Message:  message,
	})
}

// resolve recovers the pending action from a credential request and claims
// it. It reports false for foreign requests and repeat resolutions.
func (d *Dispatcher) resolve(ctx context.Context, req ports.CredentialRequest) (*pendingAction, bool) {
	action, ok := req.Action.(*pendingAction)
	if !ok || action == nil || action.params == nil {
		d.logger.WarnContext(ctx, "credential resolved for unknown request",
			slog.String("tag", req.Tag.String()),
		)
		return nil, false
	}

	if !action.claim() {
		d.logger.WarnContext(ctx, "pin action already resolved",
			slog.String("action_id", action.id),
			slog.String("kind", action.params.Kind().String()),
		)
		return nil, false
	}

	if req.Tag != action.params.Kind() {
		d.logger.WarnContext(ctx, "credential request tag does not match action",
			slog.String("action_id", action.id),
			slog.String("tag", req.Tag.String()),
			slog.String("kind", action.params.Kind().String()),
		)
	}

	return action, true
}

// fail classifies an executor error and delivers the first outcome.
func (d *Dispatcher) fail(ctx context.Context, action *pendingAction, err error) {
	outcomes := classify(err)

	d.logger.InfoContext(ctx, "pin action failed",
		slog.String("operation", action.params.Kind().String()),
		slog.String("action_id", action.id),
		slog.String("card_id", pin.CardOf(action.params)),
		slog.String("category", outcomes[0].Category.String()),
		slog.Any("error", err),
	)

	d.deliverError(ctx, action, outcomes[0])

	for _, suppressed := range outcomes[1:] {
		d.logger.DebugContext(ctx, "classification outcome suppressed",
			slog.String("action_id", action.id),
			slog.String("category", suppressed.Category.String()),
		)
	}
}

func (d *Dispatcher) deliverRetrieved(ctx context.Context, action *pendingAction, value string) {
	d.record(ctx, action, resultSuccess)

	handler := action.retrievalHandler()
	if handler == nil {
		d.dropped(ctx, action)
		return
	}
	handler.OnRetrieved(value)
}

func (d *Dispatcher) deliverUpdated(ctx context.Context, action *pendingAction) {
	d.record(ctx, action, resultSuccess)

	handler := action.updateHandler()
	if handler == nil {
		d.dropped(ctx, action)
		return
	}
	handler.OnUpdated()
}

func (d *Dispatcher) deliverError(ctx context.Context, action *pendingAction, e *pin.ActionError) {
	d.record(ctx, action, e.Category.String())

	switch action.params.Kind() {
	case pin.KindRetrieve:
		if handler := action.retrievalHandler(); handler != nil {
			handler.OnError(e.Category, e.Message, e.Cause)
			return
		}
	case pin.KindUpdate:
		if handler := action.updateHandler(); handler != nil {
			handler.OnError(e.Category, e.Message, e.Cause)
			return
		}
	}
	d.dropped(ctx, action)
}

func (d *Dispatcher) dropped(ctx context.Context, action *pendingAction) {
	d.logger.DebugContext(ctx, "pin action handler gone, outcome dropped",
		slog.String("action_id", action.id),
		slog.String("kind", action.params.Kind().String()),
	)
}

func (d *Dispatcher) record(ctx context.Context, action *pendingAction, result string) {
	if d.metrics == nil {
		return
	}
	d.metrics.PinActionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrPinAction.String(action.params.Kind().String()),
		telemetry.AttrResult.String(result),
	))
}
