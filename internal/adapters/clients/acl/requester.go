package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/issuing-pin-service/internal/platform/httpclient"
)

// maxResponseBodySize limits how much of a success response body we read.
const maxResponseBodySize = 1 << 20 // 1 MB

// Request describes one outbound call. Form, when set, is sent
// form-encoded as the body. Bearer, when set, is sent as the Authorization
// credential. IdempotencyKey lets the HTTP client retry a POST. A zero
// WantStatus means 200.
type Request struct {
	Method         string
	Path           string
	Query          url.Values
	Form           url.Values
	Bearer         string
	IdempotencyKey string
	WantStatus     int
}

// Requester centralizes the HTTP request lifecycle for ACL clients: request
// creation, form encoding, authorization, execution via httpclient.Client,
// response body cleanup, status code validation, error translation, and
// JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Do executes the request and decodes the JSON response into respBody. Pass
// nil respBody when the body is not needed. A status other than WantStatus
// is passed to TranslateAPIError.
func (r *Requester) Do(ctx context.Context, in Request, respBody any) error {
	body, err := r.DoRaw(ctx, in)
	if err != nil {
		return err
	}

	if respBody != nil {
		if err := json.Unmarshal(body, respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", in.Method, in.Path, err)
		}
	}
	return nil
}

// DoRaw executes the request and returns the response body unparsed.
func (r *Requester) DoRaw(ctx context.Context, in Request) ([]byte, error) {
	req, err := r.newRequest(ctx, in)
	if err != nil {
		return nil, err
	}

	want := in.WantStatus
	if want == 0 {
		want = http.StatusOK
	}
	return r.execute(req, want)
}

// HealthCheck delegates to the underlying HTTP client's breaker-based check.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) newRequest(ctx context.Context, in Request) (*http.Request, error) {
	target := r.client.BaseURL() + in.Path
	if len(in.Query) > 0 {
		target += "?" + in.Query.Encode()
	}

	var body io.Reader = http.NoBody
	if in.Form != nil {
		body = strings.NewReader(in.Form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", in.Method, in.Path, err)
	}

	req.Header.Set("Accept", "application/json")
	if in.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if in.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+in.Bearer)
	}
	if in.IdempotencyKey != "" {
		req.Header.Set(httpclient.IdempotencyKeyHeader, in.IdempotencyKey)
	}
	return req, nil
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and reads the response
// body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, wantStatus int) ([]byte, error) {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// httpclient.Do returns both resp and err when retries are exhausted
		// on a retryable status. Translate the response rather than the
		// retry error.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return nil, TranslateAPIError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		translateErr := TranslateAPIError(resp)
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return nil, translateErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return body, nil
}
