// Package api is the gateway to the remote job-match service. The Client is
// the only component that performs outbound calls: it attaches the bearer
// credential to every request and folds transport errors, application errors,
// and unparsable responses into a single NormalizedError shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jobmatch/webclient/token"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/jobmatch/webclient/api"

// genericErrorDetail is the synthesized detail when an error response body
// cannot be parsed.
const genericErrorDetail = "An error occurred"

// NormalizedError is the one error shape every Client call can produce.
// Status is zero for transport failures that never reached the server.
type NormalizedError struct {
	Detail string `json:"detail"`
	Status int    `json:"status,omitempty"`
}

func (e *NormalizedError) Error() string {
	if e.Status == 0 {
		return e.Detail
	}
	return fmt.Sprintf("%s (status %d)", e.Detail, e.Status)
}

// Client talks to the remote API. Construct one per process and inject it;
// the credential it carries lives in the token.Holder.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *token.Holder
	tracer  trace.Tracer
}

// New creates a Client bound to baseURL. A credential persisted from a
// previous run is loaded eagerly through the holder.
func New(baseURL string, tokens *token.Holder, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		tracer:  otel.Tracer(tracerName),
	}
	c.tokens.Get()
	return c
}

// SetToken replaces the stored credential. The very next call observes the
// new value. An empty string clears.
func (c *Client) SetToken(value string) {
	c.tokens.Set(value)
}

// Token returns the current credential, or "" when anonymous.
func (c *Client) Token() string {
	return c.tokens.Get()
}

// do performs a JSON request against path. body, when non-nil, is serialized
// as the JSON request body; out, when non-nil, receives the decoded response.
// Every failure is surfaced as a *NormalizedError. No retries, no implicit
// timeout; cancellation comes from ctx.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s %s", method, path),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.path", path),
		),
	)
	defer span.End()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(span, &NormalizedError{Detail: fmt.Sprintf("encode request: %v", err)})
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.fail(span, &NormalizedError{Detail: fmt.Sprintf("build request: %v", err)})
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(span, &NormalizedError{Detail: err.Error()})
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(span, normalize(resp, genericErrorDetail))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return c.fail(span, &NormalizedError{Detail: "malformed response body"})
		}
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// authorize attaches the bearer header when a credential is present.
func (c *Client) authorize(req *http.Request) {
	if tok := c.tokens.Get(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func (c *Client) fail(span trace.Span, nerr *NormalizedError) error {
	span.RecordError(nerr)
	span.SetStatus(codes.Error, nerr.Detail)
	return nerr
}

// normalize turns a non-2xx response into a NormalizedError. The server's
// structured detail is preferred; an unparsable body gets the fallback detail
// with the raw status attached.
func normalize(resp *http.Response, fallbackDetail string) *NormalizedError {
	var nerr NormalizedError
	if err := json.NewDecoder(resp.Body).Decode(&nerr); err != nil || nerr.Detail == "" {
		return &NormalizedError{Detail: fallbackDetail, Status: resp.StatusCode}
	}
	nerr.Status = resp.StatusCode
	return &nerr
}
