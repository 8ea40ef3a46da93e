// Package notion is a typed client for the Notion REST API.
//
// Every endpoint is reached through a request builder obtained from a
// Client. Builders collect endpoint fields with chained setters and issue
// exactly one HTTP exchange per Send. List builders additionally offer
// FetchAll and All, which follow next_cursor until the remote reports no
// more results.
package notion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	APIVersion     = "2025-09-03"
	// MaxPageSize is the largest page_size the remote accepts.
	MaxPageSize = 100

	defaultUserAgent = "notion-mcp"
	tracerName       = "github.com/foomo/notion-mcp/notion"
)

// Client holds the transport and credentials shared by all builders. It is
// safe for concurrent use.
type Client struct {
	token      string
	userAgent  string
	baseURL    string
	httpClient *http.Client
	transport  Transport
	logger     *zap.Logger
	tracer     trace.Tracer
}

type Option func(*Client)

// WithHTTPClient sets the client used by the default HTTP transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL points the default HTTP transport at another host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New returns a client authenticating with an integration token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		token:     token,
		userAgent: defaultUserAgent,
		baseURL:   DefaultBaseURL,
		logger:    zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(c.httpClient, c.baseURL)
	}
	return c
}

// endpoint is a method and a path template such as /pages/{id}.
type endpoint struct {
	method string
	route  string
}

func (e endpoint) String() string {
	return e.method + " " + e.route
}

// call is one prepared exchange. Either body is JSON encoded or raw is
// sent verbatim with contentType.
type call struct {
	endpoint
	path        string
	query       url.Values
	body        any
	raw         []byte
	contentType string
}

func (c *Client) exchange(ctx context.Context, in call, out any) error {
	op := in.endpoint.String()
	ctx, span := c.tracer.Start(ctx, "notion "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", in.method),
			attribute.String("http.route", in.route),
		),
	)
	defer span.End()

	err := c.roundTrip(ctx, span, op, in, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Debug("notion request failed",
			zap.String("op", op),
			zap.String("path", in.path),
			zap.Error(err),
		)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, span trace.Span, op string, in call, out any) error {
	req := &Request{
		Method: in.method,
		Path:   in.path,
		Query:  in.query,
		Header: http.Header{},
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("User-Agent", c.userAgent)
	switch {
	case in.raw != nil:
		req.Body = in.raw
		req.Header.Set("Content-Type", in.contentType)
	case in.body != nil:
		data, err := json.Marshal(in.body)
		if err != nil {
			return &Error{Kind: KindDeserialization, Op: op, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		req.Body = data
		req.Header.Set("Content-Type", "application/json")
	}

	if err := ctx.Err(); err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	var data []byte
	if resp.Body != nil {
		defer resp.Body.Close()
		data, err = io.ReadAll(resp.Body)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if id := resp.Header.Get("X-Request-Id"); id != "" {
		span.SetAttributes(attribute.String("notion.request_id", id))
	}
	c.logger.Debug("notion request",
		zap.String("method", in.method),
		zap.String("path", in.path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		return &Error{Kind: KindBody, Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, data)
		if apiErr.RequestID != "" {
			span.SetAttributes(attribute.String("notion.request_id", apiErr.RequestID))
		}
		return &Error{Kind: KindRemoteAPI, Op: op, Err: apiErr}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Kind: KindDeserialization, Op: op, Err: err}
	}
	return nil
}

func decodeAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{}
	if err := json.Unmarshal(data, apiErr); err != nil || apiErr.Message == "" {
		apiErr = &APIError{Message: strings.TrimSpace(string(data))}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	apiErr.Status = status
	return apiErr
}

// pathID escapes an id for use as a path segment.
func pathID(id string) string {
	return url.PathEscape(id)
}

// pageQuery encodes cursor parameters of GET list endpoints.
func pageQuery(q url.Values, startCursor string, pageSize int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if startCursor != "" {
		q.Set("start_cursor", startCursor)
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(clampPageSize(pageSize)))
	}
	return q
}

func clampPageSize(n int) int {
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

func send[T any](ctx context.Context, c *Client, in call) (*T, error) {
	out := new(T)
	if err := c.exchange(ctx, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
