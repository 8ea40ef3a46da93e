package notion

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Request is a fully encoded exchange handed to a Transport. Path is
// relative to the base URL and already carries resolved ids.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response is what a Transport returns for any HTTP status. The client
// reads and closes Body.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Transport performs one HTTP exchange. An error means no response was
// received at all.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to a Transport.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPTransport sends requests with a net/http client and inflates gzip
// encoded bodies.
type HTTPTransport struct {
	client  *http.Client
	baseURL string
}

func NewHTTPTransport(client *http.Client, baseURL string) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	u := t.baseURL + req.Path
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}
	// setting the header disables the automatic decoding of net/http
	httpReq.Header.Set("Accept-Encoding", "gzip")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		out.Body = &gzipBody{src: resp.Body}
		out.Header.Del("Content-Encoding")
	}
	return out, nil
}

// gzipBody opens the gzip stream on first read so header errors surface
// while the body is being ingested.
type gzipBody struct {
	src io.ReadCloser
	zr  *gzip.Reader
}

func (b *gzipBody) Read(p []byte) (int, error) {
	if b.zr == nil {
		zr, err := gzip.NewReader(b.src)
		if err != nil {
			return 0, err
		}
		b.zr = zr
	}
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	if b.zr != nil {
		_ = b.zr.Close()
	}
	return b.src.Close()
}
