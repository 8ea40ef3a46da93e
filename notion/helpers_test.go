package notion_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/foomo/notion-mcp/notion"
)

type stub struct {
	status int
	body   string
	err    error
	reader io.ReadCloser
}

func reply(body string) stub {
	return stub{status: http.StatusOK, body: body}
}

// recorder is a scripted transport that replays stubs in order and keeps
// every request it was handed.
type recorder struct {
	t        *testing.T
	mu       sync.Mutex
	stubs    []stub
	requests []*notion.Request
}

func (r *recorder) Do(ctx context.Context, req *notion.Request) (*notion.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	if len(r.stubs) == 0 {
		r.t.Errorf("unexpected request %s %s", req.Method, req.Path)
		return nil, io.ErrUnexpectedEOF
	}
	s := r.stubs[0]
	r.stubs = r.stubs[1:]
	if s.err != nil {
		return nil, s.err
	}
	body := s.reader
	if body == nil {
		body = io.NopCloser(strings.NewReader(s.body))
	}
	return &notion.Response{StatusCode: s.status, Header: http.Header{}, Body: body}, nil
}

func newClient(t *testing.T, stubs ...stub) (*notion.Client, *recorder) {
	t.Helper()
	rec := &recorder{t: t, stubs: stubs}
	return notion.New("secret_token", notion.WithTransport(rec)), rec
}

// bodyOf decodes the JSON body of a recorded request.
func bodyOf(t *testing.T, req *notion.Request) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(req.Body, &out))
	return out
}

const (
	userJSON = `{"object":"user","id":"%s","type":"person","name":"%s","person":{"email":"%s@example.com"}}`
	pageJSON = `{"object":"page","id":"p1","parent":{"type":"page_id","page_id":"root"},"archived":false,"in_trash":false,"properties":{"title":{"id":"title","type":"title","title":[{"type":"text","text":{"content":"Hello"},"plain_text":"Hello"}]}}}`
)
