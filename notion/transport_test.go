package notion_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/foomo/notion-mcp/notion"
)

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestHTTPTransportInflatesGzip(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(gzipped(t, pageJSON))
	}))
	defer server.Close()

	client := notion.New("tok", notion.WithBaseURL(server.URL+"/v1"), notion.WithHTTPClient(server.Client()))
	page, err := client.GetPage("p1").FilterProperties("title").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello", page.Title())

	require.NotNil(t, got)
	assert.Equal(t, "/v1/pages/p1", got.URL.Path)
	assert.Equal(t, "title", got.URL.Query().Get("filter_properties"))
	assert.Equal(t, "gzip", got.Header.Get("Accept-Encoding"))
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, notion.APIVersion, got.Header.Get("Notion-Version"))
}

func TestHTTPTransportBrokenGzipIsBodyError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte("definitely not gzip"))
	}))
	defer server.Close()

	client := notion.New("tok", notion.WithBaseURL(server.URL), notion.WithHTTPClient(server.Client()))
	_, err := client.GetSelf().Send(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, notion.ErrBody)
}

func TestHTTPTransportPlainBodyAndMethod(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"parent":{"type":"page_id","page_id":"A"}}`, string(body))
		_, _ = w.Write([]byte(pageJSON))
	}))
	defer server.Close()

	client := notion.New("tok", notion.WithBaseURL(server.URL+"/"), notion.WithHTTPClient(server.Client()))
	_, err := client.MovePage("p1").ToPage("A").Send(context.Background())
	require.NoError(t, err)
}

func TestHTTPTransportConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := notion.New("tok", notion.WithBaseURL(url))
	_, err := client.GetSelf().Send(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, notion.ErrTransport)
}

func TestClientLogsExchanges(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := &recorder{t: t, stubs: []stub{reply(`{"object":"user","id":"bot","type":"bot","bot":{}}`)}}
	client := notion.New("tok", notion.WithTransport(rec), notion.WithLogger(zap.New(core)))

	_, err := client.GetSelf().Send(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("notion request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/users/me", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
