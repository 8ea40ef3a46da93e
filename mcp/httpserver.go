package mcp

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/foomo/notion-mcp/notion/webhook"
)

const (
	WebhookPath = "/webhook"
	SSEPath     = "/sse"
)

// httpRequestKey is a custom context key for storing the original HTTP request
type httpRequestKey struct{}

// withHTTPRequest adds the original HTTP request to the context
func withHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, req)
}

// HTTPRequestFromContext extracts the original HTTP request from the context
func HTTPRequestFromContext(ctx context.Context) (*http.Request, bool) {
	req, ok := ctx.Value(httpRequestKey{}).(*http.Request)
	return req, ok
}

// NewMcpHTTPServer creates the streamable MCP endpoint
func NewMcpHTTPServer(s *server.MCPServer, endpoint string) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath(endpoint),
		server.WithHTTPContextFunc(withHTTPRequest),
	)
}

// McpHTTPSSEServer combines the MCP endpoint with the webhook receiver and
// the SSE stream of received events
type McpHTTPSSEServer struct {
	mux       *http.ServeMux
	sseServer *SSEServer
	webhooks  *webhook.Handler
}

// NewMcpHTTPSSEServer wires the webhook receiver to the SSE broadcast
func NewMcpHTTPSSEServer(ctx context.Context, logger *zap.Logger, s *server.MCPServer, webhooks *webhook.Handler, endpoint string, config *SSEServerConfig) *McpHTTPSSEServer {
	sseServer := NewSSEServer(ctx, logger, config)
	webhooks.HandleAll(sseServer.PublishWebhookEvent)

	mux := http.NewServeMux()
	mux.Handle(endpoint, NewMcpHTTPServer(s, endpoint))
	mux.Handle(WebhookPath, webhooks)
	mux.HandleFunc(SSEPath, sseServer.HandleSSE)
	mux.HandleFunc(SSEPath+"/clients", func(w http.ResponseWriter, r *http.Request) {
		clients := sseServer.GetConnectedClients()
		writeJSON(logger, w, map[string]any{
			"connectedClients": len(clients),
			"clients":          clients,
		})
	})
	mux.HandleFunc(SSEPath+"/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(logger, w, sseServer.GetStats())
	})

	return &McpHTTPSSEServer{
		mux:       mux,
		sseServer: sseServer,
		webhooks:  webhooks,
	}
}

func writeJSON(logger *zap.Logger, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}

// ServeHTTP implements http.Handler
func (s *McpHTTPSSEServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// GetSSEServer returns the underlying SSE server for direct access
func (s *McpHTTPSSEServer) GetSSEServer() *SSEServer {
	return s.sseServer
}
