package mcp

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foomo/notion-mcp/notion/webhook"
)

// SSEEvent represents an SSE event structure
type SSEEvent struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func newSSEEvent(event string, data any) SSEEvent {
	return SSEEvent{
		ID:        uuid.NewString(),
		Event:     event,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID       string
	Writer   http.ResponseWriter
	Flusher  http.Flusher
	Done     chan struct{}
	LastSeen time.Time

	mu sync.Mutex
}

// SSEServer fans webhook events out to connected SSE clients
type SSEServer struct {
	logger       *zap.Logger
	config       *SSEServerConfig
	clients      map[string]*SSEClient
	clientsMutex sync.RWMutex
	broadcast    chan SSEEvent
	published    atomic.Uint64
	dropped      atomic.Uint64
}

// SSEServerConfig holds configuration for the SSE server
type SSEServerConfig struct {
	KeepaliveInterval time.Duration
	BufferSize        int
	ClientTimeout     time.Duration
}

// DefaultSSEServerConfig returns the default configuration for SSE server
func DefaultSSEServerConfig() *SSEServerConfig {
	return &SSEServerConfig{
		KeepaliveInterval: 30 * time.Second,
		BufferSize:        100,
		ClientTimeout:     60 * time.Second,
	}
}

// NewSSEServer creates a new SSE server and starts its broadcast loop. The
// loop ends when ctx is done.
func NewSSEServer(ctx context.Context, logger *zap.Logger, config *SSEServerConfig) *SSEServer {
	if config == nil {
		config = DefaultSSEServerConfig()
	}

	sseServer := &SSEServer{
		logger:    logger,
		config:    config,
		clients:   make(map[string]*SSEClient),
		broadcast: make(chan SSEEvent, config.BufferSize),
	}

	go sseServer.broadcastLoop(ctx)

	return sseServer
}

// broadcastLoop handles broadcasting events to all connected clients
func (s *SSEServer) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-s.broadcast:
			s.clientsMutex.RLock()
			clients := make([]*SSEClient, 0, len(s.clients))
			for _, client := range s.clients {
				clients = append(clients, client)
			}
			s.clientsMutex.RUnlock()

			for _, client := range clients {
				if err := s.sendEventToClient(client, event); err != nil {
					s.logger.Error("failed to send event to client", zap.String("clientID", client.ID), zap.Error(err))
					s.removeClient(client.ID)
				}
			}
		}
	}
}

// sendEventToClient sends an SSE event to a specific client
func (s *SSEServer) sendEventToClient(client *SSEClient, event SSEEvent) error {
	client.mu.Lock()
	defer client.mu.Unlock()

	select {
	case <-client.Done:
		return nil
	default:
	}
	return writeEvent(client, event)
}

// writeEvent formats an event as SSE; the caller holds client.mu
func writeEvent(client *SSEClient, event SSEEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := fmt.Fprintf(client.Writer, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Event, eventJSON); err != nil {
		return err
	}
	client.Flusher.Flush()
	client.LastSeen = time.Now()
	return nil
}

// addClient adds a new SSE client
func (s *SSEServer) addClient(w http.ResponseWriter) *SSEClient {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return nil
	}

	client := &SSEClient{
		ID:       uuid.NewString(),
		Writer:   w,
		Flusher:  flusher,
		Done:     make(chan struct{}),
		LastSeen: time.Now(),
	}

	// no broadcast reaches the client before the connected event
	client.mu.Lock()
	s.clientsMutex.Lock()
	s.clients[client.ID] = client
	s.clientsMutex.Unlock()

	connectEvent := newSSEEvent("connected", map[string]string{
		"clientID": client.ID,
		"message":  "Connected to Notion event stream",
	})
	err := writeEvent(client, connectEvent)
	client.mu.Unlock()
	if err != nil {
		s.logger.Error("failed to send connection event", zap.String("clientID", client.ID), zap.Error(err))
		s.removeClient(client.ID)
		return nil
	}

	s.logger.Info("SSE client connected", zap.String("clientID", client.ID))
	return client
}

// removeClient removes a client from the server
func (s *SSEServer) removeClient(clientID string) {
	s.clientsMutex.Lock()
	client, exists := s.clients[clientID]
	delete(s.clients, clientID)
	s.clientsMutex.Unlock()

	if exists {
		client.mu.Lock()
		close(client.Done)
		client.mu.Unlock()
		s.logger.Info("SSE client disconnected", zap.String("clientID", clientID))
	}
}

// broadcastEvent queues an event for all connected clients
func (s *SSEServer) broadcastEvent(event SSEEvent) {
	select {
	case s.broadcast <- event:
		s.published.Add(1)
	default:
		s.dropped.Add(1)
		s.logger.Warn("broadcast channel full, dropping event", zap.String("eventID", event.ID))
	}
}

// PublishWebhookEvent broadcasts a decoded webhook event. It matches
// webhook.EventHandlerFunc.
func (s *SSEServer) PublishWebhookEvent(_ context.Context, event *webhook.Event) error {
	s.broadcastEvent(newSSEEvent(string(event.Type), event))
	return nil
}

// HandleSSE handles SSE client connections
func (s *SSEServer) HandleSSE(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	client := s.addClient(w)
	if client == nil {
		return
	}

	ticker := time.NewTicker(s.config.KeepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			s.removeClient(client.ID)
			return
		case <-client.Done:
			return
		case <-ticker.C:
			keepaliveEvent := newSSEEvent("keepalive", map[string]any{"timestamp": time.Now()})
			if err := s.sendEventToClient(client, keepaliveEvent); err != nil {
				s.removeClient(client.ID)
				return
			}
		}
	}
}

// GetConnectedClients returns information about connected clients
func (s *SSEServer) GetConnectedClients() []map[string]any {
	s.clientsMutex.RLock()
	connected := make([]*SSEClient, 0, len(s.clients))
	for _, client := range s.clients {
		connected = append(connected, client)
	}
	s.clientsMutex.RUnlock()

	clients := make([]map[string]any, 0, len(connected))
	for _, client := range connected {
		client.mu.Lock()
		lastSeen := client.LastSeen
		client.mu.Unlock()
		clients = append(clients, map[string]any{
			"id":        client.ID,
			"lastSeen":  lastSeen,
			"connected": time.Since(lastSeen) < s.config.ClientTimeout,
		})
	}
	return clients
}

// GetStats returns server statistics
func (s *SSEServer) GetStats() map[string]any {
	s.clientsMutex.RLock()
	connected := len(s.clients)
	s.clientsMutex.RUnlock()

	return map[string]any{
		"connectedClients": connected,
		"bufferSize":       len(s.broadcast),
		"publishedEvents":  s.published.Load(),
		"droppedEvents":    s.dropped.Load(),
		"serverVersion":    Version,
	}
}
