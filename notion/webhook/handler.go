package webhook

import (
	"context"
	"io"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// EventHandlerFunc processes one decoded event. A returned error answers the
// delivery with 500 so Notion retries it.
type EventHandlerFunc func(ctx context.Context, event *Event) error

// VerificationFunc receives the token of a subscription handshake.
type VerificationFunc func(ctx context.Context, token string)

// Handler receives webhook deliveries over HTTP.
type Handler struct {
	l              *zap.Logger
	tracer         trace.Tracer
	token          string
	handlers       map[EventType][]EventHandlerFunc
	fallback       []EventHandlerFunc
	onVerification VerificationFunc
}

type HandlerOption func(*Handler)

// WithVerificationToken enables signature checks. Without a token every
// delivery is accepted.
func WithVerificationToken(token string) HandlerOption {
	return func(h *Handler) {
		h.token = token
	}
}

func WithHandlerTracer(tracer trace.Tracer) HandlerOption {
	return func(h *Handler) {
		h.tracer = tracer
	}
}

func OnVerification(fn VerificationFunc) HandlerOption {
	return func(h *Handler) {
		h.onVerification = fn
	}
}

func NewHandler(l *zap.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		l:        l,
		tracer:   otel.Tracer("github.com/foomo/notion-mcp/notion/webhook"),
		handlers: map[EventType][]EventHandlerFunc{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle registers fn for one event type.
func (h *Handler) Handle(t EventType, fn EventHandlerFunc) {
	h.handlers[t] = append(h.handlers[t], fn)
}

// HandleAll registers fn for every event, including unknown types.
func (h *Handler) HandleAll(fn EventHandlerFunc) {
	h.fallback = append(h.fallback, fn)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "notion webhook")
	defer span.End()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		span.RecordError(err)
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if v, ok := DecodeVerification(body); ok {
		h.l.Info("received webhook verification token")
		if h.onVerification != nil {
			h.onVerification(ctx, v.VerificationToken)
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	if h.token != "" && !VerifySignature(h.token, body, r.Header.Get(SignatureHeader)) {
		span.SetStatus(codes.Error, "invalid signature")
		h.l.Warn("rejected webhook with invalid signature")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	event, err := Decode(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid payload")
		h.l.Warn("rejected webhook payload", zap.Error(err))
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	span.SetAttributes(
		attribute.String("notion.event.id", event.ID),
		attribute.String("notion.event.type", string(event.Type)),
	)

	if err := h.dispatch(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.l.Error("failed to process webhook event",
			zap.String("id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
		http.Error(w, "failed to process event", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) dispatch(ctx context.Context, event *Event) error {
	for _, fn := range h.handlers[event.Type] {
		if err := fn(ctx, event); err != nil {
			return err
		}
	}
	for _, fn := range h.fallback {
		if err := fn(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
