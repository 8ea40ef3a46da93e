package webhook_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/foomo/notion-mcp/notion/webhook"
)

func deliver(h http.Handler, method, body, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/webhook", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(webhook.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	t.Parallel()

	const token = "secret_token"
	body := sprintf(envelope, "page.created", `{"parent": {"id": "p", "type": "space"}}`)

	t.Run("dispatches signed events", func(t *testing.T) {
		t.Parallel()

		var typed, all []string
		h := webhook.NewHandler(zaptest.NewLogger(t), webhook.WithVerificationToken(token))
		h.Handle(webhook.PageCreated, func(_ context.Context, e *webhook.Event) error {
			typed = append(typed, e.ID)
			return nil
		})
		h.Handle(webhook.PageDeleted, func(context.Context, *webhook.Event) error {
			t.Error("unexpected dispatch")
			return nil
		})
		h.HandleAll(func(_ context.Context, e *webhook.Event) error {
			all = append(all, string(e.Type))
			return nil
		})

		rec := deliver(h, http.MethodPost, body, webhook.Sign(token, []byte(body)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"367cba44-b6f3-4c92-81e7-6a2e9659efd4"}, typed)
		assert.Equal(t, []string{"page.created"}, all)
	})

	t.Run("rejects bad signature", func(t *testing.T) {
		t.Parallel()

		h := webhook.NewHandler(zaptest.NewLogger(t), webhook.WithVerificationToken(token))
		h.HandleAll(func(context.Context, *webhook.Event) error {
			t.Error("unexpected dispatch")
			return nil
		})
		assert.Equal(t, http.StatusUnauthorized, deliver(h, http.MethodPost, body, webhook.Sign("other", []byte(body))).Code)
		assert.Equal(t, http.StatusUnauthorized, deliver(h, http.MethodPost, body, "").Code)
	})

	t.Run("accepts unsigned without token", func(t *testing.T) {
		t.Parallel()

		h := webhook.NewHandler(zaptest.NewLogger(t))
		assert.Equal(t, http.StatusOK, deliver(h, http.MethodPost, body, "").Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		h := webhook.NewHandler(zaptest.NewLogger(t))
		assert.Equal(t, http.StatusMethodNotAllowed, deliver(h, http.MethodGet, "", "").Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()

		h := webhook.NewHandler(zaptest.NewLogger(t))
		assert.Equal(t, http.StatusBadRequest, deliver(h, http.MethodPost, `{"type": 1}`, "").Code)
	})

	t.Run("handler error", func(t *testing.T) {
		t.Parallel()

		h := webhook.NewHandler(zaptest.NewLogger(t))
		h.HandleAll(func(context.Context, *webhook.Event) error {
			return errors.New("boom")
		})
		assert.Equal(t, http.StatusInternalServerError, deliver(h, http.MethodPost, body, "").Code)
	})

	t.Run("verification handshake", func(t *testing.T) {
		t.Parallel()

		var got string
		h := webhook.NewHandler(zaptest.NewLogger(t),
			webhook.WithVerificationToken(token),
			webhook.OnVerification(func(_ context.Context, token string) {
				got = token
			}),
		)
		rec := deliver(h, http.MethodPost, `{"verification_token": "secret_new"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret_new", got)
	})
}
