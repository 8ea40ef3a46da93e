package webhook_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foomo/notion-mcp/notion/webhook"
)

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	const token = "secret_token"
	body := []byte(`{"id":"1","type":"page.created"}`)
	signature := webhook.Sign(token, body)

	assert.True(t, strings.HasPrefix(signature, "sha256="))
	assert.True(t, webhook.VerifySignature(token, body, signature))
	assert.True(t, webhook.VerifySignature(token, body, strings.TrimPrefix(signature, "sha256=")), "prefix is optional")

	assert.False(t, webhook.VerifySignature(token, []byte(`{"id":"2"}`), signature), "wrong message")
	assert.False(t, webhook.VerifySignature("other", body, signature), "wrong key")
	assert.False(t, webhook.VerifySignature(token, body, "sha256=deadbeef"), "wrong tag")
	assert.False(t, webhook.VerifySignature(token, body, "sha256=not-hex"), "malformed")
	assert.False(t, webhook.VerifySignature(token, body, ""), "missing")
}
