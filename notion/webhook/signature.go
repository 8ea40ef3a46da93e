package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader carries the HMAC of the raw request body.
const SignatureHeader = "X-Notion-Signature"

const signaturePrefix = "sha256="

// Sign returns the signature Notion sends for body, including the sha256=
// prefix.
func Sign(verificationToken string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(verificationToken))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks an X-Notion-Signature value against body. The
// sha256= prefix is optional.
func VerifySignature(verificationToken string, body []byte, signature string) bool {
	want, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(signature), signaturePrefix))
	if err != nil || len(want) != sha256.Size {
		return false
	}
	mac := hmac.New(sha256.New, []byte(verificationToken))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), want)
}
