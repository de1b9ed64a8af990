// Package successtoken signs and verifies the short-lived tokens that gate
// the signup success page. A token proves "this email just completed
// registration" without any server-side state: it is an HMAC-SHA256
// signature over a compact JSON payload of email and issue time.
package successtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"
)

// DevFallbackSecret keeps local environments without configured secrets
// working. Production deployments must configure a real secret; the
// composition root refuses to start otherwise.
const DevFallbackSecret = "dev-fallback-secret-change-me"

type Payload struct {
	Email string `json:"email"`
	TS    int64  `json:"ts"`
}

// Signer signs and verifies tokens with a fixed secret. The zero value is
// unusable; construct via New.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) *Signer {
	if secret == "" {
		secret = DevFallbackSecret
	}
	return &Signer{secret: []byte(secret), now: time.Now}
}

// Sign produces base64url(payloadJSON) + "." + hex(HMAC-SHA256(payloadJSON)).
func (s *Signer) Sign(payload Payload) string {
	payloadJSON, _ := json.Marshal(payload)

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payloadJSON)
	signature := hex.EncodeToString(mac.Sum(nil))

	encoded := base64.RawURLEncoding.EncodeToString(payloadJSON)
	return encoded + "." + signature
}

// Verify returns the payload when the token is well formed, carries a valid
// signature and its age is within [0, maxAge]. Every defect - structural,
// cryptographic or temporal - collapses to nil so callers cannot leak why
// verification failed.
func (s *Signer) Verify(token string, maxAge time.Duration) *Payload {
	encoded, signature, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || signature == "" {
		return nil
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payloadJSON)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil
	}

	var payload Payload
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		return nil
	}

	age := s.now().Unix() - payload.TS
	if age < 0 || age > int64(maxAge/time.Second) {
		return nil
	}

	return &payload
}
