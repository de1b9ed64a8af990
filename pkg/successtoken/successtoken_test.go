package successtoken

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s := New("test-secret")

	payload := Payload{Email: "a@example.com", TS: time.Now().Unix()}
	token := s.Sign(payload)

	got := s.Verify(token, 10*time.Minute)
	require.NotNil(t, got)
	assert.Equal(t, payload.Email, got.Email)
	assert.Equal(t, payload.TS, got.TS)
}

func TestTokenFormat(t *testing.T) {
	s := New("test-secret")
	token := s.Sign(Payload{Email: "a@example.com", TS: 1700000000})

	encoded, signature, ok := strings.Cut(token, ".")
	require.True(t, ok)

	payloadJSON, err := base64.RawURLEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"a@example.com","ts":1700000000}`, string(payloadJSON))

	// hex-encoded HMAC-SHA256
	assert.Len(t, signature, 64)
	assert.Equal(t, strings.ToLower(signature), signature)
}

func TestExpiredToken(t *testing.T) {
	s := New("test-secret")

	token := s.Sign(Payload{Email: "a@example.com", TS: time.Now().Unix() - 10000})
	assert.Nil(t, s.Verify(token, 60*time.Second))
}

func TestFutureTimestamp(t *testing.T) {
	s := New("test-secret")

	// Clock skew into the future is rejected, not tolerated.
	token := s.Sign(Payload{Email: "a@example.com", TS: time.Now().Unix() + 3600})
	assert.Nil(t, s.Verify(token, 10*time.Minute))
}

func TestTamperedPayload(t *testing.T) {
	s := New("test-secret")
	token := s.Sign(Payload{Email: "a@example.com", TS: time.Now().Unix()})

	encoded, signature, ok := strings.Cut(token, ".")
	require.True(t, ok)

	payloadJSON, err := base64.RawURLEncoding.DecodeString(encoded)
	require.NoError(t, err)

	// Swap the email, keep the original signature.
	tampered := strings.Replace(string(payloadJSON), "a@example.com", "b@example.com", 1)
	forged := base64.RawURLEncoding.EncodeToString([]byte(tampered)) + "." + signature

	assert.Nil(t, s.Verify(forged, 10*time.Minute))
}

func TestMalformedTokens(t *testing.T) {
	s := New("test-secret")

	cases := []string{
		"",
		"no-separator",
		".onlysignature",
		"onlypayload.",
		"!!!notbase64!!!.deadbeef",
		s.Sign(Payload{Email: "a@example.com", TS: time.Now().Unix()})[:10],
	}
	for _, token := range cases {
		assert.Nil(t, s.Verify(token, 10*time.Minute), "token %q should not verify", token)
	}
}

func TestWrongSecret(t *testing.T) {
	token := New("secret-one").Sign(Payload{Email: "a@example.com", TS: time.Now().Unix()})
	assert.Nil(t, New("secret-two").Verify(token, 10*time.Minute))
}

func TestDevFallbackSecret(t *testing.T) {
	// An empty secret degrades to the documented dev constant, so two
	// signers without configuration agree with each other.
	token := New("").Sign(Payload{Email: "a@example.com", TS: time.Now().Unix()})

	assert.NotNil(t, New(DevFallbackSecret).Verify(token, 10*time.Minute))
	assert.NotNil(t, New("").Verify(token, 10*time.Minute))
}
