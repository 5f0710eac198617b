package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "scoresync"

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, "sign-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok, "claims must be RegisteredClaims")
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "sign-key"},
		{"zero duration", testIssuer, 0, "sign-key"},
		{"empty key", testIssuer, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, "sign-key")
	require.NoError(t, err)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "sign-key", testIssuer)

	require.NoError(t, err)
	assert.Equal(t, int64(456), parsedToken.UserID)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	genToken, err := GenerateJWTToken(testIssuer, 1, time.Hour, "sign-key")
	require.NoError(t, err)

	expired, err := GenerateJWTToken(testIssuer, 1, -time.Second, "sign-key")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong signing key", genToken.SignedString, "other-key", testIssuer},
		{"wrong issuer", genToken.SignedString, "sign-key", "someone-else"},
		{"expired", expired.SignedString, "sign-key", testIssuer},
		{"malformed", "not.a.token", "sign-key", testIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

// ── ParseBearerToken ─────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestParseBearerToken_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"scheme only", "Bearer "},
		{"no scheme", "abc.def.ghi extra junk here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBearerToken(tt.header)
			assert.Error(t, err)
		})
	}
}

// ── UserIDFromUnverifiedToken ────────────────────────────────────────────────

// The client keys its local rows off the subject claim without holding the
// server's signing key; the subject must round-trip even though nothing is
// verified.
func TestUserIDFromUnverifiedToken(t *testing.T) {
	genToken, err := GenerateJWTToken(testIssuer, 789, time.Hour, "server-only-key")
	require.NoError(t, err)

	userID, err := UserIDFromUnverifiedToken(genToken.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(789), userID)
}

func TestUserIDFromUnverifiedToken_Malformed(t *testing.T) {
	_, err := UserIDFromUnverifiedToken("garbage")
	assert.Error(t, err)
}
