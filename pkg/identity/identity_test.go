package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "missing", header: "", wantErr: apperror.ErrUnauthorized},
		{name: "no prefix", header: "abc.def", wantErr: apperror.ErrUnauthorized},
		{name: "lowercase prefix", header: "bearer abc", wantErr: apperror.ErrUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: apperror.ErrUnauthorized},
		{name: "empty token", header: "Bearer   ", wantErr: apperror.ErrUnauthorized},
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJWTVerifierRoundTrip(t *testing.T) {
	v := NewJWTVerifier("test-secret", "bizdesk-api", time.Hour)

	token, err := v.Issue("user-a", "a@example.com")
	require.NoError(t, err)

	caller, err := Authenticate(context.Background(), v, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "user-a", caller.ID())
	assert.Equal(t, "a@example.com", caller.Email())
}

func TestJWTVerifierRejects(t *testing.T) {
	v := NewJWTVerifier("test-secret", "bizdesk-api", time.Hour)
	other := NewJWTVerifier("other-secret", "bizdesk-api", time.Hour)
	expired := NewJWTVerifier("test-secret", "bizdesk-api", -time.Minute)

	foreign, err := other.Issue("user-a", "")
	require.NoError(t, err)
	stale, err := expired.Issue("user-a", "")
	require.NoError(t, err)
	noSubject, err := v.Issue("", "a@example.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-a", Issuer: "bizdesk-api"},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":    "not-a-token",
		"wrong key":  foreign,
		"expired":    stale,
		"no subject": noSubject,
		"alg none":   unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			caller, err := v.Verify(context.Background(), token)
			assert.Nil(t, caller)
			assert.ErrorIs(t, err, apperror.ErrInvalidToken)
		})
	}
}

func TestNilCallerAccessors(t *testing.T) {
	var c *Caller
	assert.Empty(t, c.ID())
	assert.Empty(t, c.Email())
}
