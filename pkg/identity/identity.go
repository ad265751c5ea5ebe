// Package identity verifies bearer credentials and produces the Caller that
// every tenant-scoped operation requires.
package identity

import (
	"context"
	"strings"

	"github.com/sangkips/bizdesk-api/pkg/apperror"
)

const bearerPrefix = "Bearer "

// Caller is the verified identity behind one request. It can only be built by
// a Verifier in this package, so holding one proves the credential was checked.
type Caller struct {
	id    string
	email string
}

// ID returns the identity provider's user id; it keys the tenant partition.
func (c *Caller) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// Email returns the verified email address, possibly empty.
func (c *Caller) Email() string {
	if c == nil {
		return ""
	}
	return c.email
}

// Verifier validates a raw bearer token against an identity provider.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Caller, error)
}

// BearerToken extracts the token from an Authorization header value. The
// header must be exactly "Bearer <token>".
func BearerToken(header string) (string, error) {
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", apperror.ErrUnauthorized
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", apperror.ErrUnauthorized
	}
	return token, nil
}

// Authenticate runs BearerToken then Verify.
func Authenticate(ctx context.Context, v Verifier, header string) (*Caller, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	return v.Verify(ctx, token)
}

func newCaller(id, email string) (*Caller, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ErrInvalidToken
	}
	return &Caller{id: id, email: strings.TrimSpace(email)}, nil
}
