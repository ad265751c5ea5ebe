package identity

import (
	"context"
	"errors"

	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates Google-signed ID tokens for a fixed audience.
type GoogleVerifier struct {
	validator *idtoken.Validator
	audience  string
}

// NewGoogleVerifier builds the validator once; it caches Google's signing
// certificates across requests.
func NewGoogleVerifier(ctx context.Context, audience string) (*GoogleVerifier, error) {
	if audience == "" {
		return nil, errors.New("google identity audience is empty")
	}
	validator, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, err
	}
	return &GoogleVerifier{validator: validator, audience: audience}, nil
}

// Verify validates the ID token and maps its subject and email claim.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Caller, error) {
	payload, err := v.validator.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	email, _ := payload.Claims["email"].(string)
	return newCaller(payload.Subject, email)
}
