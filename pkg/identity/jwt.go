package identity

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
)

// Claims represents the claims in an access token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 tokens signed with a shared secret. It can also
// issue tokens, which local development and tests rely on.
type JWTVerifier struct {
	secretKey []byte
	issuer    string
	expiry    time.Duration
}

// NewJWTVerifier creates a new JWT verifier
func NewJWTVerifier(secret, issuer string, expiry time.Duration) *JWTVerifier {
	return &JWTVerifier{
		secretKey: []byte(secret),
		issuer:    issuer,
		expiry:    expiry,
	}
}

// Issue signs a token for the given user id and email
func (v *JWTVerifier) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(v.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secretKey)
}

// Verify validates a token and returns the caller it identifies
func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (*Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secretKey, nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperror.ErrInvalidToken
	}

	return newCaller(claims.Subject, claims.Email)
}
