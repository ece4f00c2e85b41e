package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid access token")

// Claims are the identity claims this layer cares about. The token is issued
// and signature-checked upstream; only the email claim and expiry matter here.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// ParseAccessToken decodes a bearer token and validates it as a local policy
// decision. Signature verification is delegated to the upstream issuer; a
// token that fails to decode, carries no email claim, or is expired is
// rejected with ErrInvalidToken.
func ParseAccessToken(raw string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrInvalidToken)
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}

	return claims, nil
}
