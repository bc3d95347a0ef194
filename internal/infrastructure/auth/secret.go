package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SecretResolver verifies HS256 access tokens with the project's shared JWT secret.
type SecretResolver struct {
	secret   []byte
	audience string
	leeway   time.Duration
}

// NewSecretResolver creates a resolver. An empty audience skips the aud check.
func NewSecretResolver(secret, audience string, leeway time.Duration) *SecretResolver {
	return &SecretResolver{secret: []byte(secret), audience: audience, leeway: leeway}
}

// Resolve validates signature and registered claims, then returns sub as the user id.
func (r *SecretResolver) Resolve(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(r.leeway),
		jwt.WithExpirationRequired(),
	}
	if r.audience != "" {
		opts = append(opts, jwt.WithAudience(r.audience))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, ErrUnauthorized
	}

	return identityFromClaims(claims)
}

func identityFromClaims(claims jwt.MapClaims) (*Identity, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}
	email, _ := claims["email"].(string)
	return &Identity{UserID: sub, Email: email}, nil
}
