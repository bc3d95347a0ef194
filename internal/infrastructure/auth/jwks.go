package auth

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const (
	jwksRetryInterval   = time.Second
	jwksRetryMaxBackoff = 10 * time.Second
	jwksRetryTimeout    = time.Minute
)

// JWKSResolver verifies asymmetric tokens against a remote key set.
type JWKSResolver struct {
	issuer   string
	audience string
	leeway   time.Duration
	jwks     atomic.Pointer[keyfunc.JWKS]
	log      zerolog.Logger
}

// NewJWKSResolver fetches the key set, retrying with backoff until it loads
// or ctx ends, and keeps it refreshed in the background.
func NewJWKSResolver(
	ctx context.Context,
	jwksURL, issuer, audience string,
	refreshEvery, leeway time.Duration,
	log zerolog.Logger,
) (*JWKSResolver, error) {
	if jwksURL == "" {
		return nil, errors.New("jwks url is required")
	}

	r := &JWKSResolver{
		issuer:   issuer,
		audience: audience,
		leeway:   leeway,
		log:      log.With().Str("component", "jwks-resolver").Str("jwks_url", jwksURL).Logger(),
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   refreshEvery,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			r.log.Error().Err(err).Msg("jwks refresh failed")
		},
	}

	backoff := jwksRetryInterval
	deadline := time.Now().Add(jwksRetryTimeout)
	for attempt := 1; ; attempt++ {
		jwks, err := keyfunc.Get(jwksURL, options)
		if err == nil {
			r.jwks.Store(jwks)
			return r, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("fetch jwks: %w", err)
		}

		r.log.Warn().Err(err).Int("attempt", attempt).Msg("initial jwks fetch failed, retrying")
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch jwks: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, jwksRetryMaxBackoff)
	}
}

// Resolve validates the token and returns its subject.
func (r *JWKSResolver) Resolve(_ context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	jwks := r.jwks.Load()
	if jwks == nil {
		return nil, errors.New("jwks not initialised")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "ES256"}),
		jwt.WithIssuer(r.issuer),
		jwt.WithLeeway(r.leeway),
		jwt.WithExpirationRequired(),
	}
	if r.audience != "" {
		opts = append(opts, jwt.WithAudience(r.audience))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.NewParser(opts...).ParseWithClaims(token, claims, jwks.Keyfunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, ErrUnauthorized
	}

	return identityFromClaims(claims)
}

// Close stops the background refresh.
func (r *JWKSResolver) Close() {
	if jwks := r.jwks.Load(); jwks != nil {
		jwks.EndBackground()
	}
}
