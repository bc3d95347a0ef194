package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/utils/platformerrors"
)

const (
	userIDKey = "user_id"
	emailKey  = "user_email"
)

// ErrUnauthorized is returned when a token does not resolve to a user.
var ErrUnauthorized = errors.New("unauthorized")

// Identity is the resolved caller.
type Identity struct {
	UserID string
	Email  string
}

// IdentityResolver turns a bearer token into a caller identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// NewResolver builds the resolver selected by AUTH_PROVIDER.
func NewResolver(ctx context.Context, cfg *config.Config, log zerolog.Logger) (IdentityResolver, error) {
	switch cfg.AuthProvider {
	case config.AuthProviderGoTrue:
		return NewGoTrueResolver(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.AuthTimeout, log), nil
	case config.AuthProviderJWTSecret:
		return NewSecretResolver(cfg.SupabaseJWTSecret, cfg.AuthAudience, time.Minute), nil
	case config.AuthProviderJWKS:
		return NewJWKSResolver(ctx, cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience, 5*time.Minute, time.Minute, log)
	default:
		return nil, fmt.Errorf("unsupported auth provider %q", cfg.AuthProvider)
	}
}

// Middleware resolves the caller from the Authorization header and stores
// the user id on the gin context. Missing or unresolvable credentials abort
// with 401.
func Middleware(resolver IdentityResolver, log zerolog.Logger) gin.HandlerFunc {
	log = log.With().Str("component", "auth").Logger()

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			platformerrors.WriteError(c, platformerrors.Unauthenticated(ctx, "Authorization header required", nil), log)
			c.Abort()
			return
		}

		identity, err := resolver.Resolve(ctx, BearerToken(header))
		if err != nil {
			log.Debug().Err(err).Msg("identity resolution failed")
			platformerrors.WriteError(c, platformerrors.Unauthenticated(ctx, "Unauthorized", err), log)
			c.Abort()
			return
		}

		c.Set(userIDKey, identity.UserID)
		c.Set(emailKey, identity.Email)
		c.Next()
	}
}

// UserID returns the caller resolved by Middleware.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}

// BearerToken strips a leading "Bearer " scheme. Bare tokens are returned as-is.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
