package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type goTrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GoTrueResolver asks the Supabase auth server who owns a token.
type GoTrueResolver struct {
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewGoTrueResolver creates a resolver for the auth server under baseURL.
func NewGoTrueResolver(baseURL, serviceRoleKey string, timeout time.Duration, log zerolog.Logger) *GoTrueResolver {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("apikey", serviceRoleKey).
		SetTimeout(timeout)
	return &GoTrueResolver{
		httpClient: client,
		log:        log.With().Str("component", "gotrue-resolver").Logger(),
	}
}

// Resolve calls GET /auth/v1/user with the caller's token.
func (r *GoTrueResolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var user goTrueUser
	resp, err := r.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&user).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("gotrue request failed: %w", err)
	}
	if resp.IsError() {
		r.log.Debug().Int("status", resp.StatusCode()).Msg("token rejected by auth server")
		return nil, fmt.Errorf("%w: auth server returned %d", ErrUnauthorized, resp.StatusCode())
	}
	if user.ID == "" {
		return nil, ErrUnauthorized
	}

	return &Identity{UserID: user.ID, Email: user.Email}, nil
}
