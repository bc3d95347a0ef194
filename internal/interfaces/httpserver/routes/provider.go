package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
	v1 "github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/routes/v1"
)

// Provider holds all route providers.
type Provider struct {
	V1       *v1.Routes
	resolver auth.IdentityResolver
	log      zerolog.Logger
}

// NewProvider creates a new route provider.
func NewProvider(handlerProvider *handlers.Provider, resolver auth.IdentityResolver, log zerolog.Logger) *Provider {
	return &Provider{
		V1:       v1.NewRoutes(handlerProvider, log),
		resolver: resolver,
		log:      log,
	}
}

// Register registers all routes on the engine.
func (p *Provider) Register(engine *gin.Engine) {
	p.V1.Register(engine, auth.Middleware(p.resolver, p.log))
}
