// @title           Voice Broker API
// @version         1.0
// @description     Issues LiveKit room credentials for voice agents and records the
// @description     lifecycle of each voice session for the dashboard.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8190
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Supabase access token, "Bearer <token>"

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/domain"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/logger"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/observability"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/store"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	syncer     *store.Syncer
	log        zerolog.Logger
}

// NewApplication creates a new application instance. syncer may be nil.
func NewApplication(httpServer *httpserver.HTTPServer, syncer *store.Syncer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		syncer:     syncer,
		log:        log,
	}
}

// Start runs the application until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	if a.syncer != nil {
		a.syncer.Start(ctx)
		defer a.syncer.Stop()
	}

	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	storage, closeStorage, err := infrastructure.ProvideStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("failed to initialize storage")
	}
	defer closeStorage()

	resolver, closeResolver, err := infrastructure.ProvideIdentityResolver(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize identity resolver")
	}
	defer closeResolver()

	if !cfg.LiveKitConfigured() {
		log.Warn().Msg("LiveKit credentials are not set; token requests will fail")
	}

	sessionService := domain.ProvideSessionService(
		storage.Agents,
		storage.Sessions,
		storage.Calls,
		infrastructure.ProvideTokenGenerator(cfg),
		cfg,
		log,
	)

	callRecordService := domain.ProvideCallRecordService(storage.Calls, storage.Agents, log)

	handlerProvider := handlers.NewProvider(
		handlers.NewSessionHandler(sessionService),
		handlers.NewCallLogHandler(callRecordService),
		handlers.ProvideWebhookHandler(cfg, sessionService, log),
	)

	httpServer := httpserver.New(cfg, log, handlerProvider, resolver, interfaces.ProvideReadinessCheck(storage))
	syncer := infrastructure.ProvideSyncer(cfg, storage, sessionService, log)

	app := NewApplication(httpServer, syncer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Str("storage", cfg.StorageDriver).
		Str("auth_provider", cfg.AuthProvider).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Error().Err(err).Msg("application stopped with error")
		return
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
