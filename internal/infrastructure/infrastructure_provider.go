package infrastructure

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/auth"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/database"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/livekit"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/logger"
	agentrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/agent"
	callrecordrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/callrecord"
	sessionrepo "github.com/sango-07/xebia-voice-stuido/internal/infrastructure/repository/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/store"
)

// Storage bundles the repositories for the configured driver.
type Storage struct {
	Agents   agent.Repository
	Sessions session.Store
	Calls    callrecord.Repository
	// Ready reports whether the backing store is reachable.
	Ready func(ctx context.Context) error
}

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the root logger
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg)
}

// ProvideStorage opens the configured store. The returned cleanup closes the
// connection pool.
func ProvideStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		agents, err := ParseMemoryAgents(cfg.MemoryAgents)
		if err != nil {
			return nil, nil, err
		}
		log.Warn().Int("agents", len(agents)).Msg("using in-memory storage; sessions are lost on restart")
		return &Storage{
			Agents:   agentrepo.NewInMemoryRepository(agents...),
			Sessions: store.NewMemoryStore(log),
			Calls:    callrecordrepo.NewInMemoryRepository(),
			Ready:    func(context.Context) error { return nil },
		}, func() {}, nil

	case config.StorageDriverPostgres:
		db, err := database.Connect(database.Config{
			DSN:             cfg.DatabaseURL,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			MaxOpenConns:    cfg.DBMaxOpenConns,
			ConnMaxLifetime: cfg.DBConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}

		cleanup := func() {
			if err := database.Close(db); err != nil {
				log.Error().Err(err).Msg("close database")
			}
		}

		if cfg.DBAutoMigrate {
			if err := database.AutoMigrate(ctx, db, log); err != nil {
				cleanup()
				return nil, nil, err
			}
		}

		return &Storage{
			Agents:   agentrepo.NewPostgresRepository(db),
			Sessions: sessionrepo.NewPostgresRepository(db),
			Calls:    callrecordrepo.NewPostgresRepository(db),
			Ready: func(ctx context.Context) error {
				return database.Ping(ctx, db)
			},
		}, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// ParseMemoryAgents reads id:owner_id:name entries. The name may contain colons.
func ParseMemoryAgents(entries []string) ([]agent.Agent, error) {
	agents := make([]agent.Agent, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid MEMORY_AGENTS entry %q, want id:owner_id:name", entry)
		}
		agents = append(agents, agent.Agent{
			ID:     parts[0],
			UserID: parts[1],
			Name:   parts[2],
			Status: "active",
		})
	}
	return agents, nil
}

// ProvideTokenGenerator provides the LiveKit access token signer
func ProvideTokenGenerator(cfg *config.Config) session.TokenGenerator {
	return livekit.NewTokenGenerator(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
}

// ProvideIdentityResolver provides the bearer token resolver for AUTH_PROVIDER
// and stops any background key refresh on cleanup.
func ProvideIdentityResolver(ctx context.Context, cfg *config.Config, log zerolog.Logger) (auth.IdentityResolver, func(), error) {
	resolver, err := auth.NewResolver(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {}
	if closer, ok := resolver.(interface{ Close() }); ok {
		cleanup = closer.Close
	}
	return resolver, cleanup, nil
}

// ProvideSyncer returns the LiveKit room poller, or nil when polling is
// disabled or LiveKit is not configured.
func ProvideSyncer(cfg *config.Config, storage *Storage, activator store.RoomActivator, log zerolog.Logger) *store.Syncer {
	if !cfg.LiveKitSyncEnabled || !cfg.LiveKitConfigured() {
		log.Info().Msg("livekit room sync disabled")
		return nil
	}
	rooms := livekit.NewRoomClient(cfg.LiveKitURL, cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)
	return store.NewSyncer(storage.Sessions, rooms, activator, cfg.LiveKitSyncInterval, log)
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideStorage,
	wire.FieldsOf(new(*Storage), "Agents", "Sessions", "Calls"),
	ProvideTokenGenerator,
	ProvideIdentityResolver,
	ProvideSyncer,
)
