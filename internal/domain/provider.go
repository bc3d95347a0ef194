package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/sango-07/xebia-voice-stuido/internal/config"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/agent"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/callrecord"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
)

// ProvideSessionService provides a session service.
func ProvideSessionService(
	agents agent.Repository,
	sessionStore session.Store,
	calls callrecord.Repository,
	tokenGen session.TokenGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) session.Service {
	return session.NewService(
		agents,
		sessionStore,
		calls,
		tokenGen,
		cfg.LiveKitURL,
		log,
	)
}

// ProvideCallRecordService provides the call log read service.
func ProvideCallRecordService(calls callrecord.Repository, agents agent.Repository, log zerolog.Logger) callrecord.Service {
	return callrecord.NewService(calls, agents, log)
}

// ServiceProvider provides all domain services.
var ServiceProvider = wire.NewSet(
	ProvideSessionService,
	ProvideCallRecordService,
)
