//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/sango-07/xebia-voice-stuido/internal/domain"
	"github.com/sango-07/xebia-voice-stuido/internal/domain/session"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure"
	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure/store"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces"
)

// ProvideRoomActivator lets the syncer promote rooms through the session service.
func ProvideRoomActivator(svc session.Service) store.RoomActivator {
	return svc
}

// CreateApplication creates the application with all dependencies wired.
func CreateApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		interfaces.InterfacesProvider,
		ProvideRoomActivator,
		NewApplication,
	)
	return nil, nil, nil
}
