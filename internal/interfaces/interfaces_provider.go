package interfaces

import (
	"github.com/google/wire"

	"github.com/sango-07/xebia-voice-stuido/internal/infrastructure"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver"
	"github.com/sango-07/xebia-voice-stuido/internal/interfaces/httpserver/handlers"
)

// ProvideReadinessCheck exposes the storage probe to /readyz.
func ProvideReadinessCheck(storage *infrastructure.Storage) httpserver.ReadinessCheck {
	return storage.Ready
}

// InterfacesProvider provides all interface dependencies.
var InterfacesProvider = wire.NewSet(
	handlers.HandlerProvider,
	ProvideReadinessCheck,
	httpserver.New,
)
