package services

import (
	"github.com/wheelhouse/wheelhouse/pkg/app"
	"github.com/wheelhouse/wheelhouse/pkg/cache"
	"github.com/wheelhouse/wheelhouse/services/wheel/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Wheel  *WheelService
	Import *ImportService
}

// New wires all wheel application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewWheelRepository(a.Db, a.EventBus)
	setCache := cache.NewWheelSetCache(a.Redis)
	return &Services{
		Wheel:  NewWheelService(repo, setCache, nil, a.StrictVersioning),
		Import: NewImportService(repo, a.EventBus),
	}
}
