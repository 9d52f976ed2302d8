package services

import (
	"github.com/wheelhouse/wheelhouse/pkg/app"
	"github.com/wheelhouse/wheelhouse/services/user/infrastructure/persistence/postgres"
)

const defaultBcryptCost = 10

// Services is the application-layer service container for this bounded context.
type Services struct {
	Auth    *AuthService
	Profile *ProfileService
}

// New wires all user application services with infrastructure from the Application container.
func New(a *app.Application, bcryptCost int) *Services {
	if bcryptCost <= 0 {
		bcryptCost = defaultBcryptCost
	}
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Auth:    NewAuthService(repo, a.Tokens, bcryptCost),
		Profile: NewProfileService(repo),
	}
}
