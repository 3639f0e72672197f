package router

import (
	appuser "github.com/oksasatya/users-api/internal/application"
	"github.com/oksasatya/users-api/internal/container"
	pginfra "github.com/oksasatya/users-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/users-api/internal/interface/http"
	"github.com/oksasatya/users-api/internal/router/modules"
)

// InitModules wires handlers from the container and adds them to the registry.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	repo := pginfra.NewUserRepository(c.Pool)
	service := appuser.NewService(repo, c.Logger)

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.Pool, c.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(service, c.Logger), c.Redis, c.Config.RateLimitPerMinute))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Pool))
	}
}
