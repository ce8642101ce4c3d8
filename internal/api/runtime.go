package api

import (
	"brewline/internal/config"
	"brewline/internal/infrastructure"
)

// Runtime scopes Infrastructure for the API module.
type Runtime struct {
	*infrastructure.Infrastructure
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Agent:     infra.Agent,
			Store:     infra.Store,
		},
	}
}
