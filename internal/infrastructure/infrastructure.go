// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, agent configuration, order storage)
// that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"brewline/internal/config"
	"brewline/internal/orders"
	"brewline/pkg/lifecycle"
	"brewline/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, the agent configuration, and the order store.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Agent     gaconfig.AgentConfig
	Store     storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := storage.New(&cfg.Storage, orders.Schema(), logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Agent:     cfg.Agent.Agent(),
		Store:     store,
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// The store hook creates the backing file with its header row if absent.
func (i *Infrastructure) Start() error {
	if err := i.Store.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
