package stylegen

import (
	"log/slog"
)

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithLogger sets a structured logger for the manager.
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithStorage sets a storage backend for persisting generated images.
func WithStorage(storage Storage) ManagerOption {
	return func(m *Manager) {
		m.storage = storage
	}
}

// NewManager creates a Manager around provider.
//
// Example:
//
//	cfg, err := stylegen.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gen, err := gemini.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	manager := stylegen.NewManager(gen, stylegen.WithLogger(cfg.Logger()))
func NewManager(provider StyleGenerator, opts ...ManagerOption) *Manager {
	m := &Manager{
		provider: provider,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}
