package stylegen

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Manager implements StyleGenerator on top of a provider, adding structured
// request logging and optional artifact storage. It holds no per-call state:
// concurrent calls are independent.
type Manager struct {
	provider StyleGenerator

	// Logger for structured logging (optional)
	logger *slog.Logger

	// Storage for persisting generated images (optional)
	storage Storage

	mu sync.RWMutex
}

// Ensure Manager implements the interface.
var _ StyleGenerator = (*Manager)(nil)

// SetLogger sets a structured logger for the manager.
func (m *Manager) SetLogger(logger *slog.Logger) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger = logger
	return m
}

// SetStorage sets a storage backend for persisting generated images.
// Use SaveArtifact to save images after generation.
func (m *Manager) SetStorage(storage Storage) *Manager {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.storage = storage
	return m
}

// Storage returns the configured storage backend, or nil if not set.
func (m *Manager) Storage() Storage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.storage
}

// SaveArtifact saves a generated image to the configured storage.
// If no storage is configured, returns ErrStorageNotConfigured.
func (m *Manager) SaveArtifact(ctx context.Context, artifact *ImageArtifact, basePath string) (*StorageResult, error) {
	m.mu.RLock()
	storage := m.storage
	m.mu.RUnlock()

	return SaveArtifact(ctx, storage, artifact, basePath)
}

// Generate restyles the primary image. See StyleGenerator.
func (m *Manager) Generate(ctx context.Context, primary InputImage, prompt string, style *InputImage) (*ImageArtifact, error) {
	logger := m.getLogger()
	start := time.Now()

	logger.Debug("starting image generation",
		"prompt_length", len(prompt),
		"image_size", len(primary.Data),
		"has_style_image", style != nil,
	)

	artifact, err := m.provider.Generate(ctx, primary, prompt, style)
	duration := time.Since(start)

	if err != nil {
		logAttrs := []any{
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		}
		if reason, ok := IsSafetyBlocked(err); ok {
			logAttrs = append(logAttrs, "finish_reason", reason)
		}
		logger.Warn("generation failed", logAttrs...)

		return nil, err
	}

	logger.Info("generation completed",
		"duration_ms", duration.Milliseconds(),
		"mime_type", artifact.MIMEType,
		"output_size", len(artifact.Data),
	)

	return artifact, nil
}

// AnalyzeStyle describes a style reference image. See StyleGenerator.
func (m *Manager) AnalyzeStyle(ctx context.Context, style InputImage) (string, error) {
	logger := m.getLogger()
	start := time.Now()

	logger.Debug("starting style analysis",
		"image_size", len(style.Data),
	)

	description, err := m.provider.AnalyzeStyle(ctx, style)
	duration := time.Since(start)

	if err != nil {
		logAttrs := []any{
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		}
		if reason, ok := IsSafetyBlocked(err); ok {
			logAttrs = append(logAttrs, "finish_reason", reason)
		}
		logger.Warn("style analysis failed", logAttrs...)

		return "", err
	}

	logger.Info("style analysis completed",
		"duration_ms", duration.Milliseconds(),
		"description_length", len(description),
	)

	return description, nil
}

// Models returns the provider's model definitions.
func (m *Manager) Models() []ModelInfo {
	return m.provider.Models()
}

// Close releases provider resources.
func (m *Manager) Close() error {
	return m.provider.Close()
}

func (m *Manager) getLogger() *slog.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logger
}
