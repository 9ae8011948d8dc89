package storage

import "github.com/respira-salud/respira-cli/internal/models"

// Provider stores local application settings. Backend entities are fetched
// fresh per view and never persisted here.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// GetConfigPath returns the path of the underlying settings database.
	GetConfigPath() string
}
