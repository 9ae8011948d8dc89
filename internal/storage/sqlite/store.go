package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/respira-salud/respira-cli/internal/constants"
	"github.com/respira-salud/respira-cli/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is the settings database. It holds app preferences only; no backend
// entity ever lands here.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{path: ExpandPath(path)}
}

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open settings database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	settings, err := s.GetSettings()
	if err != nil || settings.APIURL == "" {
		defaults := models.Settings{
			APIURL:   constants.DefaultAPIURL,
			Timezone: "Local",
			PerPage:  constants.DefaultPerPage,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'respira init' first")
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open settings database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
