package sqlite

import (
	"fmt"

	"github.com/respira-salud/respira-cli/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "api_url":
			settings.APIURL = value
		case "timezone":
			settings.Timezone = value
		case "medico_default":
			if _, err := fmt.Sscanf(value, "%d", &settings.MedicoDefault); err != nil {
				return models.Settings{}, fmt.Errorf("parsing medico_default: %w", err)
			}
		case "per_page":
			if _, err := fmt.Sscanf(value, "%d", &settings.PerPage); err != nil {
				return models.Settings{}, fmt.Errorf("parsing per_page: %w", err)
			}
		}
	}
	return settings, rows.Err()
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pairs := map[string]string{
		"api_url":        settings.APIURL,
		"timezone":       settings.Timezone,
		"medico_default": fmt.Sprintf("%d", settings.MedicoDefault),
		"per_page":       fmt.Sprintf("%d", settings.PerPage),
	}
	for key, value := range pairs {
		if _, err := tx.Exec(
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			key, value,
		); err != nil {
			return fmt.Errorf("saving setting %s: %w", key, err)
		}
	}
	return tx.Commit()
}
