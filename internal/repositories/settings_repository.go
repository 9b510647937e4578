package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/arabicvocab/backend/internal/models"
)

// settingsRepository persists the single application settings row.
type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get loads the settings row. A missing row yields the defaults.
func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT languages, custom_languages
		FROM settings
		WHERE id = 1
		LIMIT 1
	`

	var languagesJSON, customJSON string
	err := r.db.QueryRowContext(ctx, query).Scan(&languagesJSON, &customJSON)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(languagesJSON), &settings.Languages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal languages: %w", err)
	}
	if err := json.Unmarshal([]byte(customJSON), &settings.CustomLanguages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal custom languages: %w", err)
	}
	if settings.Languages == nil {
		settings.Languages = []string{}
	}
	if settings.CustomLanguages == nil {
		settings.CustomLanguages = []string{}
	}

	return &settings, nil
}

// Save writes the settings row, creating it on first save.
func (r *settingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	languagesJSON, err := json.Marshal(emptyIfNil(settings.Languages))
	if err != nil {
		return fmt.Errorf("failed to marshal languages: %w", err)
	}
	customJSON, err := json.Marshal(emptyIfNil(settings.CustomLanguages))
	if err != nil {
		return fmt.Errorf("failed to marshal custom languages: %w", err)
	}

	query := `
		INSERT INTO settings (id, languages, custom_languages)
		VALUES (1, ?, ?)
		ON DUPLICATE KEY UPDATE
			languages = VALUES(languages), custom_languages = VALUES(custom_languages)
	`

	if _, err := r.db.ExecContext(ctx, query, string(languagesJSON), string(customJSON)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
