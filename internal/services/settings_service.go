package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arabicvocab/backend/internal/models"
)

// SettingsRepository wraps persistence of the single settings record.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Save(ctx context.Context, settings *models.Settings) error
}

type settingsService struct {
	settingsRepo SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo SettingsRepository) *settingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

// Get loads the settings and fills in the derived available-language list.
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.AvailableLanguages = availableLanguages(settings.CustomLanguages)
	return settings, nil
}

// Update normalizes and persists a settings change. The returned value is the
// stored truth, which callers should adopt instead of their request.
func (s *settingsService) Update(ctx context.Context, req *models.SettingsRequest) (*models.Settings, error) {
	custom := dedupeTrimmed(req.CustomLanguages, models.DefaultLanguages)
	available := availableLanguages(custom)

	languages := []string{}
	seen := make(map[string]bool)
	for _, lang := range req.Languages {
		lang = strings.TrimSpace(lang)
		if lang == "" || seen[lang] {
			continue
		}
		if !containsString(available, lang) {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
		seen[lang] = true
		languages = append(languages, lang)
	}
	if len(languages) > models.MaxActiveLanguages {
		return nil, fmt.Errorf("you can only select up to %d languages", models.MaxActiveLanguages)
	}
	if len(languages) == 0 {
		languages = append([]string(nil), models.DefaultLanguages...)
	}

	settings := &models.Settings{
		Languages:          languages,
		CustomLanguages:    custom,
		AvailableLanguages: available,
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// availableLanguages is the base set plus the user-defined ones.
func availableLanguages(custom []string) []string {
	available := append([]string(nil), models.DefaultLanguages...)
	return append(available, custom...)
}

// dedupeTrimmed trims and dedupes names, dropping any that shadow the
// excluded base set.
func dedupeTrimmed(names, exclude []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] || containsString(exclude, name) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
