package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/arabicvocab/backend/internal/models"
)

// TransferWordRepository is the word access needed by import and export.
type TransferWordRepository interface {
	List(ctx context.Context, search, tag string) ([]models.Word, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
	Upsert(ctx context.Context, word *models.Word) error
}

// TransferRegistryRepository is the registry access needed by import and export.
type TransferRegistryRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	DeleteAll(ctx context.Context) error
}

type transferService struct {
	wordRepo     TransferWordRepository
	tagRepo      TransferRegistryRepository
	groupRepo    TransferRegistryRepository
	settingsRepo SettingsRepository
	exportDir    string
	now          func() time.Time
}

// NewTransferService creates a new import/export service. exportDir is where
// server-side export copies are written.
func NewTransferService(
	wordRepo TransferWordRepository,
	tagRepo, groupRepo TransferRegistryRepository,
	settingsRepo SettingsRepository,
	exportDir string,
) *transferService {
	return &transferService{
		wordRepo:     wordRepo,
		tagRepo:      tagRepo,
		groupRepo:    groupRepo,
		settingsRepo: settingsRepo,
		exportDir:    exportDir,
		now:          time.Now,
	}
}

// Export assembles the full vocabulary dataset.
func (s *transferService) Export(ctx context.Context) (*models.Dataset, error) {
	words, err := s.wordRepo.List(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	if words == nil {
		words = []models.Word{}
	}

	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Dataset{
		Words:      words,
		Tags:       tags,
		WordGroups: groups,
		Settings:   settings,
	}, nil
}

// ExportToFile additionally writes the dataset to a timestamped file in the
// export directory and returns its path.
func (s *transferService) ExportToFile(ctx context.Context) (*models.Dataset, string, error) {
	dataset, err := s.Export(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create export directory: %w", err)
	}
	name := fmt.Sprintf("arabic_vocabulary_%s.json", s.now().Format("20060102_150405"))
	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, "", fmt.Errorf("failed to write export file: %w", err)
	}

	return dataset, path, nil
}

// Import loads a dataset. With merge set, incoming words are upserted over
// the existing catalog; otherwise the catalog and both registries are
// replaced wholesale.
func (s *transferService) Import(ctx context.Context, dataset *models.Dataset, merge bool) (*models.ImportResult, error) {
	if dataset == nil || dataset.Words == nil {
		return nil, fmt.Errorf("invalid vocabulary file")
	}

	if !merge {
		if err := s.wordRepo.DeleteAll(ctx); err != nil {
			return nil, err
		}
		if err := s.tagRepo.DeleteAll(ctx); err != nil {
			return nil, err
		}
		if err := s.groupRepo.DeleteAll(ctx); err != nil {
			return nil, err
		}
	}

	now := s.now().Format(timestampLayout)
	for i := range dataset.Words {
		word := dataset.Words[i]
		if word.Arabic == "" || word.English == "" {
			return nil, fmt.Errorf("invalid vocabulary file")
		}
		if word.ID == "" {
			word.ID = uuid.New().String()
		}
		if word.CreatedAt == "" {
			word.CreatedAt = now
		}
		if word.UpdatedAt == "" {
			word.UpdatedAt = now
		}
		word.Tags = normalizeTags(word.Tags)
		if word.Grammar != nil && word.Grammar.IsZero() {
			word.Grammar = nil
		}

		if err := s.wordRepo.Upsert(ctx, &word); err != nil {
			return nil, err
		}
		for _, tag := range word.Tags {
			if err := s.tagRepo.Add(ctx, tag); err != nil {
				return nil, err
			}
		}
		if word.WordGroup != "" {
			if err := s.groupRepo.Add(ctx, word.WordGroup); err != nil {
				return nil, err
			}
		}
	}

	for _, tag := range normalizeTags(dataset.Tags) {
		if err := s.tagRepo.Add(ctx, tag); err != nil {
			return nil, err
		}
	}
	for _, group := range dataset.WordGroups {
		if group == "" {
			continue
		}
		if err := s.groupRepo.Add(ctx, group); err != nil {
			return nil, err
		}
	}

	if dataset.Settings != nil {
		if err := s.settingsRepo.Save(ctx, dataset.Settings); err != nil {
			return nil, err
		}
	}

	count, err := s.wordRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ImportResult{WordCount: count}, nil
}
