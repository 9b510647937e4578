package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arabicvocab/backend/internal/models"
)

// timestampLayout is the format words carry in their created_at/updated_at
// fields. Kept as a plain string so exported files stay byte-compatible with
// older vocabulary dumps.
const timestampLayout = "2006-01-02T15:04:05"

// WordRepository is the interface that wraps methods for word table data access
type WordRepository interface {
	// List retrieves words filtered by an optional search pattern and tag.
	List(ctx context.Context, search, tag string) ([]models.Word, error)
	// GetByID retrieves a word by its ID.
	GetByID(ctx context.Context, id string) (*models.Word, error)
	// Create inserts a new word.
	Create(ctx context.Context, word *models.Word) error
	// Update overwrites the word with the given ID.
	Update(ctx context.Context, id string, word *models.Word) error
	// UpdateTags rewrites only the tag list of a word.
	UpdateTags(ctx context.Context, id string, tags []string) error
	// Delete deletes a word by ID.
	Delete(ctx context.Context, id string) error
}

// RegistryRepository wraps access to one of the flat name registries.
type RegistryRepository interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
}

type wordService struct {
	wordRepo  WordRepository
	tagRepo   RegistryRepository
	groupRepo RegistryRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewWordService creates a new word service.
func NewWordService(wordRepo WordRepository, tagRepo, groupRepo RegistryRepository, logger *zap.Logger) *wordService {
	return &wordService{
		wordRepo:  wordRepo,
		tagRepo:   tagRepo,
		groupRepo: groupRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// List retrieves words. Search and tag narrowing happen in the repository;
// the group filter is applied afterwards over the fetched rows.
func (s *wordService) List(ctx context.Context, search, tag, group string) ([]models.Word, error) {
	words, err := s.wordRepo.List(ctx, search, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	if group != "" {
		filtered := make([]models.Word, 0, len(words))
		for _, word := range words {
			if word.WordGroup == group {
				filtered = append(filtered, word)
			}
		}
		words = filtered
	}

	if words == nil {
		words = []models.Word{}
	}
	return words, nil
}

// GetByID retrieves a single word.
func (s *wordService) GetByID(ctx context.Context, id string) (*models.Word, error) {
	return s.wordRepo.GetByID(ctx, id)
}

// Create validates the request and stores a new word. Any tags or word group
// the word carries are registered as a side effect so the filter dropdowns
// pick them up.
func (s *wordService) Create(ctx context.Context, req *models.WordRequest) (*models.Word, error) {
	req.Normalize()
	if err := validateWordRequest(req); err != nil {
		return nil, err
	}

	now := s.now().Format(timestampLayout)
	word := &models.Word{
		ID:               uuid.New().String(),
		Arabic:           req.Arabic,
		ArabicDiacritics: req.ArabicDiacritics,
		Transliteration:  req.Transliteration,
		English:          req.English,
		Danish:           req.Danish,
		Notes:            req.Notes,
		WordGroup:        req.WordGroup,
		Tags:             normalizeTags(req.Tags),
		Grammar:          req.Grammar,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.wordRepo.Create(ctx, word); err != nil {
		return nil, err
	}
	s.registerNames(ctx, word)
	return word, nil
}

// Update validates the request and overwrites an existing word, keeping its
// original creation time.
func (s *wordService) Update(ctx context.Context, id string, req *models.WordRequest) (*models.Word, error) {
	req.Normalize()
	if err := validateWordRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.wordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	word := &models.Word{
		ID:               id,
		Arabic:           req.Arabic,
		ArabicDiacritics: req.ArabicDiacritics,
		Transliteration:  req.Transliteration,
		English:          req.English,
		Danish:           req.Danish,
		Notes:            req.Notes,
		WordGroup:        req.WordGroup,
		Tags:             normalizeTags(req.Tags),
		Grammar:          req.Grammar,
		CreatedAt:        existing.CreatedAt,
		UpdatedAt:        s.now().Format(timestampLayout),
	}

	if err := s.wordRepo.Update(ctx, id, word); err != nil {
		return nil, err
	}
	s.registerNames(ctx, word)
	return word, nil
}

// Delete removes a word.
func (s *wordService) Delete(ctx context.Context, id string) error {
	return s.wordRepo.Delete(ctx, id)
}

// registerNames adds the word's tags and group to their registries. The word
// itself is already saved at this point, so a registry failure must not fail
// the request; the dropdowns just miss the name until the next save.
func (s *wordService) registerNames(ctx context.Context, word *models.Word) {
	for _, tag := range word.Tags {
		if err := s.tagRepo.Add(ctx, tag); err != nil {
			s.logger.Warn("failed to register tag", zap.String("tag", tag), zap.Error(err))
		}
	}
	if word.WordGroup != "" {
		if err := s.groupRepo.Add(ctx, word.WordGroup); err != nil {
			s.logger.Warn("failed to register word group", zap.String("word_group", word.WordGroup), zap.Error(err))
		}
	}
}

func validateWordRequest(req *models.WordRequest) error {
	if req.Arabic == "" {
		return fmt.Errorf("arabic is required")
	}
	if req.English == "" {
		return fmt.Errorf("english is required")
	}
	if req.Danish == "" {
		return fmt.Errorf("danish is required")
	}
	return nil
}

// normalizeTags trims, drops empties and dedupes while preserving order.
func normalizeTags(tags []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = trimLower(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
