package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type tagService struct {
	tagRepo  RegistryRepository
	wordRepo WordRepository
}

// NewTagService creates a new tag service.
func NewTagService(tagRepo RegistryRepository, wordRepo WordRepository) *tagService {
	return &tagService{
		tagRepo:  tagRepo,
		wordRepo: wordRepo,
	}
}

// List returns every known tag: the registered ones plus any tag still
// carried by a word, sorted alphabetically.
func (s *tagService) List(ctx context.Context) ([]string, error) {
	registered, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	words, err := s.wordRepo.List(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	seen := make(map[string]bool)
	tags := []string{}
	for _, tag := range registered {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	for _, word := range words {
		for _, tag := range word.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	sort.Strings(tags)
	return tags, nil
}

// Add registers a new tag. Tags are stored lower-cased; re-adding an existing
// tag is a no-op.
func (s *tagService) Add(ctx context.Context, name string) (string, error) {
	name = trimLower(name)
	if name == "" {
		return "", fmt.Errorf("tag is required")
	}
	if err := s.tagRepo.Add(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}

// Delete removes a tag from the registry and strips it from every word that
// carries it.
func (s *tagService) Delete(ctx context.Context, name string) error {
	name = trimLower(name)
	if name == "" {
		return fmt.Errorf("tag is required")
	}

	words, err := s.wordRepo.List(ctx, "", name)
	if err != nil {
		return fmt.Errorf("failed to list tagged words: %w", err)
	}
	for _, word := range words {
		kept := []string{}
		for _, tag := range word.Tags {
			if tag != name {
				kept = append(kept, tag)
			}
		}
		if err := s.wordRepo.UpdateTags(ctx, word.ID, kept); err != nil {
			return err
		}
	}

	if err := s.tagRepo.Delete(ctx, name); err != nil {
		// A tag only carried by words was never in the registry; stripping it
		// from the words above already removed it everywhere.
		if err.Error() == "tag not found" && len(words) > 0 {
			return nil
		}
		return err
	}
	return nil
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
