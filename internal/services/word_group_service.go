package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type wordGroupService struct {
	groupRepo RegistryRepository
	wordRepo  WordRepository
}

// NewWordGroupService creates a new word group service.
func NewWordGroupService(groupRepo RegistryRepository, wordRepo WordRepository) *wordGroupService {
	return &wordGroupService{
		groupRepo: groupRepo,
		wordRepo:  wordRepo,
	}
}

// List returns every known group: the registered ones plus any group still
// assigned to a word, sorted alphabetically.
func (s *wordGroupService) List(ctx context.Context) ([]string, error) {
	registered, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	words, err := s.wordRepo.List(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}

	seen := make(map[string]bool)
	groups := []string{}
	for _, group := range registered {
		if !seen[group] {
			seen[group] = true
			groups = append(groups, group)
		}
	}
	for _, word := range words {
		if word.WordGroup != "" && !seen[word.WordGroup] {
			seen[word.WordGroup] = true
			groups = append(groups, word.WordGroup)
		}
	}

	sort.Strings(groups)
	return groups, nil
}

// Add registers a new word group. Re-adding an existing group is a no-op.
func (s *wordGroupService) Add(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("word group is required")
	}
	if err := s.groupRepo.Add(ctx, name); err != nil {
		return "", err
	}
	return name, nil
}
