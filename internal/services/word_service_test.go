package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/arabicvocab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWordService_List(t *testing.T) {
	tests := []struct {
		name          string
		words         []models.Word
		search        string
		tag           string
		group         string
		expectedIDs   []string
		expectedError bool
	}{
		{
			name: "group filter applied after fetch",
			words: []models.Word{
				{ID: "w1", WordGroup: "verbs"},
				{ID: "w2", WordGroup: "nouns"},
				{ID: "w3", WordGroup: "verbs"},
			},
			group:       "verbs",
			expectedIDs: []string{"w1", "w3"},
		},
		{
			name: "no filters returns everything",
			words: []models.Word{
				{ID: "w1"},
				{ID: "w2"},
			},
			expectedIDs: []string{"w1", "w2"},
		},
		{
			name:        "empty catalog returns empty slice",
			words:       nil,
			expectedIDs: []string{},
		},
		{
			name: "tag filter",
			words: []models.Word{
				{ID: "w1", Tags: []string{"school"}},
				{ID: "w2", Tags: []string{"travel"}},
			},
			tag:         "school",
			expectedIDs: []string{"w1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockWordRepository{words: tt.words}
			service := NewWordService(repo, &mockRegistryRepository{}, &mockRegistryRepository{}, zap.NewNop())

			words, err := service.List(context.Background(), tt.search, tt.tag, tt.group)

			require.NoError(t, err)
			ids := []string{}
			for _, word := range words {
				ids = append(ids, word.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestWordService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.WordRequest
		expectedError string
	}{
		{
			name: "success",
			req: &models.WordRequest{
				Arabic:  "كتاب",
				English: "book",
				Danish:  "bog",
				Tags:    []string{" School ", "school", "travel"},
			},
		},
		{
			name: "missing arabic",
			req: &models.WordRequest{
				English: "book",
				Danish:  "bog",
			},
			expectedError: "arabic is required",
		},
		{
			name: "missing english",
			req: &models.WordRequest{
				Arabic: "كتاب",
				Danish: "bog",
			},
			expectedError: "english is required",
		},
		{
			name: "missing danish",
			req: &models.WordRequest{
				Arabic:  "كتاب",
				English: "book",
			},
			expectedError: "danish is required",
		},
		{
			name: "whitespace only fields rejected",
			req: &models.WordRequest{
				Arabic:  "   ",
				English: "book",
				Danish:  "bog",
			},
			expectedError: "arabic is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockWordRepository{}
			tagRepo := &mockRegistryRepository{}
			groupRepo := &mockRegistryRepository{}
			service := NewWordService(repo, tagRepo, groupRepo, zap.NewNop())
			service.now = func() time.Time {
				return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
			}

			word, err := service.Create(context.Background(), tt.req)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Empty(t, repo.created)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, word.ID)
			assert.Equal(t, "2025-06-01T12:00:00", word.CreatedAt)
			assert.Equal(t, word.CreatedAt, word.UpdatedAt)
			assert.Equal(t, []string{"school", "travel"}, word.Tags)
			assert.ElementsMatch(t, []string{"school", "travel"}, tagRepo.names)
		})
	}
}

func TestWordService_Create_RegistersGroup(t *testing.T) {
	repo := &mockWordRepository{}
	groupRepo := &mockRegistryRepository{}
	service := NewWordService(repo, &mockRegistryRepository{}, groupRepo, zap.NewNop())

	_, err := service.Create(context.Background(), &models.WordRequest{
		Arabic:    "كتاب",
		English:   "book",
		Danish:    "bog",
		WordGroup: "nouns",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"nouns"}, groupRepo.names)
}

func TestWordService_Create_RegistryFailureDoesNotFailSave(t *testing.T) {
	repo := &mockWordRepository{}
	tagRepo := &mockRegistryRepository{addErr: fmt.Errorf("registry down")}
	groupRepo := &mockRegistryRepository{addErr: fmt.Errorf("registry down")}
	service := NewWordService(repo, tagRepo, groupRepo, zap.NewNop())

	word, err := service.Create(context.Background(), &models.WordRequest{
		Arabic:    "كتاب",
		English:   "book",
		Danish:    "bog",
		WordGroup: "nouns",
		Tags:      []string{"school"},
	})

	// The word is already persisted, so registry trouble stays out of the
	// response.
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, word.ID, repo.created[0].ID)
	assert.Empty(t, tagRepo.names)
	assert.Empty(t, groupRepo.names)
}

func TestWordService_Update_RegistryFailureDoesNotFailSave(t *testing.T) {
	repo := &mockWordRepository{words: testWords(1)}
	tagRepo := &mockRegistryRepository{addErr: fmt.Errorf("registry down")}
	service := NewWordService(repo, tagRepo, &mockRegistryRepository{}, zap.NewNop())

	word, err := service.Update(context.Background(), "word-0", &models.WordRequest{
		Arabic:  "كتاب",
		English: "book",
		Danish:  "bog",
		Tags:    []string{"school"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"school"}, word.Tags)
	require.Len(t, repo.updated, 1)
}

func TestWordService_Update(t *testing.T) {
	existing := models.Word{
		ID:        "w1",
		Arabic:    "كتاب",
		English:   "book",
		Danish:    "bog",
		CreatedAt: "2025-01-01T10:00:00",
		UpdatedAt: "2025-01-01T10:00:00",
	}

	t.Run("keeps creation time and refreshes update time", func(t *testing.T) {
		repo := &mockWordRepository{words: []models.Word{existing}}
		service := NewWordService(repo, &mockRegistryRepository{}, &mockRegistryRepository{}, zap.NewNop())
		service.now = func() time.Time {
			return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		}

		word, err := service.Update(context.Background(), "w1", &models.WordRequest{
			Arabic:  "كتاب",
			English: "a book",
			Danish:  "en bog",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-01-01T10:00:00", word.CreatedAt)
		assert.Equal(t, "2025-06-01T12:00:00", word.UpdatedAt)
		assert.Equal(t, "a book", word.English)
	})

	t.Run("unknown word", func(t *testing.T) {
		repo := &mockWordRepository{}
		service := NewWordService(repo, &mockRegistryRepository{}, &mockRegistryRepository{}, zap.NewNop())

		_, err := service.Update(context.Background(), "missing", &models.WordRequest{
			Arabic:  "كتاب",
			English: "book",
			Danish:  "bog",
		})

		assert.EqualError(t, err, "word not found")
	})
}

func TestWordService_Delete(t *testing.T) {
	repo := &mockWordRepository{words: testWords(1)}
	service := NewWordService(repo, &mockRegistryRepository{}, &mockRegistryRepository{}, zap.NewNop())

	require.NoError(t, service.Delete(context.Background(), "word-0"))
	assert.Empty(t, repo.words)

	assert.EqualError(t, service.Delete(context.Background(), "word-0"), "word not found")
}
