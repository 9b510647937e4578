package storage

import (
	"testing"
	"time"

	"github.com/arabicvocab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizStore_SaveGetDelete(t *testing.T) {
	store := NewQuizStore(0)

	_, err := store.Get("missing")
	assert.EqualError(t, err, "quiz session not found")

	session := &models.QuizSession{ID: "quiz-1"}
	store.Save(session)

	got, err := store.Get("quiz-1")
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Equal(t, 1, store.Len())

	store.Delete("quiz-1")
	_, err = store.Get("quiz-1")
	assert.Error(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestQuizStore_Cleanup(t *testing.T) {
	store := NewQuizStore(10 * time.Minute)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Save(&models.QuizSession{ID: "stale"})

	current = current.Add(5 * time.Minute)
	store.Save(&models.QuizSession{ID: "fresh"})

	current = current.Add(6 * time.Minute)
	removed := store.Cleanup()

	assert.Equal(t, 1, removed)
	_, err := store.Get("stale")
	assert.Error(t, err)
	_, err = store.Get("fresh")
	assert.NoError(t, err)
}

func TestQuizStore_GetRefreshesEvictionClock(t *testing.T) {
	store := NewQuizStore(10 * time.Minute)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Save(&models.QuizSession{ID: "quiz-1"})

	current = current.Add(8 * time.Minute)
	_, err := store.Get("quiz-1")
	require.NoError(t, err)

	current = current.Add(8 * time.Minute)
	removed := store.Cleanup()

	assert.Equal(t, 0, removed)
}

func TestMatchStore_SaveGetDelete(t *testing.T) {
	store := NewMatchStore(0)

	_, err := store.Get("missing")
	assert.EqualError(t, err, "match session not found")

	session := &models.MatchSession{ID: "match-1"}
	store.Save(session)

	got, err := store.Get("match-1")
	require.NoError(t, err)
	assert.Same(t, session, got)

	store.Delete("match-1")
	assert.Equal(t, 0, store.Len())
}

func TestMatchStore_Cleanup(t *testing.T) {
	store := NewMatchStore(time.Minute)

	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Save(&models.MatchSession{ID: "stale"})

	current = current.Add(2 * time.Minute)
	removed := store.Cleanup()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, store.Len())
}
