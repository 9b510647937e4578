package services

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/arabicvocab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler collects scheduled callbacks so tests fire them explicitly.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) schedule(delay time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
}

func (m *manualScheduler) fire() {
	pending := m.pending
	m.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func newTestMatchService(words []models.Word) (*matchService, *manualScheduler) {
	scheduler := &manualScheduler{}
	repo := &mockWordRepository{words: words}
	service := NewMatchService(repo, newMockMatchStore(), rand.New(rand.NewSource(1)), scheduler.schedule)
	return service, scheduler
}

// cardsOf returns the two cards belonging to one word.
func cardsOf(session *models.MatchSession, wordID string) (meaning, arabic *models.MatchCard) {
	for i := range session.Cards {
		card := &session.Cards[i]
		if card.WordID != wordID {
			continue
		}
		if card.Kind == models.MatchCardMeaning {
			meaning = card
		} else {
			arabic = card
		}
	}
	return meaning, arabic
}

func TestMatchService_Deal(t *testing.T) {
	tests := []struct {
		name          string
		wordCount     int
		expectedError string
	}{
		{name: "minimum pool deals a full board", wordCount: 5},
		{name: "large pool still deals five pairs", wordCount: 50},
		{name: "four words rejected", wordCount: 4, expectedError: "you need at least 5 words to play the matching game"},
		{name: "empty catalog rejected", wordCount: 0, expectedError: "you need at least 5 words to play the matching game"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestMatchService(testWords(tt.wordCount))

			session, err := service.Deal(context.Background(), "")

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, session.Cards, 10)
			assert.Equal(t, 5, session.TotalPairs)

			meanings, arabics := 0, 0
			perWord := make(map[string]int)
			for _, card := range session.Cards {
				assert.Equal(t, models.MatchCardIdle, card.State)
				perWord[card.WordID]++
				if card.Kind == models.MatchCardMeaning {
					meanings++
				} else {
					arabics++
				}
			}
			assert.Equal(t, 5, meanings)
			assert.Equal(t, 5, arabics)
			for _, n := range perWord {
				assert.Equal(t, 2, n)
			}
		})
	}
}

func TestMatchService_Pick_SelectAndMatch(t *testing.T) {
	service, _ := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	meaning, arabic := cardsOf(session, session.Cards[0].WordID)

	updated, result, err := service.Pick(session.ID, meaning.ID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, models.MatchCardSelected, updated.Card(meaning.ID).State)
	assert.Equal(t, meaning.ID, updated.PendingID)

	updated, result, err = service.Pick(session.ID, arabic.ID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, models.MatchCardMatched, updated.Card(meaning.ID).State)
	assert.Equal(t, models.MatchCardMatched, updated.Card(arabic.ID).State)
	assert.Empty(t, updated.PendingID)
	assert.Equal(t, 1, updated.PairsFound)
	assert.Equal(t, 0, updated.Mistakes)
}

func TestMatchService_Pick_WrongPairRevertsAfterDelay(t *testing.T) {
	service, scheduler := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	first, _ := cardsOf(session, "word-0")
	second, _ := cardsOf(session, "word-1")

	_, _, err = service.Pick(session.ID, first.ID)
	require.NoError(t, err)
	updated, result, err := service.Pick(session.ID, second.ID)
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, models.MatchCardWrong, updated.Card(first.ID).State)
	assert.Equal(t, models.MatchCardWrong, updated.Card(second.ID).State)
	assert.Equal(t, 1, updated.Mistakes)
	assert.Empty(t, updated.PendingID, "pending selection clears immediately on the second click")

	scheduler.fire()

	refreshed, err := service.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCardIdle, refreshed.Card(first.ID).State)
	assert.Equal(t, models.MatchCardIdle, refreshed.Card(second.ID).State)
}

func TestMatchService_Pick_ReturnedSessionDetachedFromRevert(t *testing.T) {
	service, scheduler := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	first, _ := cardsOf(session, "word-0")
	second, _ := cardsOf(session, "word-1")

	_, _, err = service.Pick(session.ID, first.ID)
	require.NoError(t, err)
	updated, _, err := service.Pick(session.ID, second.ID)
	require.NoError(t, err)

	scheduler.fire()

	// The copy handed to the caller keeps the state it was taken with; only
	// the stored session flips back. Serializing it cannot race the revert.
	assert.Equal(t, models.MatchCardWrong, updated.Card(first.ID).State)
	assert.Equal(t, models.MatchCardWrong, updated.Card(second.ID).State)
}

func TestMatchService_Pick_StaleRevertDoesNotTouchNewerState(t *testing.T) {
	service, scheduler := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	firstMeaning, firstArabic := cardsOf(session, "word-0")
	secondMeaning, _ := cardsOf(session, "word-1")

	// Mismatch, then resolve the same cards again before the revert fires.
	_, _, err = service.Pick(session.ID, firstMeaning.ID)
	require.NoError(t, err)
	_, _, err = service.Pick(session.ID, secondMeaning.ID)
	require.NoError(t, err)

	_, _, err = service.Pick(session.ID, firstMeaning.ID)
	require.NoError(t, err)
	updated, _, err := service.Pick(session.ID, firstArabic.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCardMatched, updated.Card(firstMeaning.ID).State)

	scheduler.fire()

	// The stale revert must not flip the matched pair back.
	refreshed, err := service.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCardMatched, refreshed.Card(firstMeaning.ID).State)
	assert.Equal(t, models.MatchCardMatched, refreshed.Card(firstArabic.ID).State)
}

func TestMatchService_Pick_IgnoredClicks(t *testing.T) {
	service, _ := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	meaning, arabic := cardsOf(session, "word-0")

	// Clicking the pending card again is a no-op.
	_, _, err = service.Pick(session.ID, meaning.ID)
	require.NoError(t, err)
	updated, _, err := service.Pick(session.ID, meaning.ID)
	require.NoError(t, err)
	assert.Equal(t, meaning.ID, updated.PendingID)
	assert.Equal(t, models.MatchCardSelected, updated.Card(meaning.ID).State)

	// Clicking a matched card is a no-op.
	_, _, err = service.Pick(session.ID, arabic.ID)
	require.NoError(t, err)
	updated, _, err = service.Pick(session.ID, arabic.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MatchCardMatched, updated.Card(arabic.ID).State)
	assert.Equal(t, 1, updated.PairsFound)
}

func TestMatchService_Pick_UnknownCard(t *testing.T) {
	service, _ := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	_, _, err = service.Pick(session.ID, "missing")
	assert.EqualError(t, err, "card not found")
}

func TestMatchService_WinExactlyOnce(t *testing.T) {
	service, _ := newTestMatchService(testWords(5))

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := start
	service.now = func() time.Time { return current }

	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)
	current = start.Add(12340 * time.Millisecond)

	wordIDs := make(map[string]bool)
	for _, card := range session.Cards {
		wordIDs[card.WordID] = true
	}

	var updated *models.MatchSession
	var result *models.MatchResult
	for wordID := range wordIDs {
		meaning, arabic := cardsOf(session, wordID)
		_, _, err = service.Pick(session.ID, meaning.ID)
		require.NoError(t, err)
		updated, result, err = service.Pick(session.ID, arabic.ID)
		require.NoError(t, err)
	}

	require.NotNil(t, result)
	assert.Equal(t, 5, result.Pairs)
	assert.Equal(t, 0, result.Mistakes)
	assert.Equal(t, 12.3, result.ElapsedSeconds)
	assert.True(t, updated.Won)

	// Further picks after the win are rejected, so the result fires once.
	_, _, err = service.Pick(session.ID, session.Cards[0].ID)
	assert.EqualError(t, err, "game already won")
}

func TestMatchService_Exit(t *testing.T) {
	service, _ := newTestMatchService(testWords(5))
	session, err := service.Deal(context.Background(), "")
	require.NoError(t, err)

	service.Exit(session.ID)

	_, err = service.Get(session.ID)
	assert.EqualError(t, err, "match session not found")
}
