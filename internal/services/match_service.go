package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arabicvocab/backend/internal/models"
)

// WrongRevertDelay is how long a mismatched pair stays revealed before both
// cards flip back.
const WrongRevertDelay = time.Second

// MatchSessionStore wraps the in-memory store of running matching games.
type MatchSessionStore interface {
	Save(session *models.MatchSession)
	Get(id string) (*models.MatchSession, error)
	Delete(id string)
}

// Scheduler runs fn once after the delay. The default implementation wraps
// time.AfterFunc; tests substitute a synchronous one.
type Scheduler func(delay time.Duration, fn func())

type matchService struct {
	wordRepo WordRepository
	store    MatchSessionStore
	schedule Scheduler

	// mu serializes all session mutations, including scheduled reverts.
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMatchService creates a new matching game service.
func NewMatchService(wordRepo WordRepository, store MatchSessionStore, rng *rand.Rand, schedule Scheduler) *matchService {
	if schedule == nil {
		schedule = func(delay time.Duration, fn func()) {
			time.AfterFunc(delay, fn)
		}
	}
	return &matchService{
		wordRepo: wordRepo,
		store:    store,
		schedule: schedule,
		rng:      rng,
		now:      time.Now,
	}
}

// Deal samples words and lays out a shuffled board with one meaning card and
// one Arabic card per word.
func (s *matchService) Deal(ctx context.Context, tag string) (*models.MatchSession, error) {
	pool, err := s.wordRepo.List(ctx, "", tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	if len(pool) < models.MatchMinPool {
		return nil, fmt.Errorf("you need at least %d words to play the matching game", models.MatchMinPool)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.MatchMaxWords
	if n > len(pool) {
		n = len(pool)
	}
	perm := s.rng.Perm(len(pool))

	cards := make([]models.MatchCard, 0, 2*n)
	for _, idx := range perm[:n] {
		word := pool[idx]
		cards = append(cards,
			models.MatchCard{
				ID:     uuid.New().String(),
				WordID: word.ID,
				Kind:   models.MatchCardMeaning,
				Text:   word.English,
				State:  models.MatchCardIdle,
			},
			models.MatchCard{
				ID:     uuid.New().String(),
				WordID: word.ID,
				Kind:   models.MatchCardArabic,
				Text:   word.DisplayArabic(),
				State:  models.MatchCardIdle,
			},
		)
	}
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	now := s.now()
	session := &models.MatchSession{
		ID:         uuid.New().String(),
		Cards:      cards,
		TotalPairs: n,
		StartedAt:  now,
		CreatedAt:  now,
	}
	s.store.Save(session)
	return session.Snapshot(), nil
}

// Get returns a copy of a running session. Callers serialize the copy
// outside the lock while scheduled reverts keep mutating the stored one.
func (s *matchService) Get(id string) (*models.MatchSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// Pick handles one card click. The first pick of a pair marks the card
// selected; the second resolves the pair immediately, with mismatched cards
// flipping back after a delay. Winning returns a non-nil result. The returned
// session is a copy detached from the scheduled revert.
func (s *matchService) Pick(id, cardID string) (*models.MatchSession, *models.MatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if session.Won {
		return nil, nil, fmt.Errorf("game already won")
	}

	card := session.Card(cardID)
	if card == nil {
		return nil, nil, fmt.Errorf("card not found")
	}

	// Clicking during the mismatch reveal flips the wrong pair back right
	// away instead of waiting for the scheduled revert.
	for i := range session.Cards {
		if session.Cards[i].State == models.MatchCardWrong {
			session.Cards[i].State = models.MatchCardIdle
		}
	}

	// Clicks on resolved cards or on the already selected card do nothing.
	if card.State == models.MatchCardMatched || card.ID == session.PendingID {
		return session.Snapshot(), nil, nil
	}

	if session.PendingID == "" {
		card.State = models.MatchCardSelected
		session.PendingID = card.ID
		return session.Snapshot(), nil, nil
	}

	first := session.Card(session.PendingID)
	session.PendingID = ""
	session.Generation++

	if first.WordID == card.WordID {
		first.State = models.MatchCardMatched
		card.State = models.MatchCardMatched
		session.PairsFound++
		if session.PairsFound == session.TotalPairs {
			session.Won = true
			session.WonAt = s.now()
			return session.Snapshot(), s.result(session), nil
		}
		return session.Snapshot(), nil, nil
	}

	first.State = models.MatchCardWrong
	card.State = models.MatchCardWrong
	session.Mistakes++

	gen := session.Generation
	firstID, secondID := first.ID, card.ID
	s.schedule(WrongRevertDelay, func() {
		s.revertWrong(id, gen, firstID, secondID)
	})
	return session.Snapshot(), nil, nil
}

// revertWrong flips a mismatched pair back to idle unless a newer evaluation
// already superseded the scheduled one.
func (s *matchService) revertWrong(id string, gen uint64, cardIDs ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return
	}
	if session.Generation != gen {
		return
	}
	for _, cardID := range cardIDs {
		if card := session.Card(cardID); card != nil && card.State == models.MatchCardWrong {
			card.State = models.MatchCardIdle
		}
	}
}

// Exit discards a session.
func (s *matchService) Exit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(id)
}

// result snapshots the final score with elapsed time rounded to one decimal.
func (s *matchService) result(session *models.MatchSession) *models.MatchResult {
	elapsed := session.Elapsed(s.now()).Seconds()
	return &models.MatchResult{
		Pairs:          session.PairsFound,
		Mistakes:       session.Mistakes,
		ElapsedSeconds: math.Round(elapsed*10) / 10,
	}
}
