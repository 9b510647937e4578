package models

import "time"

const (
	// MatchMinPool is the smallest word pool a matching game can be dealt from.
	// Deliberately stricter than the quiz minimum.
	MatchMinPool = 5
	// MatchMaxWords caps how many words are sampled into one deal.
	MatchMaxWords = 5
)

// MatchCardKind distinguishes the two cards derived from one word.
type MatchCardKind string

const (
	MatchCardMeaning MatchCardKind = "meaning"
	MatchCardArabic  MatchCardKind = "arabic"
)

// MatchCardState is the visual/interaction state of a card.
type MatchCardState string

const (
	MatchCardIdle     MatchCardState = "idle"
	MatchCardSelected MatchCardState = "selected"
	MatchCardMatched  MatchCardState = "matched"
	MatchCardWrong    MatchCardState = "wrong"
)

// MatchCard is one face-up card on the board, tagged with its owning word.
type MatchCard struct {
	ID     string         `json:"id"`
	WordID string         `json:"word_id"`
	Kind   MatchCardKind  `json:"kind"`
	Text   string         `json:"text"`
	State  MatchCardState `json:"state"`
}

// MatchSession is the ephemeral state of one matching game.
type MatchSession struct {
	ID         string
	Cards      []MatchCard
	PendingID  string
	TotalPairs int
	PairsFound int
	Mistakes   int
	StartedAt  time.Time
	Won        bool
	WonAt      time.Time
	// Generation increments on every pair evaluation; delayed reveals carry
	// the generation they were scheduled under and no-op once it moves on.
	Generation uint64
	CreatedAt  time.Time
}

// Card returns a pointer to the card with the given ID, or nil.
func (s *MatchSession) Card(id string) *MatchCard {
	for i := range s.Cards {
		if s.Cards[i].ID == id {
			return &s.Cards[i]
		}
	}
	return nil
}

// Snapshot returns a copy that is safe to read after the owning service
// releases its lock. Card states keep changing underneath the live session
// while a mismatch revert is pending, so the copy owns its card slice.
func (s *MatchSession) Snapshot() *MatchSession {
	copied := *s
	copied.Cards = append([]MatchCard(nil), s.Cards...)
	return &copied
}

// Elapsed returns the wall-clock duration since the deal, frozen at win time.
func (s *MatchSession) Elapsed(now time.Time) time.Duration {
	if s.Won {
		return s.WonAt.Sub(s.StartedAt)
	}
	return now.Sub(s.StartedAt)
}

// MatchResult is reported when the last pair is found.
type MatchResult struct {
	Pairs          int     `json:"pairs"`
	Mistakes       int     `json:"mistakes"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
