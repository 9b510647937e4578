package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arabicvocab/backend/internal/models"
)

// QuizSessionStore wraps the in-memory store of running quiz sessions.
type QuizSessionStore interface {
	Save(session *models.QuizSession)
	Get(id string) (*models.QuizSession, error)
	Delete(id string)
}

type quizService struct {
	wordRepo WordRepository
	store    QuizSessionStore

	// mu serializes session mutations and guards the shared random source.
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewQuizService creates a new quiz service. The random source is injected so
// question sampling is reproducible in tests.
func NewQuizService(wordRepo WordRepository, store QuizSessionStore, rng *rand.Rand) *quizService {
	return &quizService{
		wordRepo: wordRepo,
		store:    store,
		rng:      rng,
		now:      time.Now,
	}
}

// Start samples a question set and opens a new session. The pool is the
// whole catalog or, when tag is set, only words carrying that tag.
func (s *quizService) Start(ctx context.Context, mode models.QuizMode, tag string) (*models.QuizSession, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown quiz mode %q", mode)
	}

	pool, err := s.wordRepo.List(ctx, "", tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	if len(pool) < models.QuizMinPool {
		return nil, fmt.Errorf("you need at least %d words to start a quiz", models.QuizMinPool)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sampled := s.sample(pool, models.QuizMaxQuestions)
	questions := make([]models.QuizQuestion, 0, len(sampled))
	for _, word := range sampled {
		questions = append(questions, s.buildQuestion(word, sampled, mode))
	}

	session := &models.QuizSession{
		ID:        uuid.New().String(),
		Mode:      mode,
		Tag:       tag,
		Questions: questions,
		CreatedAt: s.now(),
	}
	s.store.Save(session)
	return session.Snapshot(), nil
}

// Get returns a copy of a running session.
func (s *quizService) Get(id string) (*models.QuizSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return session.Snapshot(), nil
}

// Answer evaluates a selection against the current question. Each question
// accepts exactly one answer.
func (s *quizService) Answer(id, selectedWordID string) (*models.QuizAnswer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if session.Finished {
		return nil, fmt.Errorf("quiz already finished")
	}
	if session.Answered {
		return nil, fmt.Errorf("question already answered")
	}

	question := session.Current()
	if question == nil {
		return nil, fmt.Errorf("quiz already finished")
	}

	correct := selectedWordID == question.Word.ID
	if correct {
		session.Score++
	}
	session.Answered = true

	return &models.QuizAnswer{
		Correct:     correct,
		CorrectID:   question.Word.ID,
		CorrectText: optionText(&question.Word, session.Mode),
		Score:       session.Score,
	}, nil
}

// Next advances past the current answered question. When the last question is
// passed, the session finishes and the result is returned.
func (s *quizService) Next(id string) (*models.QuizSession, *models.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if session.Finished {
		return nil, nil, fmt.Errorf("quiz already finished")
	}
	if !session.Answered {
		return nil, nil, fmt.Errorf("current question not answered yet")
	}

	session.Index++
	session.Answered = false
	if session.Index < len(session.Questions) {
		return session.Snapshot(), nil, nil
	}

	session.Finished = true
	total := len(session.Questions)
	percent := int(float64(session.Score)/float64(total)*100 + 0.5)
	return session.Snapshot(), &models.QuizResult{
		Total:   total,
		Score:   session.Score,
		Percent: percent,
		Message: resultMessage(percent),
	}, nil
}

// Exit discards a session.
func (s *quizService) Exit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(id)
}

// sample picks up to n distinct words without replacement.
func (s *quizService) sample(pool []models.Word, n int) []models.Word {
	if n > len(pool) {
		n = len(pool)
	}
	perm := s.rng.Perm(len(pool))
	sampled := make([]models.Word, 0, n)
	for _, idx := range perm[:n] {
		sampled = append(sampled, pool[idx])
	}
	return sampled
}

// buildQuestion pairs a word with three distractors drawn from the sampled
// question set and shuffles the options.
func (s *quizService) buildQuestion(word models.Word, sampled []models.Word, mode models.QuizMode) models.QuizQuestion {
	options := []models.QuizOption{{WordID: word.ID, Text: optionText(&word, mode)}}

	candidates := make([]models.Word, 0, len(sampled)-1)
	for _, candidate := range sampled {
		if candidate.ID != word.ID {
			candidates = append(candidates, candidate)
		}
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for i := 0; i < len(candidates) && len(options) < models.QuizOptionCount; i++ {
		options = append(options, models.QuizOption{
			WordID: candidates[i].ID,
			Text:   optionText(&candidates[i], mode),
		})
	}

	s.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return models.QuizQuestion{
		Word:    word,
		Prompt:  promptText(&word, mode),
		Options: options,
	}
}

func promptText(word *models.Word, mode models.QuizMode) string {
	if mode == models.QuizModeArabicToMeaning {
		return word.DisplayArabic()
	}
	return word.English
}

func optionText(word *models.Word, mode models.QuizMode) string {
	if mode == models.QuizModeArabicToMeaning {
		return word.English
	}
	return word.DisplayArabic()
}

func resultMessage(percent int) string {
	switch {
	case percent == 100:
		return "Perfect Score! 🎉"
	case percent >= 80:
		return "Great Job! 👏"
	case percent >= 50:
		return "Good effort! 💪"
	default:
		return "Keep practicing!"
	}
}
