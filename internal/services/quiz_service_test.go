package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/arabicvocab/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuizService(words []models.Word) (*quizService, *mockQuizStore) {
	store := newMockQuizStore()
	repo := &mockWordRepository{words: words}
	service := NewQuizService(repo, store, rand.New(rand.NewSource(1)))
	return service, store
}

func TestQuizService_Start(t *testing.T) {
	tests := []struct {
		name          string
		wordCount     int
		expectedError string
		expectedLen   int
	}{
		{name: "minimum pool yields one question per word", wordCount: 4, expectedLen: 4},
		{name: "large pool capped at ten questions", wordCount: 100, expectedLen: 10},
		{name: "seven words yield seven questions", wordCount: 7, expectedLen: 7},
		{name: "pool below minimum rejected", wordCount: 3, expectedError: "you need at least 4 words to start a quiz"},
		{name: "empty catalog rejected", wordCount: 0, expectedError: "you need at least 4 words to start a quiz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestQuizService(testWords(tt.wordCount))

			session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, session.Questions, tt.expectedLen)

			// No word may be sampled twice.
			seen := make(map[string]bool)
			for _, q := range session.Questions {
				assert.False(t, seen[q.Word.ID])
				seen[q.Word.ID] = true
			}
		})
	}
}

func TestQuizService_Start_UnknownMode(t *testing.T) {
	service, _ := newTestQuizService(testWords(10))

	_, err := service.Start(context.Background(), "backwards", "")

	assert.EqualError(t, err, `unknown quiz mode "backwards"`)
}

func TestQuizService_Start_TagFilter(t *testing.T) {
	words := testWords(10)
	for i := 0; i < 4; i++ {
		words[i].Tags = []string{"school"}
	}
	service, _ := newTestQuizService(words)

	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "school")

	require.NoError(t, err)
	assert.Len(t, session.Questions, 4)
	for _, q := range session.Questions {
		assert.True(t, q.Word.HasTag("school"))
	}
}

func TestQuizService_Start_TagFilterBelowMinimum(t *testing.T) {
	words := testWords(10)
	words[0].Tags = []string{"rare"}
	service, _ := newTestQuizService(words)

	_, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "rare")

	assert.EqualError(t, err, "you need at least 4 words to start a quiz")
}

func TestQuizService_QuestionOptions(t *testing.T) {
	service, _ := newTestQuizService(testWords(10))

	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	for _, question := range session.Questions {
		assert.Len(t, question.Options, models.QuizOptionCount)

		correct := 0
		seen := make(map[string]bool)
		for _, option := range question.Options {
			assert.False(t, seen[option.WordID], "duplicate option word")
			seen[option.WordID] = true
			if option.WordID == question.Word.ID {
				correct++
			}
		}
		assert.Equal(t, 1, correct, "correct option must appear exactly once")
	}
}

func TestQuizService_PromptDirection(t *testing.T) {
	words := testWords(4)
	words[0].ArabicDiacritics = "مُشَكَّل"

	service, _ := newTestQuizService(words)
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	for _, q := range session.Questions {
		assert.Equal(t, q.Word.DisplayArabic(), q.Prompt)
		for _, option := range q.Options {
			assert.NotContains(t, option.Text, "عربي", "options must be meanings in arabic-to-meaning mode")
		}
	}

	service, _ = newTestQuizService(words)
	session, err = service.Start(context.Background(), models.QuizModeMeaningToArabic, "")
	require.NoError(t, err)

	for _, q := range session.Questions {
		assert.Equal(t, q.Word.English, q.Prompt)
	}
}

func TestQuizService_AnswerAndNext(t *testing.T) {
	service, _ := newTestQuizService(testWords(4))
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	// Answer the first question correctly.
	answer, err := service.Answer(session.ID, session.Questions[0].Word.ID)
	require.NoError(t, err)
	assert.True(t, answer.Correct)
	assert.Equal(t, 1, answer.Score)

	// A second submission for the same question is rejected.
	_, err = service.Answer(session.ID, session.Questions[0].Word.ID)
	assert.EqualError(t, err, "question already answered")

	updated, result, err := service.Next(session.ID)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 1, updated.Index)

	// Advancing an unanswered question is rejected.
	_, _, err = service.Next(session.ID)
	assert.EqualError(t, err, "current question not answered yet")
}

func TestQuizService_WrongAnswerReportsCorrectOption(t *testing.T) {
	service, _ := newTestQuizService(testWords(4))
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	question := session.Questions[0]
	var wrongID string
	for _, option := range question.Options {
		if option.WordID != question.Word.ID {
			wrongID = option.WordID
			break
		}
	}

	answer, err := service.Answer(session.ID, wrongID)
	require.NoError(t, err)
	assert.False(t, answer.Correct)
	assert.Equal(t, question.Word.ID, answer.CorrectID)
	assert.Equal(t, question.Word.English, answer.CorrectText)
	assert.Equal(t, 0, answer.Score)
}

func TestQuizService_FullRunProducesResult(t *testing.T) {
	service, _ := newTestQuizService(testWords(4))
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	var result *models.QuizResult
	for i := range session.Questions {
		// Answer correctly on even questions only.
		selected := session.Questions[i].Word.ID
		if i%2 == 1 {
			for _, option := range session.Questions[i].Options {
				if option.WordID != session.Questions[i].Word.ID {
					selected = option.WordID
					break
				}
			}
		}
		_, err = service.Answer(session.ID, selected)
		require.NoError(t, err)

		_, result, err = service.Next(session.ID)
		require.NoError(t, err)
	}

	require.NotNil(t, result)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 50, result.Percent)
	assert.Equal(t, "Good effort! 💪", result.Message)

	_, err = service.Answer(session.ID, "anything")
	assert.EqualError(t, err, "quiz already finished")
}

func TestQuizService_ResultMessages(t *testing.T) {
	tests := []struct {
		percent  int
		expected string
	}{
		{100, "Perfect Score! 🎉"},
		{80, "Great Job! 👏"},
		{50, "Good effort! 💪"},
		{40, "Keep practicing!"},
		{0, "Keep practicing!"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, resultMessage(tt.percent))
	}
}

func TestQuizService_ReturnedSessionDetached(t *testing.T) {
	service, _ := newTestQuizService(testWords(4))
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	_, err = service.Answer(session.ID, session.Questions[0].Word.ID)
	require.NoError(t, err)

	// The copy from Start does not observe later scoring, so serializing it
	// cannot race concurrent answers.
	assert.Equal(t, 0, session.Score)
	assert.False(t, session.Answered)

	refreshed, err := service.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.Score)
	assert.True(t, refreshed.Answered)
}

func TestQuizService_Exit(t *testing.T) {
	service, store := newTestQuizService(testWords(4))
	session, err := service.Start(context.Background(), models.QuizModeArabicToMeaning, "")
	require.NoError(t, err)

	service.Exit(session.ID)

	_, err = store.Get(session.ID)
	assert.EqualError(t, err, "quiz session not found")
}
