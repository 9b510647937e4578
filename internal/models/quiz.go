package models

import "time"

// QuizMode selects which side of a word is the prompt.
type QuizMode string

const (
	// QuizModeArabicToMeaning prompts with the Arabic form, options are meanings.
	QuizModeArabicToMeaning QuizMode = "ar-en"
	// QuizModeMeaningToArabic prompts with the meaning, options are Arabic forms.
	QuizModeMeaningToArabic QuizMode = "en-ar"
)

// Valid reports whether the mode is one of the two supported directions.
func (m QuizMode) Valid() bool {
	return m == QuizModeArabicToMeaning || m == QuizModeMeaningToArabic
}

const (
	// QuizMinPool is the smallest word pool a quiz can start from.
	QuizMinPool = 4
	// QuizMaxQuestions caps the number of questions per session.
	QuizMaxQuestions = 10
	// QuizOptionCount is the fixed number of options per question.
	QuizOptionCount = 4
)

// QuizOption is one selectable answer.
type QuizOption struct {
	WordID string `json:"word_id"`
	Text   string `json:"text"`
}

// QuizQuestion pairs a sampled word with its shuffled option set. The word
// identity of the correct option equals the question word's ID.
type QuizQuestion struct {
	Word    Word
	Prompt  string
	Options []QuizOption
}

// QuizSession is the ephemeral state of one practice round.
type QuizSession struct {
	ID        string
	Mode      QuizMode
	Tag       string
	Questions []QuizQuestion
	Index     int
	Score     int
	Answered  bool
	Finished  bool
	CreatedAt time.Time
}

// Snapshot returns a copy that is safe to read after the owning service
// releases its lock. Questions are immutable once built, so the copy shares
// them and only detaches the scoring fields.
func (s *QuizSession) Snapshot() *QuizSession {
	copied := *s
	return &copied
}

// Current returns the active question, or nil when the session is finished.
func (s *QuizSession) Current() *QuizQuestion {
	if s.Finished || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// QuizAnswer is the evaluation of a single selection.
type QuizAnswer struct {
	Correct     bool   `json:"correct"`
	CorrectID   string `json:"correct_id"`
	CorrectText string `json:"correct_text"`
	Score       int    `json:"score"`
}

// QuizResult is reported once the session moves past its last question.
type QuizResult struct {
	Total   int    `json:"total"`
	Score   int    `json:"score"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}
