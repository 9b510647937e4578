package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/arabicvocab/backend/internal/models"
)

// mockWordRepository is a mock implementation of WordRepository and
// TransferWordRepository backed by an in-memory slice.
type mockWordRepository struct {
	words      []models.Word
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	upsertErr  error
	created    []models.Word
	updated    []models.Word
	upserted   []models.Word
	tagWrites  map[string][]string
	deletedAll bool
}

func (m *mockWordRepository) List(ctx context.Context, search, tag string) ([]models.Word, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []models.Word{}
	for _, word := range m.words {
		if search != "" && !strings.Contains(strings.ToLower(word.English), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(word.Arabic), strings.ToLower(search)) {
			continue
		}
		if tag != "" && !word.HasTag(tag) {
			continue
		}
		out = append(out, word)
	}
	return out, nil
}

func (m *mockWordRepository) GetByID(ctx context.Context, id string) (*models.Word, error) {
	for i := range m.words {
		if m.words[i].ID == id {
			return &m.words[i], nil
		}
	}
	return nil, fmt.Errorf("word not found")
}

func (m *mockWordRepository) Create(ctx context.Context, word *models.Word) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, *word)
	m.words = append(m.words, *word)
	return nil
}

func (m *mockWordRepository) Update(ctx context.Context, id string, word *models.Word) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i := range m.words {
		if m.words[i].ID == id {
			m.words[i] = *word
			m.updated = append(m.updated, *word)
			return nil
		}
	}
	return fmt.Errorf("word not found")
}

func (m *mockWordRepository) UpdateTags(ctx context.Context, id string, tags []string) error {
	if m.tagWrites == nil {
		m.tagWrites = make(map[string][]string)
	}
	for i := range m.words {
		if m.words[i].ID == id {
			m.words[i].Tags = tags
			m.tagWrites[id] = tags
			return nil
		}
	}
	return fmt.Errorf("word not found")
}

func (m *mockWordRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i := range m.words {
		if m.words[i].ID == id {
			m.words = append(m.words[:i], m.words[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("word not found")
}

func (m *mockWordRepository) Count(ctx context.Context) (int, error) {
	return len(m.words), nil
}

func (m *mockWordRepository) DeleteAll(ctx context.Context) error {
	m.deletedAll = true
	m.words = nil
	return nil
}

func (m *mockWordRepository) Upsert(ctx context.Context, word *models.Word) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserted = append(m.upserted, *word)
	for i := range m.words {
		if m.words[i].ID == word.ID {
			m.words[i] = *word
			return nil
		}
	}
	m.words = append(m.words, *word)
	return nil
}

// mockRegistryRepository is a mock implementation of RegistryRepository and
// TransferRegistryRepository.
type mockRegistryRepository struct {
	names      []string
	listErr    error
	addErr     error
	deleteErr  error
	deletedAll bool
}

func (m *mockRegistryRepository) List(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]string{}, m.names...), nil
}

func (m *mockRegistryRepository) Add(ctx context.Context, name string) error {
	if m.addErr != nil {
		return m.addErr
	}
	for _, existing := range m.names {
		if existing == name {
			return nil
		}
	}
	m.names = append(m.names, name)
	return nil
}

func (m *mockRegistryRepository) Delete(ctx context.Context, name string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, existing := range m.names {
		if existing == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("tag not found")
}

func (m *mockRegistryRepository) DeleteAll(ctx context.Context) error {
	m.deletedAll = true
	m.names = nil
	return nil
}

// mockSettingsRepository is a mock implementation of SettingsRepository.
type mockSettingsRepository struct {
	settings *models.Settings
	getErr   error
	saveErr  error
	saved    *models.Settings
}

func (m *mockSettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if m.settings == nil {
		return models.DefaultSettings(), nil
	}
	return m.settings, nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, settings *models.Settings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = settings
	m.settings = settings
	return nil
}

// mockQuizStore is a map-backed QuizSessionStore.
type mockQuizStore struct {
	sessions map[string]*models.QuizSession
}

func newMockQuizStore() *mockQuizStore {
	return &mockQuizStore{sessions: make(map[string]*models.QuizSession)}
}

func (m *mockQuizStore) Save(session *models.QuizSession) {
	m.sessions[session.ID] = session
}

func (m *mockQuizStore) Get(id string) (*models.QuizSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("quiz session not found")
	}
	return session, nil
}

func (m *mockQuizStore) Delete(id string) {
	delete(m.sessions, id)
}

// mockMatchStore is a map-backed MatchSessionStore.
type mockMatchStore struct {
	sessions map[string]*models.MatchSession
}

func newMockMatchStore() *mockMatchStore {
	return &mockMatchStore{sessions: make(map[string]*models.MatchSession)}
}

func (m *mockMatchStore) Save(session *models.MatchSession) {
	m.sessions[session.ID] = session
}

func (m *mockMatchStore) Get(id string) (*models.MatchSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("match session not found")
	}
	return session, nil
}

func (m *mockMatchStore) Delete(id string) {
	delete(m.sessions, id)
}

// testWords builds n valid words with predictable fields.
func testWords(n int) []models.Word {
	words := make([]models.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, models.Word{
			ID:        fmt.Sprintf("word-%d", i),
			Arabic:    fmt.Sprintf("عربي%d", i),
			English:   fmt.Sprintf("english-%d", i),
			Danish:    fmt.Sprintf("dansk-%d", i),
			Tags:      []string{},
			CreatedAt: "2025-01-01T10:00:00",
			UpdatedAt: "2025-01-01T10:00:00",
		})
	}
	return words
}
