package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arabicvocab/backend/internal/models"
)

const wordColumns = `id, arabic, arabic_diacritics, transliteration, english, danish, notes, word_group, tags,
	       grammar_person, grammar_number, grammar_gender, grammar_tense, grammar_form, created_at, updated_at`

// wordRepository implements word persistence over MySQL.
type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new word repository.
func NewWordRepository(db *sql.DB) *wordRepository {
	return &wordRepository{
		db: db,
	}
}

// List retrieves words, optionally narrowed by a lower-cased substring search
// over the textual fields and by exact tag membership. Results keep insertion
// order.
func (r *wordRepository) List(ctx context.Context, search, tag string) ([]models.Word, error) {
	var conditions []string
	var args []any

	if search != "" {
		conditions = append(conditions,
			`(LOWER(arabic) LIKE ? OR LOWER(english) LIKE ? OR LOWER(danish) LIKE ? OR LOWER(transliteration) LIKE ?)`)
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	if tag != "" {
		conditions = append(conditions, `JSON_CONTAINS(tags, JSON_QUOTE(?))`)
		args = append(args, tag)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM words
		%s
		ORDER BY created_at, id
	`, wordColumns, whereClause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *word)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return words, nil
}

// GetByID retrieves a word by its ID.
func (r *wordRepository) GetByID(ctx context.Context, id string) (*models.Word, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM words
		WHERE id = ?
		LIMIT 1
	`, wordColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	word, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("word not found")
	}
	if err != nil {
		return nil, err
	}
	return word, nil
}

// Create inserts a new word.
func (r *wordRepository) Create(ctx context.Context, word *models.Word) error {
	query := `
		INSERT INTO words (id, arabic, arabic_diacritics, transliteration, english, danish, notes, word_group, tags,
		                   grammar_person, grammar_number, grammar_gender, grammar_tense, grammar_form, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	args, err := wordArgs(word)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, append([]any{word.ID}, args...)...); err != nil {
		return fmt.Errorf("failed to create word: %w", err)
	}
	return nil
}

// Update overwrites every mutable field of the word with the given ID.
func (r *wordRepository) Update(ctx context.Context, id string, word *models.Word) error {
	query := `
		UPDATE words
		SET arabic = ?, arabic_diacritics = ?, transliteration = ?, english = ?, danish = ?, notes = ?, word_group = ?, tags = ?,
		    grammar_person = ?, grammar_number = ?, grammar_gender = ?, grammar_tense = ?, grammar_form = ?, created_at = ?, updated_at = ?
		WHERE id = ?
	`

	args, err := wordArgs(word)
	if err != nil {
		return err
	}
	result, err := r.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("word not found")
	}
	return nil
}

// UpdateTags rewrites only the tag set of a word. Used when a tag is deleted
// from the registry and stripped from every word carrying it.
func (r *wordRepository) UpdateTags(ctx context.Context, id string, tags []string) error {
	tagsJSON, err := json.Marshal(emptyIfNil(tags))
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `UPDATE words SET tags = ? WHERE id = ?`, string(tagsJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update word tags: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("word not found")
	}
	return nil
}

// Delete deletes a word by ID.
func (r *wordRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("word not found")
	}
	return nil
}

// Count returns the total number of stored words.
func (r *wordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// DeleteAll wipes the words table. Used by non-merge imports.
func (r *wordRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("failed to delete words: %w", err)
	}
	return nil
}

// Upsert inserts the word or, when its ID already exists, overwrites it.
// Used by merge imports.
func (r *wordRepository) Upsert(ctx context.Context, word *models.Word) error {
	query := `
		INSERT INTO words (id, arabic, arabic_diacritics, transliteration, english, danish, notes, word_group, tags,
		                   grammar_person, grammar_number, grammar_gender, grammar_tense, grammar_form, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			arabic = VALUES(arabic), arabic_diacritics = VALUES(arabic_diacritics), transliteration = VALUES(transliteration),
			english = VALUES(english), danish = VALUES(danish), notes = VALUES(notes), word_group = VALUES(word_group),
			tags = VALUES(tags), grammar_person = VALUES(grammar_person), grammar_number = VALUES(grammar_number),
			grammar_gender = VALUES(grammar_gender), grammar_tense = VALUES(grammar_tense), grammar_form = VALUES(grammar_form),
			updated_at = VALUES(updated_at)
	`

	args, err := wordArgs(word)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, append([]any{word.ID}, args...)...); err != nil {
		return fmt.Errorf("failed to upsert word: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWord(s scanner) (*models.Word, error) {
	var word models.Word
	var tagsJSON string
	var person, number, gender, tense, form sql.NullString

	err := s.Scan(
		&word.ID,
		&word.Arabic,
		&word.ArabicDiacritics,
		&word.Transliteration,
		&word.English,
		&word.Danish,
		&word.Notes,
		&word.WordGroup,
		&tagsJSON,
		&person,
		&number,
		&gender,
		&tense,
		&form,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan word: %w", err)
	}

	if err := json.Unmarshal([]byte(tagsJSON), &word.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if word.Tags == nil {
		word.Tags = []string{}
	}

	grammar := models.Grammar{
		Person: person.String,
		Number: number.String,
		Gender: gender.String,
		Tense:  tense.String,
		Form:   form.String,
	}
	if !grammar.IsZero() {
		word.Grammar = &grammar
	}

	return &word, nil
}

func wordArgs(word *models.Word) ([]any, error) {
	tagsJSON, err := json.Marshal(emptyIfNil(word.Tags))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tags: %w", err)
	}

	grammar := models.Grammar{}
	if word.Grammar != nil {
		grammar = *word.Grammar
	}

	return []any{
		word.Arabic,
		word.ArabicDiacritics,
		word.Transliteration,
		word.English,
		word.Danish,
		word.Notes,
		word.WordGroup,
		string(tagsJSON),
		nullable(grammar.Person),
		nullable(grammar.Number),
		nullable(grammar.Gender),
		nullable(grammar.Tense),
		nullable(grammar.Form),
		word.CreatedAt,
		word.UpdatedAt,
	}, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
