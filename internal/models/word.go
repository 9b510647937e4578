package models

import "strings"

// Grammar holds the optional grammatical metadata of a word. Empty fields are
// omitted from API payloads entirely rather than sent as empty strings.
type Grammar struct {
	Person string `json:"person,omitempty"`
	Number string `json:"number,omitempty"`
	Gender string `json:"gender,omitempty"`
	Tense  string `json:"tense,omitempty"`
	Form   string `json:"form,omitempty"`
}

// IsZero reports whether no grammar field is set.
func (g Grammar) IsZero() bool {
	return g.Person == "" && g.Number == "" && g.Gender == "" && g.Tense == "" && g.Form == ""
}

// Word represents a vocabulary entry. Arabic plus both translations are
// required for an entry to be displayed or quizzed; ArabicDiacritics falls
// back to Arabic everywhere it is shown.
type Word struct {
	ID               string   `json:"id"`
	Arabic           string   `json:"arabic"`
	ArabicDiacritics string   `json:"arabic_diacritics"`
	Transliteration  string   `json:"transliteration"`
	English          string   `json:"english"`
	Danish           string   `json:"danish"`
	Notes            string   `json:"notes"`
	WordGroup        string   `json:"word_group"`
	Tags             []string `json:"tags"`
	Grammar          *Grammar `json:"grammar,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// DisplayArabic returns the fully vocalized form when present, the bare
// script otherwise.
func (w *Word) DisplayArabic() string {
	if w.ArabicDiacritics != "" {
		return w.ArabicDiacritics
	}
	return w.Arabic
}

// HasTag reports whether the word carries the given tag.
func (w *Word) HasTag(tag string) bool {
	for _, t := range w.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// WordRequest is the payload for creating or updating a word.
type WordRequest struct {
	Arabic           string   `json:"arabic"`
	ArabicDiacritics string   `json:"arabic_diacritics"`
	Transliteration  string   `json:"transliteration"`
	English          string   `json:"english"`
	Danish           string   `json:"danish"`
	Notes            string   `json:"notes"`
	WordGroup        string   `json:"word_group"`
	Tags             []string `json:"tags"`
	Grammar          *Grammar `json:"grammar,omitempty"`
}

// Normalize trims the textual fields and drops an all-empty grammar record.
func (r *WordRequest) Normalize() {
	r.Arabic = strings.TrimSpace(r.Arabic)
	r.ArabicDiacritics = strings.TrimSpace(r.ArabicDiacritics)
	r.Transliteration = strings.TrimSpace(r.Transliteration)
	r.English = strings.TrimSpace(r.English)
	r.Danish = strings.TrimSpace(r.Danish)
	r.Notes = strings.TrimSpace(r.Notes)
	r.WordGroup = strings.TrimSpace(r.WordGroup)
	if r.Grammar != nil && r.Grammar.IsZero() {
		r.Grammar = nil
	}
}
