package models

import (
	"fmt"
	"strings"
)

// MaxActiveLanguages is the cap on simultaneously displayed languages.
const MaxActiveLanguages = 2

// DefaultLanguages are the base display languages offered by the server.
var DefaultLanguages = []string{"English", "Danish"}

// Settings holds the persisted display-language selection.
type Settings struct {
	Languages          []string `json:"languages"`
	CustomLanguages    []string `json:"custom_languages"`
	AvailableLanguages []string `json:"available_languages"`
}

// DefaultSettings returns the settings used before the user saved anything.
func DefaultSettings() *Settings {
	return &Settings{
		Languages:          append([]string(nil), DefaultLanguages...),
		CustomLanguages:    []string{},
		AvailableLanguages: append([]string(nil), DefaultLanguages...),
	}
}

// SettingsRequest is the payload of a settings update.
type SettingsRequest struct {
	Languages       []string `json:"languages"`
	CustomLanguages []string `json:"custom_languages"`
}

// SettingsDraft is an editable copy of the language selection, distinct from
// the persisted settings so closing without saving discards edits.
type SettingsDraft struct {
	Selected  []string
	Custom    []string
	Available []string
}

// NewSettingsDraft seeds a draft from the persisted settings.
func NewSettingsDraft(s *Settings) *SettingsDraft {
	return &SettingsDraft{
		Selected:  append([]string(nil), s.Languages...),
		Custom:    append([]string(nil), s.CustomLanguages...),
		Available: append([]string(nil), s.AvailableLanguages...),
	}
}

// Toggle selects or deselects a language. Selecting beyond the cap is
// rejected and leaves the draft unchanged.
func (d *SettingsDraft) Toggle(lang string, selected bool) error {
	if selected {
		if contains(d.Selected, lang) {
			return nil
		}
		if len(d.Selected) >= MaxActiveLanguages {
			return fmt.Errorf("you can only select up to %d languages", MaxActiveLanguages)
		}
		d.Selected = append(d.Selected, lang)
		return nil
	}
	d.Selected = remove(d.Selected, lang)
	return nil
}

// AddCustom registers a user-defined language. Duplicates of either the base
// set or existing customs are ignored.
func (d *SettingsDraft) AddCustom(lang string) {
	lang = strings.TrimSpace(lang)
	if lang == "" || contains(d.Custom, lang) || contains(d.Available, lang) {
		return
	}
	d.Custom = append(d.Custom, lang)
}

// RemoveCustom drops a custom language, deselecting it as well if active.
func (d *SettingsDraft) RemoveCustom(lang string) {
	d.Custom = remove(d.Custom, lang)
	d.Selected = remove(d.Selected, lang)
}

// Request converts the draft into an update payload.
func (d *SettingsDraft) Request() *SettingsRequest {
	return &SettingsRequest{
		Languages:       append([]string(nil), d.Selected...),
		CustomLanguages: append([]string(nil), d.Custom...),
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
