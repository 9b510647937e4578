package models

// Dataset is the full import/export payload: every word, both registries and
// the persisted settings. This is the on-disk JSON shape of the original
// vocabulary file, so older exports without groups or settings still decode.
type Dataset struct {
	Words      []Word    `json:"words"`
	Tags       []string  `json:"tags"`
	WordGroups []string  `json:"word_groups,omitempty"`
	Settings   *Settings `json:"settings,omitempty"`
}

// ImportResult is returned by a successful import.
type ImportResult struct {
	WordCount int `json:"word_count"`
}
