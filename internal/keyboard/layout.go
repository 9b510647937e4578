// Package keyboard implements the on-screen Arabic keyboard: the key layout
// served to the client and the caret-aware text editing used by the input
// overlay.
package keyboard

// LetterRows is the Arabic key layout, top row first. The top row carries the
// Eastern Arabic digits, the bottom one the hamza/madda variants.
var LetterRows = [][]string{
	{"١", "٢", "٣", "٤", "٥", "٦", "٧", "٨", "٩", "٠"},
	{"ض", "ص", "ث", "ق", "ف", "غ", "ع", "ه", "خ", "ح", "ج"},
	{"ش", "س", "ي", "ب", "ل", "ا", "ت", "ن", "م", "ك", "ة"},
	{"ئ", "ء", "ؤ", "ر", "ى", "و", "ز", "ظ", "ط", "ذ", "د"},
	{"آ", "أ", "إ", "لا"},
}

// Diacritic is a tashkeel mark together with the tatweel-carrier form used to
// render it on a key cap.
type Diacritic struct {
	Mark    string `json:"mark"`
	Display string `json:"display"`
}

// Diacritics lists the eight tashkeel marks in keyboard order.
var Diacritics = []Diacritic{
	{"َ", "ـَ"}, // fatha
	{"ِ", "ـِ"}, // kasra
	{"ُ", "ـُ"}, // damma
	{"ْ", "ـْ"}, // sukun
	{"ّ", "ـّ"}, // shadda
	{"ً", "ـً"}, // tanwin fatha
	{"ٍ", "ـٍ"}, // tanwin kasra
	{"ٌ", "ـٌ"}, // tanwin damma
}

// Layout is the JSON shape of GET /api/keyboard.
type Layout struct {
	Rows       [][]string  `json:"rows"`
	Diacritics []Diacritic `json:"diacritics"`
}

// DefaultLayout returns the layout served to clients.
func DefaultLayout() Layout {
	return Layout{Rows: LetterRows, Diacritics: Diacritics}
}
