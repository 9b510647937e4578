// Package ui holds the pieces of client state the native shell keeps on the
// Go side: overlay stacking and the locally persisted theme preference.
package ui

// Overlay identifies one of the closable surfaces.
type Overlay string

const (
	OverlayKeyboard Overlay = "keyboard"
	OverlayWord     Overlay = "word"
	OverlayQuiz     Overlay = "quiz"
	OverlaySettings Overlay = "settings"
	OverlayImport   Overlay = "import"
)

// escapeOrder is the fixed priority Escape walks: only the first open overlay
// is closed per key press.
var escapeOrder = []Overlay{
	OverlayKeyboard,
	OverlayWord,
	OverlayQuiz,
	OverlaySettings,
	OverlayImport,
}

// Overlays tracks which surfaces are currently open.
type Overlays struct {
	open map[Overlay]bool
}

// NewOverlays returns an empty overlay tracker.
func NewOverlays() *Overlays {
	return &Overlays{open: make(map[Overlay]bool)}
}

// Open marks an overlay as shown.
func (o *Overlays) Open(ov Overlay) {
	o.open[ov] = true
}

// Close marks an overlay as hidden.
func (o *Overlays) Close(ov Overlay) {
	delete(o.open, ov)
}

// IsOpen reports whether the overlay is shown.
func (o *Overlays) IsOpen(ov Overlay) bool {
	return o.open[ov]
}

// Escape closes the first open overlay in priority order and returns it.
// With nothing open it returns ("", false).
func (o *Overlays) Escape() (Overlay, bool) {
	for _, ov := range escapeOrder {
		if o.open[ov] {
			delete(o.open, ov)
			return ov, true
		}
	}
	return "", false
}
