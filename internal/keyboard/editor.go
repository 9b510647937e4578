package keyboard

// Editor is the textual content and caret of the field the keyboard types
// into. Positions are rune offsets; SelStart == SelEnd is a collapsed caret.
type Editor struct {
	Text     string
	SelStart int
	SelEnd   int
}

// NewEditor returns an editor over the given text with the caret at its end.
func NewEditor(text string) *Editor {
	n := len([]rune(text))
	return &Editor{Text: text, SelStart: n, SelEnd: n}
}

// clamp normalizes the selection into [0, len] with start <= end.
func (e *Editor) clamp() (start, end int, runes []rune) {
	runes = []rune(e.Text)
	start, end = e.SelStart, e.SelEnd
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start > len(runes) {
		start = len(runes)
	}
	return start, end, runes
}

// Insert splices s at the current selection, replacing any selected range,
// and leaves a collapsed caret just after the inserted text.
func (e *Editor) Insert(s string) {
	start, end, runes := e.clamp()
	ins := []rune(s)
	out := make([]rune, 0, len(runes)-(end-start)+len(ins))
	out = append(out, runes[:start]...)
	out = append(out, ins...)
	out = append(out, runes[end:]...)
	e.Text = string(out)
	e.SelStart = start + len(ins)
	e.SelEnd = e.SelStart
}

// Backspace removes the rune before a collapsed caret, or the whole selected
// range, leaving the caret at the deletion point. A caret at position zero is
// a no-op.
func (e *Editor) Backspace() {
	start, end, runes := e.clamp()
	if start == end {
		if start == 0 {
			e.SelStart, e.SelEnd = start, end
			return
		}
		start--
	}
	out := make([]rune, 0, len(runes)-(end-start))
	out = append(out, runes[:start]...)
	out = append(out, runes[end:]...)
	e.Text = string(out)
	e.SelStart = start
	e.SelEnd = start
}

// Panel tracks which field the shared keyboard overlay types into. At most
// one target is active at a time.
type Panel struct {
	active string
}

// Toggle requests the keyboard for the given field. Toggling the field that
// is already the active target hides the keyboard; toggling a different field
// switches the target without an explicit close. Returns whether the
// keyboard is visible afterwards.
func (p *Panel) Toggle(target string) bool {
	if p.active == target {
		p.active = ""
		return false
	}
	p.active = target
	return true
}

// Hide closes the keyboard and clears the active target.
func (p *Panel) Hide() {
	p.active = ""
}

// Active returns the current target field, or "" when hidden.
func (p *Panel) Active() string {
	return p.active
}

// Visible reports whether the keyboard overlay is shown.
func (p *Panel) Visible() bool {
	return p.active != ""
}
