package buffer

import "strings"

// TextBuffer is an ordered sequence of lines, each an ordered sequence of
// Glyphs. A buffer always has at least one line; no line ever contains a
// newline glyph. Every mutator re-renders the full text through the
// attached Highlighter, so the stored glyphs never drift from the
// highlighter's view of the current content.
type TextBuffer struct {
	lines       [][]Glyph
	ext         string
	highlighter Highlighter
}

// NewEmpty returns a single-line, empty buffer with no highlighter attached.
func NewEmpty() *TextBuffer {
	return &TextBuffer{
		lines:       [][]Glyph{{}},
		highlighter: NoopHighlighter{},
	}
}

// NewFromText ingests s as the buffer's initial content. Every tab is
// replaced with four spaces before the text is split into lines and before
// the first highlight pass runs. ext is the file extension (without the
// leading dot) passed to hl; hl may be nil, in which case a NoopHighlighter
// is used.
func NewFromText(s string, ext string, hl Highlighter) *TextBuffer {
	if hl == nil {
		hl = NoopHighlighter{}
	}
	b := &TextBuffer{ext: ext, highlighter: hl}
	b.lines = hl.Highlight(ext, expandTabs(s))
	if len(b.lines) == 0 {
		b.lines = [][]Glyph{{}}
	}
	return b
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// Len returns the number of lines; always at least 1.
func (b *TextBuffer) Len() int {
	return len(b.lines)
}

// Line returns the glyphs of line i with no trailing newline glyph (lines
// never carry one). ok is false iff i is out of range.
func (b *TextBuffer) Line(i int) (line []Glyph, ok bool) {
	if i < 0 || i >= len(b.lines) {
		return nil, false
	}
	return b.lines[i], true
}

// LineLen returns the glyph count of line i, or 0 if i is out of range.
func (b *TextBuffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// Insert places c at column col of line. No-op if line is out of range or
// col is past the end of the line (one past the last glyph is the valid
// append position).
func (b *TextBuffer) Insert(line, col int, c rune) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	l := b.lines[line]
	if col < 0 || col > len(l) {
		return
	}
	l = append(l, Glyph{})
	copy(l[col+1:], l[col:])
	l[col] = NewGlyph(c)
	b.lines[line] = l
	b.rehighlight()
}

// Delete performs a backspace at (line, col): joins with the previous line
// when col is 0 and line > 0, removes the glyph immediately before col
// otherwise, and is a no-op at the very start of the buffer or out of
// range.
func (b *TextBuffer) Delete(line, col int) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	if col == 0 && line == 0 {
		return
	}
	if col == 0 && line > 0 {
		prev := b.lines[line-1]
		cur := b.lines[line]
		b.lines[line-1] = append(prev, cur...)
		b.lines = append(b.lines[:line], b.lines[line+1:]...)
		b.rehighlight()
		return
	}
	l := b.lines[line]
	if col < 0 || col > len(l) {
		return
	}
	b.lines[line] = append(l[:col-1], l[col:]...)
	b.rehighlight()
}

// SplitLine inserts a line break between col-1 and col of line, producing
// a new line immediately after it. No-op if line is out of range or col is
// past the end of the line.
func (b *TextBuffer) SplitLine(line, col int) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	l := b.lines[line]
	if col < 0 || col > len(l) {
		return
	}
	head := append([]Glyph{}, l[:col]...)
	tail := append([]Glyph{}, l[col:]...)

	b.lines[line] = head
	b.lines = append(b.lines, nil)
	copy(b.lines[line+2:], b.lines[line+1:])
	b.lines[line+1] = tail
	b.rehighlight()
}

// DeleteLine removes line entirely, or truncates it to empty if it is the
// buffer's sole line. No-op if line is out of range.
func (b *TextBuffer) DeleteLine(line int) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	if len(b.lines) == 1 {
		b.lines[0] = nil
		b.rehighlight()
		return
	}
	b.lines = append(b.lines[:line], b.lines[line+1:]...)
	b.rehighlight()
}

// ToText concatenates every line with LF separators. No trailing LF is
// added beyond what the line structure already implies: a buffer whose
// last line is empty (as produced by loading text that ended in LF)
// reproduces that trailing newline on the round trip.
func (b *TextBuffer) ToText() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range l {
			sb.WriteRune(g.Char)
		}
	}
	return sb.String()
}

func (b *TextBuffer) rehighlight() {
	b.lines = b.highlighter.Highlight(b.ext, b.ToText())
	if len(b.lines) == 0 {
		b.lines = [][]Glyph{{}}
	}
}
