// Package view implements the two-dimensional window over a text buffer:
// viewport position, cursor arithmetic, and the scroll-on-overflow
// invariants that keep the cursor inside the visible window after every
// navigation or edit.
package view

import (
	"math"
	"strings"

	"github.com/florentinl/giga/internal/buffer"
)

// Max is the saturating sentinel used by callers to mean "as far as
// possible in this direction" — the idiomatic way to express
// beginning/end-of-line navigation without a dedicated command variant.
const Max = math.MaxInt

// View owns a TextBuffer and the viewport state layered over it: the
// top-left corner of the visible window and the cursor's position inside
// it. cursorX and cursorY are always window-relative; startLine/startCol
// convert them to absolute buffer coordinates.
type View struct {
	buf    *buffer.TextBuffer
	width  int
	height int

	startLine int
	startCol  int
	cursorX   int
	cursorY   int
}

// Option configures a View at construction time.
type Option func(*View)

// WithSize sets the initial viewport dimensions in window coordinates.
func WithSize(width, height int) Option {
	return func(v *View) {
		v.width = width
		v.height = height
	}
}

// New wraps buf in a View. Dimensions default to 0x0 (cursor pinned at the
// origin, no scrolling) unless overridden with WithSize.
func New(buf *buffer.TextBuffer, opts ...Option) *View {
	v := &View{buf: buf}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Size returns the current viewport dimensions.
func (v *View) Size() (width, height int) {
	return v.width, v.height
}

// Cursor returns the window-relative cursor position.
func (v *View) Cursor() (x, y int) {
	return v.cursorX, v.cursorY
}

// Origin returns the absolute buffer coordinates of the viewport's
// top-left corner.
func (v *View) Origin() (startCol, startLine int) {
	return v.startCol, v.startLine
}

// absolute returns the cursor's position in buffer coordinates.
func (v *View) absolute() (x, y int) {
	return v.startCol + v.cursorX, v.startLine + v.cursorY
}

// Line returns the plain-text slice of window row i, i.e. buffer line
// i+startLine from startCol (inclusive) to min(startCol+width, line
// length) (exclusive). Returns "" if i is out of [0,height) or the
// underlying line is shorter than startCol.
func (v *View) Line(i int) string {
	glyphs := v.lineGlyphs(i)
	var sb strings.Builder
	for _, g := range glyphs {
		sb.WriteRune(g.Char)
	}
	return sb.String()
}

// Glyphs returns the colored glyphs of window row i, for rendering.
func (v *View) Glyphs(i int) []buffer.Glyph {
	return v.lineGlyphs(i)
}

func (v *View) lineGlyphs(i int) []buffer.Glyph {
	if i < 0 || i >= v.height {
		return nil
	}
	line, ok := v.buf.Line(v.startLine + i)
	if !ok || v.startCol >= len(line) {
		return nil
	}
	end := v.startCol + v.width
	if end > len(line) {
		end = len(line)
	}
	return line[v.startCol:end]
}

// DumpText returns the buffer's full text, for saving.
func (v *View) DumpText() string {
	return v.buf.ToText()
}

// SetSize updates the viewport dimensions, e.g. on terminal resize, and
// re-clamps the cursor and scroll offsets to the new window.
func (v *View) SetSize(width, height int) {
	v.width, v.height = width, height
	v.Navigate(0, 0)
}

// Navigate moves the cursor by (dx, dy) in absolute buffer terms, then
// reduces the result to window coordinates by the minimum-scroll rule:
// the viewport only moves as far as needed to keep the target on screen.
// Returns true iff the viewport's origin changed.
func (v *View) Navigate(dx, dy int) bool {
	if v.height == 0 || v.width == 0 {
		v.cursorX, v.cursorY = 0, 0
		return false
	}

	ax, ay := v.absolute()
	targetY := clamp(satAdd(ay, dy), 0, v.buf.Len()-1)
	targetX := clamp(satAdd(ax, dx), 0, v.buf.LineLen(targetY))

	prevStartLine, prevStartCol := v.startLine, v.startCol

	switch {
	case targetY < v.startLine:
		v.startLine = targetY
	case targetY >= v.startLine+v.height:
		v.startLine = targetY - v.height + 1
	}
	if maxStart := v.buf.Len() - v.height; v.startLine > maxStart {
		v.startLine = max(0, maxStart)
	}
	if v.startLine < 0 {
		v.startLine = 0
	}

	switch {
	case targetX < v.startCol:
		v.startCol = targetX
	case targetX >= v.startCol+v.width:
		v.startCol = targetX - v.width + 1
	}
	if v.startCol < 0 {
		v.startCol = 0
	}

	v.cursorY = targetY - v.startLine
	v.cursorX = targetX - v.startCol

	return v.startLine != prevStartLine || v.startCol != prevStartCol
}

// Insert places c at the absolute cursor position, then advances the
// cursor by one column.
func (v *View) Insert(c rune) bool {
	ax, ay := v.absolute()
	v.buf.Insert(ay, ax, c)
	return v.Navigate(1, 0)
}

// InsertNewLine splits the current line at the cursor and moves to column
// 0 of the line that follows.
func (v *View) InsertNewLine() bool {
	ax, ay := v.absolute()
	v.buf.SplitLine(ay, ax)
	return v.Navigate(-ax, 1)
}

// Delete performs a backspace at the absolute cursor. Joining onto the
// previous line positions the cursor at that line's former end.
func (v *View) Delete() bool {
	ax, ay := v.absolute()
	prevLen := 0
	if ay > 0 {
		prevLen = v.buf.LineLen(ay - 1)
	}
	v.buf.Delete(ay, ax)
	if ax > 0 {
		return v.Navigate(-1, 0)
	}
	return v.Navigate(prevLen, -1)
}

// DeleteLine removes the cursor's current line and moves the cursor to
// column 0 of the line that takes its place.
func (v *View) DeleteLine() bool {
	ax, ay := v.absolute()
	v.buf.DeleteLine(ay)
	return v.Navigate(-ax, 0)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// satAdd adds a and b without wrapping past the platform int range, so
// that the ±Max "go to start/end" sentinels saturate instead of
// overflowing. The check must happen before the add: on a 64-bit
// platform int64(a)+int64(b) is the same width as int and wraps exactly
// when int would, so it cannot detect the overflow after the fact.
func satAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	if b < 0 && a < math.MinInt-b {
		return math.MinInt
	}
	return a + b
}

