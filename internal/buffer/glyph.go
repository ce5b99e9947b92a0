// Package buffer implements the editable, line-addressable text store at
// the core of the editor. A TextBuffer is total: every operation is
// infallible, with out-of-range arguments silently clamped or dropped
// rather than returning an error.
package buffer

import "image/color"

// Glyph is a single rendered character: the rune itself plus the
// foreground color assigned to it by the attached Highlighter. Glyphs are
// immutable once produced; a new one replaces the old on every edit.
type Glyph struct {
	Char rune
	Fg   color.RGBA
}

// DefaultColor is the foreground used for text that has not (yet) passed
// through a Highlighter, or when none is attached. The value matches the
// light-gray default foreground of a standard ANSI palette.
var DefaultColor = color.RGBA{R: 229, G: 229, B: 229, A: 255}

// NewGlyph builds a Glyph with the default foreground.
func NewGlyph(c rune) Glyph {
	return Glyph{Char: c, Fg: DefaultColor}
}

func glyphsFromString(s string) []Glyph {
	glyphs := make([]Glyph, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, NewGlyph(r))
	}
	return glyphs
}
