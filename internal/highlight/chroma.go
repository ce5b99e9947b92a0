// Package highlight provides the syntax-highlighting engine invoked by the
// text buffer on every mutation. It maps a file extension and the buffer's
// full text to a per-line sequence of colored glyphs.
package highlight

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/florentinl/giga/internal/buffer"
)

// Chroma highlights text using the chroma lexer/style registry. It
// satisfies buffer.Highlighter.
type Chroma struct {
	theme *chroma.Style
}

// NewChroma builds a Chroma highlighter using the named chroma style. An
// unknown or empty name falls back to styles.Fallback.
func NewChroma(themeName string) *Chroma {
	theme := styles.Get(themeName)
	if theme == nil {
		theme = styles.Fallback
	}
	return &Chroma{theme: theme}
}

// Highlight tokenises text with the lexer matched against a synthetic
// "file.<ext>" name, falling back to the plain-text lexer when no
// extension-specific lexer is registered or tokenisation fails.
func (c *Chroma) Highlight(ext string, text string) [][]buffer.Glyph {
	lexer := lexers.Match("file." + ext)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return plainLines(text)
	}

	lines := [][]buffer.Glyph{{}}
	for token := iterator(); token != chroma.EOF; token = iterator() {
		fg := c.colorFor(token.Type)
		for _, r := range token.Value {
			if r == '\n' {
				lines = append(lines, []buffer.Glyph{})
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], buffer.Glyph{Char: r, Fg: fg})
		}
	}

	// Most lexers set EnsureNL and silently append a trailing newline
	// before tokenising, which would otherwise manifest as a spurious
	// extra empty line whenever text itself has no final LF.
	if !strings.HasSuffix(text, "\n") && len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (c *Chroma) colorFor(tt chroma.TokenType) color.RGBA {
	entry := c.theme.Get(tt)
	if !entry.Colour.IsSet() {
		return buffer.DefaultColor
	}
	return parseHex(entry.Colour.String())
}

func parseHex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return buffer.DefaultColor
	}
	r, errR := strconv.ParseUint(s[1:3], 16, 8)
	g, errG := strconv.ParseUint(s[3:5], 16, 8)
	b, errB := strconv.ParseUint(s[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return buffer.DefaultColor
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

func plainLines(text string) [][]buffer.Glyph {
	return buffer.NoopHighlighter{}.Highlight("", text)
}
