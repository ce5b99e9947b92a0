package term

import (
	"bufio"
	"fmt"
	"image/color"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/vcsdiff"
)

// Layout constants, grounded on the reference termion drawer: a 3-digit
// line number, one column reserved for the diff marker, and one space
// before the text starts. reservedCols is what TermSize subtracts from
// the raw terminal width; statusBarRows is what it subtracts from height.
const (
	lineNumberWidth = 3
	reservedCols    = lineNumberWidth + 2
	statusBarRows   = 1
)

// ANSI drives a real terminal in raw mode via golang.org/x/term, writing
// hand-built VT220-ish escape sequences rather than depending on a full
// TUI framework — this keeps input reading, resize detection, and
// drawing as three independent concerns, which is what the concurrency
// model requires.
type ANSI struct {
	in       *os.File
	out      *os.File
	reader   *bufio.Reader
	oldState *xterm.State
}

// NewANSI puts in into raw mode and returns a ready-to-use backend. The
// caller must call Terminate before the process exits to restore cooked
// mode.
func NewANSI(in, out *os.File) (*ANSI, error) {
	oldState, err := xterm.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("term: enabling raw mode: %w", err)
	}
	a := &ANSI{in: in, out: out, reader: bufio.NewReader(in), oldState: oldState}
	fmt.Fprint(a.out, "\x1b[2J\x1b[3J\x1b[H")
	return a, nil
}

// TermSize implements Backend.
func (a *ANSI) TermSize() (width, height int) {
	w, h, err := xterm.GetSize(int(a.out.Fd()))
	if err != nil {
		return 0, 0
	}
	width = w - reservedCols
	height = h - statusBarRows
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// MoveCursor implements Backend. x, y are window coordinates; the gutter
// offset and termion's 1-based Goto are both folded in here.
func (a *ANSI) MoveCursor(x, y int) {
	fmt.Fprintf(a.out, "\x1b[%d;%dH", y+1, x+reservedCols+1)
}

// DrawLines implements Backend.
func (a *ANSI) DrawLines(startLine int, rows map[int][]buffer.Glyph) {
	var sb strings.Builder
	for row, glyphs := range rows {
		writeLine(&sb, row, startLine, glyphs)
	}
	fmt.Fprint(a.out, sb.String())
}

func writeLine(sb *strings.Builder, row, startLine int, glyphs []buffer.Glyph) {
	fmt.Fprintf(sb, "\x1b[%d;1H", row+1)
	fmt.Fprintf(sb, "\x1b[34m%3d\x1b[39m", row+startLine+1)
	sb.WriteString("\x1b[1C ") // skip the diff-marker column, then the separating space
	writeGlyphs(sb, glyphs)
	sb.WriteString("\x1b[K")
}

func writeGlyphs(sb *strings.Builder, glyphs []buffer.Glyph) {
	current := color.RGBA{}
	haveCurrent := false
	for _, g := range glyphs {
		if !haveCurrent || g.Fg != current {
			fmt.Fprintf(sb, "\x1b[38;2;%d;%d;%dm", g.Fg.R, g.Fg.G, g.Fg.B)
			current, haveCurrent = g.Fg, true
		}
		sb.WriteRune(g.Char)
	}
	if haveCurrent {
		sb.WriteString("\x1b[39m")
	}
}

// DrawStatusBar implements Backend. Layout mirrors the reference drawer:
// left-aligned mode token, centered file name, right-aligned ref name.
// All three modes ("NORMAL"/"INSERT"/"RENAME") share the same length, so
// the centering math only needs one constant for it.
func (a *ANSI) DrawStatusBar(status StatusInfo) {
	width, rows, err := xterm.GetSize(int(a.out.Fd()))
	if err != nil {
		return
	}
	const modeWidth = len("NORMAL")

	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[%d;1H", rows)
	sb.WriteString("\x1b[47m\x1b[30m") // white background, black text
	sb.WriteString(" ")
	sb.WriteString(status.Mode)

	leftGap := nonNegative((width-len(status.FileName))/2 - modeWidth - 1)
	sb.WriteString(strings.Repeat(" ", leftGap))
	sb.WriteString(status.FileName)

	if status.HasRef {
		rightGap := nonNegative(width - modeWidth - len(status.FileName) - leftGap - 2 - len(status.Ref))
		sb.WriteString(strings.Repeat(" ", rightGap))
		sb.WriteString(status.Ref)
	} else {
		rightGap := nonNegative(width - modeWidth - len(status.FileName) - 2 - leftGap)
		sb.WriteString(strings.Repeat(" ", rightGap))
	}
	sb.WriteString(" \x1b[0m")
	fmt.Fprint(a.out, sb.String())
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// DrawDiffMarkers implements Backend.
func (a *ANSI) DrawDiffMarkers(startLine, height int, diff vcsdiff.DiffMap) {
	var sb strings.Builder
	for row := 0; row < height; row++ {
		fmt.Fprintf(&sb, "\x1b[%d;%dH", row+1, lineNumberWidth+1)
		kind, marked := diff[row+startLine]
		if !marked {
			sb.WriteString(" ")
			continue
		}
		switch kind {
		case vcsdiff.Added:
			sb.WriteString("\x1b[32m▐\x1b[39m")
		case vcsdiff.Deleted:
			sb.WriteString("\x1b[31m▗\x1b[39m")
		case vcsdiff.Changed:
			sb.WriteString("\x1b[33m▐\x1b[39m")
		}
	}
	fmt.Fprint(a.out, sb.String())
}

// Draw implements Backend: a full redraw in the order status bar, every
// line, diff markers, cursor.
func (a *ANSI) Draw(startLine int, rows map[int][]buffer.Glyph, height int, diff vcsdiff.DiffMap, status StatusInfo, cursorX, cursorY int) {
	fmt.Fprint(a.out, "\x1b[?25l")
	a.DrawStatusBar(status)
	a.DrawLines(startLine, rows)
	a.DrawDiffMarkers(startLine, height, diff)
	fmt.Fprint(a.out, "\x1b[?25h")
	a.MoveCursor(cursorX, cursorY)
}

// Terminate implements Backend: clear screen and scrollback, home the
// cursor, reset colors, restore cooked mode, show the cursor.
func (a *ANSI) Terminate() {
	fmt.Fprint(a.out, "\x1b[2J\x1b[3J\x1b[H\x1b[39m\x1b[49m")
	_ = xterm.Restore(int(a.in.Fd()), a.oldState)
	fmt.Fprint(a.out, "\x1b[?25h")
}

// ReadKey implements Backend. It blocks for the next key. An ESC is
// decoded as part of a CSI sequence only when the rest of that sequence is
// already buffered, so a lone Esc press is reported at once instead of
// waiting for (and consuming) the next key.
func (a *ANSI) ReadKey() (command.Key, error) {
	b0, err := a.reader.ReadByte()
	if err != nil {
		return command.Key{}, err
	}

	if b0 == '\x1b' {
		next, err := a.reader.Peek(a.reader.Buffered())
		if err != nil || len(next) < 2 || next[0] != '[' {
			return command.Key{Kind: command.KeyEsc}, nil
		}
		key, _ := command.FromANSI([]byte{b0, next[0], next[1]})
		_, _ = a.reader.Discard(2)
		return key, nil
	}

	buf := []byte{b0}
	for i := 0; i < utf8ContinuationBytes(b0); i++ {
		b, err := a.reader.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, b)
	}
	key, _ := command.FromANSI(buf)
	return key, nil
}

func utf8ContinuationBytes(lead byte) int {
	switch {
	case lead>>5 == 0b110:
		return 1
	case lead>>4 == 0b1110:
		return 2
	case lead>>3 == 0b11110:
		return 3
	default:
		return 0
	}
}

