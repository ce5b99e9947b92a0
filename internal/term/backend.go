// Package term implements the terminal back-end: raw-mode input, ANSI
// escape-sequence output, and the render loop and resize source that
// drive it. The back-end holds no editor state of its own; it only knows
// how to draw what it is told and how to report terminal size and key
// presses.
package term

import (
	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/vcsdiff"
)

// StatusInfo is the status bar's content: mode token (left), file name
// (center), and VCS ref (right, when present).
type StatusInfo struct {
	Mode     string
	FileName string
	Ref      string
	HasRef   bool
}

// Backend is the narrow drawing interface the render loop depends on. Its
// wire protocol is free (ANSI escape codes in this implementation) as
// long as it honors these operations.
type Backend interface {
	// TermSize returns the editable area: terminal size minus the status
	// bar row and the gutter columns.
	TermSize() (width, height int)

	// MoveCursor positions the cursor in window coordinates.
	MoveCursor(x, y int)

	// DrawLines renders rows (window row index -> glyphs) plus their line
	// numbers, where startLine is the buffer line shown at window row 0.
	DrawLines(startLine int, rows map[int][]buffer.Glyph)

	// DrawStatusBar renders the mode/file/ref status line.
	DrawStatusBar(status StatusInfo)

	// DrawDiffMarkers paints the gutter's diff-marker column for every
	// row in [0, height), where startLine is the buffer line at row 0.
	DrawDiffMarkers(startLine, height int, diff vcsdiff.DiffMap)

	// Draw performs a full redraw: status bar, every line, then diff
	// markers, finishing with the cursor repositioned.
	Draw(startLine int, rows map[int][]buffer.Glyph, height int, diff vcsdiff.DiffMap, status StatusInfo, cursorX, cursorY int)

	// Terminate restores cooked mode, shows the cursor, resets colors,
	// and clears scrollback.
	Terminate()

	// ReadKey blocks for the next key press and decodes it.
	ReadKey() (command.Key, error)
}
