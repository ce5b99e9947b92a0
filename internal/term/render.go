package term

import (
	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/vcsdiff"
)

// RenderState is the render thread's view of the editor: everything it
// needs to answer a RefreshIntent without reaching into the editor's
// locks directly. cmd/giga adapts an *editor.Editor to this interface.
type RenderState interface {
	// Snapshot returns the current viewport: size, cursor, the absolute
	// buffer line shown at window row 0, and the glyphs for every window
	// row. startLine must be threaded through to the back-end so gutter
	// numbers and DiffMap lookups, both keyed by absolute line, land on
	// the right row once the viewport has scrolled.
	Snapshot() (width, height, cursorX, cursorY, startLine int, rows map[int][]buffer.Glyph)
	// Status returns the current status bar content.
	Status() StatusInfo
	// DiffMap returns the last-known VCS diff.
	DiffMap() vcsdiff.DiffMap
	// Resize updates the viewport to (width, height).
	Resize(width, height int)
}

// RenderLoop is the render thread of the three-thread model: it blocks on
// a channel and, for each RefreshIntent, performs the corresponding
// back-end call against a RenderState snapshot. It never mutates editor
// state itself beyond the Resize call a Resize intent requires.
type RenderLoop struct {
	backend Backend
	state   RenderState
}

// NewRenderLoop builds a RenderLoop that draws onto backend using state.
func NewRenderLoop(backend Backend, state RenderState) *RenderLoop {
	return &RenderLoop{backend: backend, state: state}
}

// Run drains ch until a Terminate intent arrives or the channel is
// closed, calling backend.Terminate before returning either way. This is
// the render thread's entire body.
func (r *RenderLoop) Run(ch <-chan command.RefreshIntent) {
	for intent := range ch {
		if intent.Kind == command.Terminate {
			r.backend.Terminate()
			return
		}
		r.apply(intent)
	}
	r.backend.Terminate()
}

func (r *RenderLoop) apply(intent command.RefreshIntent) {
	switch intent.Kind {
	case command.None:
		return

	case command.CursorPos:
		_, _, cx, cy, _, _ := r.state.Snapshot()
		r.backend.MoveCursor(cx, cy)

	case command.StatusBar:
		r.backend.DrawStatusBar(r.state.Status())

	case command.GitIndicators:
		_, height, cx, cy, startLine, _ := r.state.Snapshot()
		r.backend.DrawDiffMarkers(startLine, height, r.state.DiffMap())
		r.backend.MoveCursor(cx, cy)

	case command.Lines:
		_, _, cx, cy, startLine, rows := r.state.Snapshot()
		selected := make(map[int][]buffer.Glyph, len(intent.Lines))
		for row := range intent.Lines {
			if line, ok := rows[row]; ok {
				selected[row] = line
			}
		}
		r.backend.DrawLines(startLine, selected)
		r.backend.MoveCursor(cx, cy)

	case command.AllLines:
		r.redrawAll()

	case command.Resize:
		w, h := r.backend.TermSize()
		r.state.Resize(w, h)
		r.redrawAll()
	}
}

func (r *RenderLoop) redrawAll() {
	_, height, cx, cy, startLine, rows := r.state.Snapshot()
	r.backend.Draw(startLine, rows, height, r.state.DiffMap(), r.state.Status(), cx, cy)
}
