// Package editor holds the View, the current Mode, and the last-known
// VCS diff and executes Commands against them. Its accessors are safe to
// call from the input, render and VCS-poll threads, which cmd/giga starts.
package editor

import (
	"os"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/vcsdiff"
	"github.com/florentinl/giga/internal/view"
)

// Editor holds the editable state of a single open file. Every field that
// is shared across the input, render, and VCS-poll threads is guarded by
// its own lock; locks are always acquired in the order
// view → diff → mode → fileName to avoid deadlock, and no critical
// section spans I/O or a channel send.
type Editor struct {
	viewMu sync.RWMutex
	view   *view.View

	diffMu sync.RWMutex
	diff   vcsdiff.DiffMap

	modeMu sync.RWMutex
	mode   command.Mode

	fileNameMu sync.RWMutex
	fileName   string

	// fileDir is the VCS/save working directory; it never changes after
	// construction.
	fileDir string

	// gitRef is the branch/tag/commit discovered at startup. Empty and
	// unused if hasGitRef is false.
	gitRef    string
	hasGitRef bool

	vcs vcsdiff.Adapter
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithVCS attaches the VCS adapter that VCS returns to the poll thread.
// Defaults to vcsdiff.Noop.
func WithVCS(a vcsdiff.Adapter) Option {
	return func(e *Editor) { e.vcs = a }
}

// New builds an Editor over v, editing fileName inside fileDir. Mode
// starts Normal, as required by the spec.
func New(v *view.View, fileDir, fileName string, opts ...Option) *Editor {
	e := &Editor{
		view:     v,
		mode:     command.ModeNormal,
		fileDir:  fileDir,
		fileName: fileName,
		vcs:      vcsdiff.Noop{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current mode under the mode lock, for the input
// thread's key-decode step.
func (e *Editor) Mode() command.Mode {
	e.modeMu.RLock()
	defer e.modeMu.RUnlock()
	return e.mode
}

// FileName returns the current (possibly renamed) file name.
func (e *Editor) FileName() string {
	e.fileNameMu.RLock()
	defer e.fileNameMu.RUnlock()
	return e.fileName
}

// FileDir returns the immutable working directory.
func (e *Editor) FileDir() string {
	return e.fileDir
}

// GitRef returns the branch/tag/commit discovered at startup, if any.
func (e *Editor) GitRef() (string, bool) {
	return e.gitRef, e.hasGitRef
}

// SetGitRef records the ref discovered at startup. Called once before the
// VCS poll thread starts; never mutated afterward.
func (e *Editor) SetGitRef(ref string, ok bool) {
	e.gitRef, e.hasGitRef = ref, ok
}

// VCS returns the attached adapter.
func (e *Editor) VCS() vcsdiff.Adapter {
	return e.vcs
}

// SnapshotText returns the buffer's full text under the view read lock,
// for the VCS poll thread or for Save.
func (e *Editor) SnapshotText() string {
	e.viewMu.RLock()
	defer e.viewMu.RUnlock()
	return e.view.DumpText()
}

// Diff returns the last-known DiffMap.
func (e *Editor) Diff() vcsdiff.DiffMap {
	e.diffMu.RLock()
	defer e.diffMu.RUnlock()
	return e.diff
}

// SetDiff swaps in a freshly computed DiffMap wholesale.
func (e *Editor) SetDiff(d vcsdiff.DiffMap) {
	e.diffMu.Lock()
	e.diff = d
	e.diffMu.Unlock()
}

// ViewSnapshot is a render-ready copy of the viewport, gathered under a
// single brief read lock so the render thread never holds the view lock
// while calling into the terminal back-end.
type ViewSnapshot struct {
	Width, Height    int
	CursorX, CursorY int
	StartLine        int
	Rows             [][]buffer.Glyph
}

// SnapshotView gathers a ViewSnapshot under the view read lock. StartLine
// is the absolute buffer line shown at window row 0, which callers must
// thread through to the back-end so gutter numbers and DiffMap lookups
// (both keyed by absolute line) land on the right row once the viewport
// has scrolled.
func (e *Editor) SnapshotView() ViewSnapshot {
	e.viewMu.RLock()
	defer e.viewMu.RUnlock()
	w, h := e.view.Size()
	snap := ViewSnapshot{Width: w, Height: h}
	snap.CursorX, snap.CursorY = e.view.Cursor()
	_, snap.StartLine = e.view.Origin()
	snap.Rows = make([][]buffer.Glyph, h)
	for i := 0; i < h; i++ {
		snap.Rows[i] = e.view.Glyphs(i)
	}
	return snap
}

// Resize updates the viewport dimensions under the view write lock.
func (e *Editor) Resize(width, height int) {
	e.viewMu.Lock()
	e.view.SetSize(width, height)
	e.viewMu.Unlock()
}

// StatusInfo gathers the fields the status bar renders.
func (e *Editor) StatusInfo() (modeName, fileName, ref string, hasRef bool) {
	ref, hasRef = e.GitRef()
	return e.Mode().String(), e.FileName(), ref, hasRef
}

// filePath joins the immutable directory with the current file name.
func (e *Editor) filePath() string {
	return filepath.Join(e.fileDir, e.FileName())
}

// save writes the buffer atomically via a .tmp file followed by a rename.
// Failures are silently swallowed, per the spec's best-effort save policy.
func (e *Editor) save() {
	text := e.SnapshotText()
	path := e.filePath()
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return
	}
	_ = os.Rename(tmp, path)
}

// renamePop removes the last rune of the file name, if any.
func (e *Editor) renamePop() {
	e.fileNameMu.Lock()
	defer e.fileNameMu.Unlock()
	if e.fileName == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.fileName)
	e.fileName = e.fileName[:len(e.fileName)-size]
}

// renameAppend appends c to the file name, substituting '_' for space and
// apostrophe so renamed files stay shell- and filesystem-friendly.
func (e *Editor) renameAppend(c rune) {
	if c == ' ' || c == '\'' {
		c = '_'
	}
	e.fileNameMu.Lock()
	e.fileName += string(c)
	e.fileNameMu.Unlock()
}

// toggleMode toggles Normal<->Insert; from Rename it always returns to
// Normal.
func (e *Editor) toggleMode() {
	e.modeMu.Lock()
	defer e.modeMu.Unlock()
	switch e.mode {
	case command.ModeInsert, command.ModeRename:
		e.mode = command.ModeNormal
	default:
		e.mode = command.ModeInsert
	}
}

// toggleRename toggles Normal<->Rename.
func (e *Editor) toggleRename() {
	e.modeMu.Lock()
	defer e.modeMu.Unlock()
	if e.mode == command.ModeRename {
		e.mode = command.ModeNormal
		return
	}
	e.mode = command.ModeRename
}
