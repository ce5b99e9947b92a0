// Command giga is a modal terminal text editor. The three-thread
// architecture that drives it is wired here (runInput, pollVCS) together
// with internal/term's RenderLoop and ResizeSource.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/florentinl/giga/internal/applog"
	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/config"
	"github.com/florentinl/giga/internal/editor"
	"github.com/florentinl/giga/internal/highlight"
	"github.com/florentinl/giga/internal/term"
	"github.com/florentinl/giga/internal/vcsdiff"
	"github.com/florentinl/giga/internal/view"
)

func main() {
	os.Exit(run())
}

func run() int {
	path, ok := parseArgs(os.Args[1:])
	if !ok {
		fmt.Fprintf(os.Stderr, "Usage: %s [file]\n", filepath.Base(os.Args[0]))
		return 1
	}

	cfg := config.New()
	logger, closeLog, err := applog.New(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "giga: opening log file: %v\n", err)
		return 1
	}
	defer closeLog()

	text, fileDir, fileName := loadFile(path)
	ext := extensionOf(fileName)
	hl := highlight.NewChroma(cfg.Theme)
	buf := buffer.NewFromText(text, ext, hl)

	backend, err := term.NewANSI(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "giga: %v\n", err)
		return 1
	}

	width, height := backend.TermSize()
	v := view.New(buf, view.WithSize(width, height))

	vcs := vcsdiff.NewGit()
	ed := editor.New(v, fileDir, fileName, editor.WithVCS(vcs))

	ref, hasRef := vcs.RefName(fileDir)
	ed.SetGitRef(ref, hasRef)

	ch := make(chan command.RefreshIntent, 256)
	renderDone := make(chan struct{})

	adapter := &renderState{ed: ed}
	renderLoop := term.NewRenderLoop(backend, adapter)
	go func() {
		renderLoop.Run(ch)
		close(renderDone)
	}()

	resize := term.NewResizeSource()
	go resize.Run(ch)
	defer resize.Stop()

	if hasRef {
		go pollVCS(ed, ch, cfg.VCSPollInterval)
	}

	ch <- command.RefreshIntent{Kind: command.AllLines}
	runInput(ed, backend, ch, logger)

	<-renderDone
	return 0
}

// parseArgs implements the CLI surface of spec §6: zero arguments opens
// ./Newfile, one argument opens that path, and anything else is a usage
// error.
func parseArgs(args []string) (path string, ok bool) {
	switch len(args) {
	case 0:
		return "Newfile", true
	case 1:
		return args[0], true
	default:
		return "", false
	}
}

// loadFile reads path's contents. A read failure (including a file that
// does not yet exist) falls back to an empty buffer named after path, per
// spec §7's best-effort open policy.
func loadFile(path string) (text, dir, name string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	dir, name = filepath.Dir(abs), filepath.Base(abs)

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", dir, name
	}
	return string(data), dir, name
}

func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return ext[1:]
}

// runInput is the input thread of spec §5: it blocks on ReadKey, decodes
// against the editor's current mode, executes the resulting command, and
// posts the refresh intent. It returns once Terminate has reached the
// render thread or reading the backend fails.
//
// The channel is never closed here: the VCS poll and resize threads are
// daemons relative to the process (spec §5's cancellation model), and the
// process exits right after this function returns, which tears them down
// without any cooperative shutdown. Closing the channel while they might
// still send on it would panic.
func runInput(ed *editor.Editor, backend term.Backend, ch chan<- command.RefreshIntent, logger *charmlog.Logger) {
	for {
		key, err := backend.ReadKey()
		if err != nil {
			ch <- command.RefreshIntent{Kind: command.Terminate}
			return
		}

		cmd := command.Decode(key, ed.Mode())
		intent := ed.Execute(cmd)
		logger.Debugf("key=%v cmd=%v intent=%v", key, cmd.Kind, intent.Kind)
		ch <- intent
		if intent.Kind == command.Terminate {
			return
		}
	}
}

// pollVCS is the VCS poll thread of spec §5: snapshot the working text,
// ask the adapter for a fresh DiffMap, and on change swap it in and post
// GitIndicators. It sleeps interval between iterations and never calls
// back into the editor beyond SnapshotText/SetDiff.
func pollVCS(ed *editor.Editor, ch chan<- command.RefreshIntent, interval time.Duration) {
	for {
		time.Sleep(interval)
		text := ed.SnapshotText()
		next, ok := ed.VCS().Diff(text, ed.FileDir(), ed.FileName())
		if !ok {
			next = vcsdiff.DiffMap{}
		}
		if diffEqual(ed.Diff(), next) {
			continue
		}
		ed.SetDiff(next)
		ch <- command.RefreshIntent{Kind: command.GitIndicators}
	}
}

func diffEqual(a, b vcsdiff.DiffMap) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// renderState adapts an *editor.Editor to term.RenderState.
type renderState struct {
	ed *editor.Editor
}

func (r *renderState) Snapshot() (width, height, cursorX, cursorY, startLine int, rows map[int][]buffer.Glyph) {
	snap := r.ed.SnapshotView()
	rows = make(map[int][]buffer.Glyph, len(snap.Rows))
	for i, line := range snap.Rows {
		rows[i] = line
	}
	return snap.Width, snap.Height, snap.CursorX, snap.CursorY, snap.StartLine, rows
}

func (r *renderState) Status() term.StatusInfo {
	mode, fileName, ref, hasRef := r.ed.StatusInfo()
	return term.StatusInfo{Mode: mode, FileName: fileName, Ref: ref, HasRef: hasRef}
}

func (r *renderState) DiffMap() vcsdiff.DiffMap {
	return r.ed.Diff()
}

func (r *renderState) Resize(width, height int) {
	r.ed.Resize(width, height)
}
