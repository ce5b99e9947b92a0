package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/florentinl/giga/internal/buffer"
	"github.com/florentinl/giga/internal/command"
	"github.com/florentinl/giga/internal/vcsdiff"
	"github.com/florentinl/giga/internal/view"
)

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	b := buffer.NewFromText(text, "", nil)
	v := view.New(b, view.WithSize(10, 10))
	return New(v, t.TempDir(), "file.txt")
}

func TestExecuteQuitTerminates(t *testing.T) {
	e := newTestEditor(t, "hi")
	intent := e.Execute(command.CmdQuit)
	if intent.Kind != command.Terminate {
		t.Fatalf("Execute(Quit).Kind = %v, want Terminate", intent.Kind)
	}
}

func TestExecuteInsertReturnsLineIntent(t *testing.T) {
	e := newTestEditor(t, "hi")
	intent := e.Execute(command.NewInsert('x'))
	if intent.Kind != command.Lines {
		t.Fatalf("Execute(Insert).Kind = %v, want Lines", intent.Kind)
	}
	if _, ok := intent.Lines[0]; !ok {
		t.Fatalf("intent.Lines = %v, want {0}", intent.Lines)
	}
}

func TestExecuteDeleteLineReturnsAllLines(t *testing.T) {
	e := newTestEditor(t, "a\nb\n")
	intent := e.Execute(command.CmdDeleteLine)
	if intent.Kind != command.AllLines {
		t.Fatalf("Execute(DeleteLine).Kind = %v, want AllLines", intent.Kind)
	}
}

func TestExecuteBlockFoldsIntents(t *testing.T) {
	e := newTestEditor(t, "hi")
	block := command.NewBlock(command.NewMove(1, 0), command.CmdToggleMode)
	intent := e.Execute(block)
	// Move(1,0) -> CursorPos, ToggleMode -> StatusBar: dissimilar, folds to AllLines.
	if intent.Kind != command.AllLines {
		t.Fatalf("Execute(Block) = %v, want AllLines", intent.Kind)
	}
	if e.Mode() != command.ModeInsert {
		t.Fatalf("Mode() = %v, want Insert after ToggleMode", e.Mode())
	}
}

func TestToggleModeFromRenameGoesToNormal(t *testing.T) {
	e := newTestEditor(t, "hi")
	e.Execute(command.CmdToggleRename)
	if e.Mode() != command.ModeRename {
		t.Fatalf("Mode() = %v, want Rename", e.Mode())
	}
	e.Execute(command.CmdToggleMode)
	if e.Mode() != command.ModeNormal {
		t.Fatalf("Mode() = %v, want Normal after ToggleMode from Rename", e.Mode())
	}
}

func TestRenameAppendAndPop(t *testing.T) {
	e := newTestEditor(t, "hi")
	e.Execute(command.NewRename('x'))
	if got := e.FileName(); got != "file.txtx" {
		t.Fatalf("FileName() = %q, want %q", got, "file.txtx")
	}
	e.Execute(command.NewRenamePop())
	if got := e.FileName(); got != "file.txt" {
		t.Fatalf("FileName() = %q, want %q", got, "file.txt")
	}
}

func TestRenameSpaceBecomesUnderscore(t *testing.T) {
	e := newTestEditor(t, "hi")
	e.Execute(command.NewRename(' '))
	if got := e.FileName(); got != "file.txt_" {
		t.Fatalf("FileName() = %q, want %q", got, "file.txt_")
	}
}

func TestSaveWritesAtomicallyAndDoesNotRemoveOriginal(t *testing.T) {
	dir := t.TempDir()
	original := filepath.Join(dir, "original.txt")
	if err := os.WriteFile(original, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := buffer.NewFromText("new content", "", nil)
	v := view.New(b, view.WithSize(10, 10))
	e := New(v, dir, "original.txt")
	e.Execute(command.NewRename('x')) // original.txtx
	e.Execute(command.CmdSave)

	renamedPath := filepath.Join(dir, "original.txtx")
	got, err := os.ReadFile(renamedPath)
	if err != nil {
		t.Fatalf("reading renamed path: %v", err)
	}
	if string(got) != "new content" {
		t.Fatalf("renamed file content = %q, want %q", got, "new content")
	}

	// The spec documents this as a known quirk: renaming never removes the
	// original file.
	if _, err := os.Stat(original); err != nil {
		t.Fatalf("original file should still exist after rename+save: %v", err)
	}
	if _, err := os.Stat(renamedPath + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf(".tmp file should have been renamed away")
	}
}

func TestDiffSwapIsWholesale(t *testing.T) {
	e := newTestEditor(t, "hi")
	if e.Diff() != nil {
		t.Fatalf("Diff() = %v, want nil before any poll", e.Diff())
	}
	e.SetDiff(vcsdiff.DiffMap{0: vcsdiff.Added})
	if got := e.Diff(); got[0] != vcsdiff.Added {
		t.Fatalf("Diff() = %v, want {0: Added}", got)
	}
}
