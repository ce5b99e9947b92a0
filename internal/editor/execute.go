package editor

import "github.com/florentinl/giga/internal/command"

// Execute runs cmd against the editor's state and returns the
// RefreshIntent the caller should post onto the render channel. There are
// no fatal conditions at this layer: Save's I/O failures are swallowed and
// still report StatusBar, matching the best-effort save policy.
func (e *Editor) Execute(cmd command.Command) command.RefreshIntent {
	switch cmd.Kind {
	case command.Quit:
		return command.RefreshIntent{Kind: command.Terminate}

	case command.Save:
		e.save()
		return command.RefreshIntent{Kind: command.StatusBar}

	case command.Rename:
		// Renaming only changes the path the next Save writes to; the
		// file under the old name is left on disk.
		if cmd.RenameOK {
			e.renameAppend(cmd.RenameChar)
		} else {
			e.renamePop()
		}
		return command.RefreshIntent{Kind: command.StatusBar}

	case command.ToggleMode:
		e.toggleMode()
		return command.RefreshIntent{Kind: command.StatusBar}

	case command.ToggleRename:
		e.toggleRename()
		return command.RefreshIntent{Kind: command.StatusBar}

	case command.Move:
		return e.executeMove(cmd.DX, cmd.DY)

	case command.Insert:
		return e.executeInsert(cmd.Char)

	case command.InsertNewLine:
		return e.executeInsertNewLine()

	case command.Delete:
		return e.executeDelete()

	case command.DeleteLine:
		e.viewMu.Lock()
		e.view.DeleteLine()
		e.viewMu.Unlock()
		return command.RefreshIntent{Kind: command.AllLines}

	case command.Block:
		return e.executeBlock(cmd.Children)

	default:
		return command.IntentNone
	}
}

func (e *Editor) executeMove(dx, dy int) command.RefreshIntent {
	e.viewMu.Lock()
	scrolled := e.view.Navigate(dx, dy)
	e.viewMu.Unlock()
	if scrolled {
		return command.RefreshIntent{Kind: command.AllLines}
	}
	return command.RefreshIntent{Kind: command.CursorPos}
}

func (e *Editor) executeInsert(c rune) command.RefreshIntent {
	e.viewMu.Lock()
	_, cy := e.view.Cursor()
	scrolled := e.view.Insert(c)
	e.viewMu.Unlock()
	if scrolled {
		return command.RefreshIntent{Kind: command.AllLines}
	}
	return command.NewLines(cy)
}

// executeInsertNewLine splits the line at the cursor. Every row from the
// line being split through the bottom of the viewport shifts down, so the
// refresh intent covers that whole span rather than a single row.
func (e *Editor) executeInsertNewLine() command.RefreshIntent {
	e.viewMu.Lock()
	_, cy := e.view.Cursor()
	scrolled := e.view.InsertNewLine()
	_, height := e.view.Size()
	e.viewMu.Unlock()
	if scrolled {
		return command.RefreshIntent{Kind: command.AllLines}
	}
	return command.NewLineRange(max0(cy-1), height)
}

// executeDelete performs a backspace. Joining a line onto its predecessor
// shifts every subsequent row up, so the refresh intent spans from the
// cursor's row after the edit (the joined row, on a join) through the
// bottom.
func (e *Editor) executeDelete() command.RefreshIntent {
	e.viewMu.Lock()
	scrolled := e.view.Delete()
	_, cy := e.view.Cursor()
	_, height := e.view.Size()
	e.viewMu.Unlock()
	if scrolled {
		return command.RefreshIntent{Kind: command.AllLines}
	}
	return command.NewLineRange(cy, height)
}

func (e *Editor) executeBlock(children []command.Command) command.RefreshIntent {
	result := command.IntentNone
	for _, child := range children {
		result = command.Merge(result, e.Execute(child))
	}
	return result
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
