package command

import "math"

// Decode maps key under mode to at most one Command. Keys with no binding
// in the given mode yield CmdInvalid, which callers silently drop.
func Decode(key Key, mode Mode) Command {
	switch mode {
	case ModeNormal:
		return decodeNormal(key)
	case ModeInsert:
		return decodeInsert(key)
	case ModeRename:
		return decodeRename(key)
	default:
		return CmdInvalid
	}
}

func decodeNormal(key Key) Command {
	if key.Kind == KeyRune {
		switch key.Rune {
		case 'q':
			return CmdQuit
		case 'h':
			return NewMove(-1, 0)
		case 'l':
			return NewMove(1, 0)
		case 'j':
			return NewMove(0, 1)
		case 'k':
			return NewMove(0, -1)
		case '0':
			return NewMove(-Max, 0)
		case '$':
			return NewMove(Max, 0)
		case 'i':
			return CmdToggleMode
		case 'I':
			return NewBlock(NewMove(-Max, 0), CmdToggleMode)
		case 'a':
			return NewBlock(NewMove(1, 0), CmdToggleMode)
		case 'A':
			return NewBlock(NewMove(Max, 0), CmdToggleMode)
		case 'o':
			return NewBlock(NewMove(Max, 0), CmdInsertNewLine, CmdToggleMode)
		case 'O':
			return NewBlock(NewMove(-Max, 0), CmdInsertNewLine, NewMove(0, -1), CmdToggleMode)
		case 'w':
			return CmdSave
		case 'R':
			return CmdToggleRename
		case 'd':
			return CmdDeleteLine
		}
		return CmdInvalid
	}

	switch key.Kind {
	case KeyArrowLeft:
		return NewMove(-1, 0)
	case KeyArrowRight:
		return NewMove(1, 0)
	case KeyArrowDown:
		return NewMove(0, 1)
	case KeyArrowUp:
		return NewMove(0, -1)
	default:
		return CmdInvalid
	}
}

// Max is the same saturating sentinel internal/view uses for "go to
// beginning/end of line" — duplicated here rather than imported, since
// command only needs the constant, not the view package itself.
const Max = math.MaxInt

func decodeInsert(key Key) Command {
	switch key.Kind {
	case KeyEsc:
		return CmdToggleMode
	case KeyArrowLeft:
		return NewMove(-1, 0)
	case KeyArrowRight:
		return NewMove(1, 0)
	case KeyArrowDown:
		return NewMove(0, 1)
	case KeyArrowUp:
		return NewMove(0, -1)
	case KeyBackspace:
		return CmdDelete
	case KeyEnter:
		return CmdInsertNewLine
	case KeyTab:
		return NewBlock(NewInsert(' '), NewInsert(' '), NewInsert(' '), NewInsert(' '))
	case KeyRune:
		return NewInsert(key.Rune)
	default:
		return CmdInvalid
	}
}

func decodeRename(key Key) Command {
	switch key.Kind {
	case KeyBackspace:
		return NewRenamePop()
	case KeyEnter:
		return CmdToggleMode
	case KeyRune:
		c := key.Rune
		if c == ' ' || c == '\'' {
			c = '_'
		}
		return NewRename(c)
	default:
		return CmdInvalid
	}
}
