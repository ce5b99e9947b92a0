package command

import "testing"

func TestNormalModeBindings(t *testing.T) {
	cases := []struct {
		key  Key
		kind Kind
	}{
		{Key{Kind: KeyRune, Rune: 'q'}, Quit},
		{Key{Kind: KeyRune, Rune: 'h'}, Move},
		{Key{Kind: KeyRune, Rune: 'w'}, Save},
		{Key{Kind: KeyRune, Rune: 'R'}, ToggleRename},
		{Key{Kind: KeyRune, Rune: 'd'}, DeleteLine},
		{Key{Kind: KeyRune, Rune: 'z'}, Invalid},
	}
	for _, c := range cases {
		got := Decode(c.key, ModeNormal)
		if got.Kind != c.kind {
			t.Errorf("Decode(%+v, Normal).Kind = %v, want %v", c.key, got.Kind, c.kind)
		}
	}
}

func TestNormalModeCompoundBindings(t *testing.T) {
	cmd := Decode(Key{Kind: KeyRune, Rune: 'o'}, ModeNormal)
	if cmd.Kind != Block || len(cmd.Children) != 3 {
		t.Fatalf("Decode('o') = %+v, want a 3-child Block", cmd)
	}
	if cmd.Children[0].Kind != Move || cmd.Children[0].DX != Max {
		t.Errorf("first child = %+v, want Move(Max, 0)", cmd.Children[0])
	}
	if cmd.Children[1].Kind != InsertNewLine {
		t.Errorf("second child = %+v, want InsertNewLine", cmd.Children[1])
	}
	if cmd.Children[2].Kind != ToggleMode {
		t.Errorf("third child = %+v, want ToggleMode", cmd.Children[2])
	}
}

func TestInsertModeTabExpandsToFourInserts(t *testing.T) {
	cmd := Decode(Key{Kind: KeyTab}, ModeInsert)
	if cmd.Kind != Block || len(cmd.Children) != 4 {
		t.Fatalf("Decode(Tab) = %+v, want a 4-child Block", cmd)
	}
	for _, child := range cmd.Children {
		if child.Kind != Insert || child.Char != ' ' {
			t.Errorf("tab child = %+v, want Insert(' ')", child)
		}
	}
}

func TestInsertModePrintableChar(t *testing.T) {
	cmd := Decode(Key{Kind: KeyRune, Rune: 'x'}, ModeInsert)
	if cmd.Kind != Insert || cmd.Char != 'x' {
		t.Fatalf("Decode('x', Insert) = %+v, want Insert('x')", cmd)
	}
}

func TestRenameModeSpaceAndApostropheBecomeUnderscore(t *testing.T) {
	for _, r := range []rune{' ', '\''} {
		cmd := Decode(Key{Kind: KeyRune, Rune: r}, ModeRename)
		if cmd.Kind != Rename || cmd.RenameChar != '_' || !cmd.RenameOK {
			t.Errorf("Decode(%q, Rename) = %+v, want Rename('_')", r, cmd)
		}
	}
}

func TestRenameModeBackspacePops(t *testing.T) {
	cmd := Decode(Key{Kind: KeyBackspace}, ModeRename)
	if cmd.Kind != Rename || cmd.RenameOK {
		t.Fatalf("Decode(Backspace, Rename) = %+v, want Rename(None)", cmd)
	}
}

func TestRenameModeEnterTogglesMode(t *testing.T) {
	cmd := Decode(Key{Kind: KeyEnter}, ModeRename)
	if cmd.Kind != ToggleMode {
		t.Fatalf("Decode(Enter, Rename) = %+v, want ToggleMode", cmd)
	}
}

func TestFromANSIArrowKeys(t *testing.T) {
	key, n := FromANSI([]byte{0x1b, '[', 'A'})
	if key.Kind != KeyArrowUp || n != 3 {
		t.Fatalf("FromANSI(up) = (%+v, %d), want (KeyArrowUp, 3)", key, n)
	}
}

func TestFromANSIUnicodeRune(t *testing.T) {
	key, n := FromANSI([]byte("é"))
	if key.Kind != KeyRune || key.Rune != 'é' || n != 2 {
		t.Fatalf("FromANSI('é') = (%+v, %d), want (KeyRune 'é', 2)", key, n)
	}
}
