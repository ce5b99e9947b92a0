package highlight

import "testing"

func TestChromaPreservesLineCount(t *testing.T) {
	c := NewChroma("monokai")
	lines := c.Highlight("go", "package main\n\nfunc main() {}\n")
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4", len(lines))
	}
}

func TestChromaPreservesText(t *testing.T) {
	c := NewChroma("monokai")
	text := "a := 1\nb := 2"
	lines := c.Highlight("go", text)
	var got []rune
	for i, l := range lines {
		if i > 0 {
			got = append(got, '\n')
		}
		for _, g := range l {
			got = append(got, g.Char)
		}
	}
	if string(got) != text {
		t.Fatalf("round-tripped text = %q, want %q", string(got), text)
	}
}

func TestChromaUnknownThemeFallsBack(t *testing.T) {
	c := NewChroma("not-a-real-theme")
	if c.theme == nil {
		t.Fatal("theme is nil, want styles.Fallback")
	}
}

func TestChromaUnknownExtensionDoesNotPanic(t *testing.T) {
	c := NewChroma("monokai")
	lines := c.Highlight("not-a-real-ext", "hello world")
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
}
