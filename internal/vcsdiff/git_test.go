package vcsdiff

import "testing"

func TestUntrackedDiffMarksNonEmptyLines(t *testing.T) {
	dm := untrackedDiff("a\n\nb")
	if len(dm) != 2 {
		t.Fatalf("len(dm) = %d, want 2", len(dm))
	}
	if dm[0] != Added || dm[2] != Added {
		t.Fatalf("dm = %+v, want lines 0 and 2 Added", dm)
	}
	if _, ok := dm[1]; ok {
		t.Fatalf("empty line 1 should not be marked")
	}
}

func TestClassifyChanged(t *testing.T) {
	dm := classify("one\ntwo\nthree", "one\nTWO\nthree")
	if dm[1] != Changed {
		t.Fatalf("dm[1] = %v, want Changed", dm[1])
	}
	if len(dm) != 1 {
		t.Fatalf("len(dm) = %d, want 1", len(dm))
	}
}

func TestClassifyAdded(t *testing.T) {
	dm := classify("one\ntwo", "one\ntwo\nthree\nfour")
	if dm[2] != Added || dm[3] != Added {
		t.Fatalf("dm = %+v, want lines 2,3 Added", dm)
	}
}

func TestClassifyDeleted(t *testing.T) {
	dm := classify("one\ntwo\nthree\nfour", "one\nfour")
	if dm[1] != Deleted {
		t.Fatalf("dm[1] = %v, want Deleted", dm[1])
	}
	if len(dm) != 1 {
		t.Fatalf("len(dm) = %d, want 1 (single deletion marker)", len(dm))
	}
}
