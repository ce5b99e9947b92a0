package vcsdiff

import (
	"path/filepath"
	"strings"

	mmvcs "github.com/Masterminds/vcs"
	"github.com/pmezard/go-difflib/difflib"
)

// Git implements Adapter against a git working copy via Masterminds/vcs
// for repository/ref discovery and native line diffing (instead of
// shelling out to diff(1)) via go-difflib.
type Git struct{}

// NewGit returns a ready-to-use Git adapter.
func NewGit() *Git { return &Git{} }

// RefName implements Adapter.
func (Git) RefName(dir string) (string, bool) {
	repo, err := gitRepo(dir)
	if err != nil {
		return "", false
	}
	ref, err := repo.Current()
	if err != nil || ref == "" {
		return "", false
	}
	return ref, true
}

// Diff implements Adapter. Untracked files take the fast path of marking
// every non-empty line Added; tracked files are classified against their
// HEAD revision by comparing old/new run lengths per opcode.
func (Git) Diff(text, dir, name string) (DiffMap, bool) {
	repo, err := gitRepo(dir)
	if err != nil {
		return nil, false
	}

	rel := relativeTo(dir, name)
	if !tracked(repo, rel) {
		return untrackedDiff(text), true
	}

	head, err := repo.RunFromDir("git", "show", "HEAD:"+filepath.ToSlash(rel))
	if err != nil {
		// Tracked in the index but not yet in any commit: treat like
		// untracked rather than failing outright.
		return untrackedDiff(text), true
	}

	return classify(string(head), text), true
}

func gitRepo(dir string) (*mmvcs.GitRepo, error) {
	repo, err := mmvcs.NewRepo("", dir)
	if err != nil {
		return nil, err
	}
	gr, ok := repo.(*mmvcs.GitRepo)
	if !ok {
		return nil, errNotGit
	}
	return gr, nil
}

func tracked(repo *mmvcs.GitRepo, rel string) bool {
	out, err := repo.RunFromDir("git", "ls-files", "--error-unmatch", "--", filepath.ToSlash(rel))
	return err == nil && len(strings.TrimSpace(string(out))) > 0
}

func relativeTo(dir, name string) string {
	rel, err := filepath.Rel(dir, name)
	if err != nil {
		return name
	}
	return rel
}

func untrackedDiff(text string) DiffMap {
	out := DiffMap{}
	for i, line := range strings.Split(text, "\n") {
		if line != "" {
			out[i] = Added
		}
	}
	return out
}

// classify maps go-difflib opcodes onto the spec's coarse, count-based
// policy: equal-length runs are Changed, growing runs are Added, shrinking
// runs are Deleted (marked at the single line where the deletion begins).
// Line indices are 0-based positions in the new (working) text.
func classify(oldText, newText string) DiffMap {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	matcher := difflib.NewMatcher(oldLines, newLines)
	out := DiffMap{}
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		oldCount := op.I2 - op.I1
		newCount := op.J2 - op.J1
		switch {
		case newCount == oldCount:
			for l := op.J1; l < op.J2; l++ {
				out[l] = Changed
			}
		case newCount > oldCount:
			for l := op.J1; l < op.J2; l++ {
				out[l] = Added
			}
		default:
			out[op.J1] = Deleted
		}
	}
	return out
}
