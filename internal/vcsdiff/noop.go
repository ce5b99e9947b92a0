package vcsdiff

// Noop never finds a repository: RefName and Diff always report ok=false.
// It is an Editor's adapter when none is attached with WithVCS.
type Noop struct{}

// RefName implements Adapter.
func (Noop) RefName(string) (string, bool) { return "", false }

// Diff implements Adapter.
func (Noop) Diff(string, string, string) (DiffMap, bool) { return nil, false }
