package vcsdiff

import "errors"

var errNotGit = errors.New("vcsdiff: not a git working copy")
