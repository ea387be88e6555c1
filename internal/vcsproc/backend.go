package vcsproc

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Backend is the external interface, defined in terms of four fixed
// subprocess shapes: diff-files, diff-index, apply --cached, and
// update-index --refresh.
type Backend interface {
	// DiffFiles captures the worktree-vs-index diff restricted to pathspec
	// (empty pathspec means everything). colored requests the same
	// invocation with color turned on.
	DiffFiles(ctx context.Context, pathspec []string, colored bool) ([]byte, error)

	// DiffIndex captures the index-vs-HEAD diff (or index-vs-empty-tree if
	// HEAD doesn't resolve).
	DiffIndex(ctx context.Context, pathspec []string, colored bool) ([]byte, error)

	// ApplyCached applies patch to the index. A non-zero exit is returned
	// as an error; callers treat it as non-fatal to the session.
	ApplyCached(ctx context.Context, patch []byte) error

	// RefreshIndex re-stats the index entries against the working tree.
	// Callers invoke it once after every successful ApplyCached so a
	// subsequent DiffFiles doesn't report stale timestamp-only deltas.
	RefreshIndex(ctx context.Context) error
}

// SafeRelPath rejects a patch-header path that would escape the repository
// root: absolute paths and any ".." path segment. Grounded on the same
// safety check a patch applier needs regardless of patch grammar.
func SafeRelPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("vcsproc: empty path")
	}
	if path.IsAbs(p) {
		return "", fmt.Errorf("vcsproc: absolute path not allowed: %s", p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("vcsproc: path escapes repository root: %s", p)
	}
	return clean, nil
}
