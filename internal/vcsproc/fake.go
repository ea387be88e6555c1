package vcsproc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vcs-tools/stage/internal/diff"
)

// FakeChange is an old/new text pair that internal/diff renders into a
// unified diff on demand.
type FakeChange struct {
	Old, New string
}

// FakeFile is one path's state across the two comparisons a status/patch
// pass needs.
type FakeFile struct {
	Path     string
	Unstaged *FakeChange // nil: file unchanged between worktree and index
	Staged   *FakeChange // nil: file unchanged between index and HEAD
}

// FakeBackend is an in-process Backend used by tests: it renders diffs with
// internal/diff instead of shelling out, so the parser (internal/udiff) and
// the interactive patch loop (internal/patchflow) can be exercised without a
// real repository on disk.
type FakeBackend struct {
	Files []FakeFile

	// ApplyErr, when set, makes every ApplyCached call fail with this error.
	ApplyErr error
	// Applied records the bytes passed to every successful ApplyCached call.
	Applied [][]byte

	// Refreshes counts RefreshIndex calls.
	Refreshes int
}

func (b *FakeBackend) DiffFiles(_ context.Context, pathspec []string, colored bool) ([]byte, error) {
	return render(b.Files, pathspec, colored, func(f FakeFile) *FakeChange { return f.Unstaged }), nil
}

func (b *FakeBackend) DiffIndex(_ context.Context, pathspec []string, colored bool) ([]byte, error) {
	return render(b.Files, pathspec, colored, func(f FakeFile) *FakeChange { return f.Staged }), nil
}

func (b *FakeBackend) ApplyCached(_ context.Context, patch []byte) error {
	if b.ApplyErr != nil {
		return b.ApplyErr
	}
	b.Applied = append(b.Applied, append([]byte(nil), patch...))
	return nil
}

func (b *FakeBackend) RefreshIndex(_ context.Context) error {
	b.Refreshes++
	return nil
}

func render(files []FakeFile, pathspec []string, colored bool, pick func(FakeFile) *FakeChange) []byte {
	var out bytes.Buffer
	for _, f := range files {
		if !pathspecMatches(pathspec, f.Path) {
			continue
		}
		change := pick(f)
		if change == nil {
			continue
		}
		d := diff.DiffText(change.Old, change.New)
		fmt.Fprintf(&out, "diff --git a/%s b/%s\n", f.Path, f.Path)
		out.WriteString(d.RenderUnifiedDiff(colored, "a/"+f.Path, "b/"+f.Path, 3))
		out.WriteString("\n")
	}
	return out.Bytes()
}

func pathspecMatches(pathspec []string, path string) bool {
	if len(pathspec) == 0 {
		return true
	}
	for _, p := range pathspec {
		if p == path {
			return true
		}
	}
	return false
}
