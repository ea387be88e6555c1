package vcsproc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcs-tools/stage/internal/udiff"
	"github.com/vcs-tools/stage/internal/vcsproc"
)

func TestFakeBackend_DiffFilesRendersOnlyUnstagedChanges(t *testing.T) {
	b := &vcsproc.FakeBackend{
		Files: []vcsproc.FakeFile{
			{Path: "foo.txt", Unstaged: &vcsproc.FakeChange{Old: "a\nb\nc\n", New: "a\nx\nc\n"}},
			{Path: "bar.txt", Staged: &vcsproc.FakeChange{Old: "1\n", New: "2\n"}},
		},
	}

	plain, err := b.DiffFiles(context.Background(), nil, false)
	require.NoError(t, err)

	patch, err := udiff.Parse(plain, nil)
	require.NoError(t, err)
	require.Len(t, patch.Files, 1)
	assert.Contains(t, string(plain), "diff --git a/foo.txt b/foo.txt")
	assert.NotContains(t, string(plain), "bar.txt")
}

func TestFakeBackend_DiffIndexHonorsColor(t *testing.T) {
	b := &vcsproc.FakeBackend{
		Files: []vcsproc.FakeFile{
			{Path: "foo.txt", Staged: &vcsproc.FakeChange{Old: "a\n", New: "b\n"}},
		},
	}
	colored, err := b.DiffIndex(context.Background(), nil, true)
	require.NoError(t, err)
	assert.Contains(t, string(colored), "\x1b[")
}

func TestFakeBackend_ApplyCachedRecordsOrFails(t *testing.T) {
	b := &vcsproc.FakeBackend{}
	require.NoError(t, b.ApplyCached(context.Background(), []byte("patch")))
	assert.Equal(t, [][]byte{[]byte("patch")}, b.Applied)

	b2 := &vcsproc.FakeBackend{ApplyErr: assert.AnError}
	assert.Error(t, b2.ApplyCached(context.Background(), []byte("patch")))
}

func TestFakeBackend_RefreshIndexCounts(t *testing.T) {
	b := &vcsproc.FakeBackend{}
	require.NoError(t, b.RefreshIndex(context.Background()))
	require.NoError(t, b.RefreshIndex(context.Background()))
	assert.Equal(t, 2, b.Refreshes)
}

func TestSafeRelPath(t *testing.T) {
	p, err := vcsproc.SafeRelPath("foo/bar.txt")
	require.NoError(t, err)
	assert.Equal(t, "foo/bar.txt", p)

	_, err = vcsproc.SafeRelPath("/etc/passwd")
	assert.Error(t, err)

	_, err = vcsproc.SafeRelPath("../escape.txt")
	assert.Error(t, err)

	_, err = vcsproc.SafeRelPath("")
	assert.Error(t, err)
}
