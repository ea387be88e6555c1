package stage_test

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcs-tools/stage/internal/palette"
	"github.com/vcs-tools/stage/internal/stage"
	"github.com/vcs-tools/stage/internal/vcsproc"
)

func newTestSession(backend vcsproc.Backend, input string) (*stage.Session, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &stage.Session{
		Backend: backend,
		Palette: &palette.Palette{},
		In:      bufio.NewReader(strings.NewReader(input)),
		Out:     &out,
		Err:     &errOut,
	}, &out, &errOut
}

func TestRunInteractive_StatusThenQuitPrintsBye(t *testing.T) {
	backend := &vcsproc.FakeBackend{
		Files: []vcsproc.FakeFile{
			{Path: "foo.txt", Unstaged: &vcsproc.FakeChange{Old: "a\n", New: "b\n"}},
		},
	}
	sess, out, _ := newTestSession(backend, "")
	require.NoError(t, stage.RunInteractive(context.Background(), sess))

	assert.Contains(t, out.String(), "foo.txt")
	assert.Contains(t, out.String(), "Bye.")
}

func TestRunInteractive_DispatchesStatusCommandByPrefix(t *testing.T) {
	backend := &vcsproc.FakeBackend{
		Files: []vcsproc.FakeFile{
			{Path: "foo.txt", Staged: &vcsproc.FakeChange{Old: "a\n", New: "b\n"}},
		},
	}
	sess, out, _ := newTestSession(backend, "stat\n")
	require.NoError(t, stage.RunInteractive(context.Background(), sess))

	lines := strings.Split(out.String(), "\n")
	var statusLines int
	for _, l := range lines {
		if strings.Contains(l, "foo.txt") {
			statusLines++
		}
	}
	assert.GreaterOrEqual(t, statusLines, 2) // once at startup, once from the "stat" dispatch
}

func TestRunInteractive_EmptyInputReprompts(t *testing.T) {
	backend := &vcsproc.FakeBackend{}
	sess, out, _ := newTestSession(backend, "\n\n")
	require.NoError(t, stage.RunInteractive(context.Background(), sess))
	assert.Contains(t, out.String(), "Bye.")
}
