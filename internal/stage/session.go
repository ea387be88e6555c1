package stage

import (
	"bufio"
	"io"

	"github.com/vcs-tools/stage/internal/palette"
	"github.com/vcs-tools/stage/internal/vcsproc"
)

// Session bundles everything a command handler needs: which files to
// restrict to, how to reach the host VCS, and where to read/write.
type Session struct {
	Backend  vcsproc.Backend
	Palette  *palette.Palette
	Pathspec []string

	In  *bufio.Reader
	Out io.Writer
	Err io.Writer
}
