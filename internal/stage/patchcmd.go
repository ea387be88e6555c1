package stage

import (
	"context"

	"github.com/vcs-tools/stage/internal/patchflow"
	"github.com/vcs-tools/stage/internal/udiff"
)

// runPatch captures the working-tree-vs-index diff, parses it, and walks
// every file through patchflow.
func runPatch(ctx context.Context, s *Session) error {
	plain, err := s.Backend.DiffFiles(ctx, s.Pathspec, false)
	if err != nil {
		return err
	}

	var colored []byte
	useColor := s.Palette.Header != ""
	if useColor {
		colored, err = s.Backend.DiffFiles(ctx, s.Pathspec, true)
		if err != nil {
			return err
		}
	}

	patch, err := udiff.Parse(plain, colored)
	if err != nil {
		return err
	}

	flow := &patchflow.Session{
		Patch:   patch,
		Backend: s.Backend,
		Palette: s.Palette,
		In:      s.In,
		Out:     s.Out,
		Err:     s.Err,
		Color:   useColor,
	}
	return flow.Run(ctx)
}
