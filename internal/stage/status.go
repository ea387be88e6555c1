package stage

import (
	"context"
	"fmt"

	"github.com/vcs-tools/stage/internal/filestat"
)

// runStatus re-collects the file list and prints "nn: <staged> <unstaged>
// <path>" for every modified file.
func runStatus(ctx context.Context, s *Session) error {
	unstaged, err := s.Backend.DiffFiles(ctx, s.Pathspec, false)
	if err != nil {
		return err
	}
	staged, err := s.Backend.DiffIndex(ctx, s.Pathspec, false)
	if err != nil {
		return err
	}

	items, err := filestat.Collect(unstaged, staged)
	if err != nil {
		return err
	}

	for i, item := range items {
		fmt.Fprintf(s.Out, "%2d: %-9s %-9s %s\n", i+1, sideLabel(item.Staged), sideLabel(item.Unstaged), item.Path)
	}
	return nil
}

// sideLabel renders one side's Counts as a status column: "nothing" if the
// diff engine never reported the file on this side, "binary" if counts are
// meaningless, "unchanged" for a reported-but-empty diff, and "+A/-D"
// otherwise.
func sideLabel(c filestat.Counts) string {
	switch {
	case !c.Seen:
		return "nothing"
	case c.Binary:
		return "binary"
	case c.Added == 0 && c.Deleted == 0:
		return "unchanged"
	default:
		return fmt.Sprintf("+%d/-%d", c.Added, c.Deleted)
	}
}
