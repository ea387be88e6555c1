package stage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vcs-tools/stage/internal/menu"
	"github.com/vcs-tools/stage/internal/prefixtable"
)

// RunInteractive prints the current file status, then repeatedly offers
// the command list until the chooser quits (EOF).
func RunInteractive(ctx context.Context, s *Session) error {
	if err := runStatus(ctx, s); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.name
	}
	prefixLens := prefixtable.Compute(names, 1, maxNameLen(names))

	chooser := &menu.Chooser{
		Items:  asMenuItems(cmds),
		Print:  printCommand(prefixLens),
		Prompt: s.Palette.Prompt + "Command> " + s.Palette.Reset,
		In:     s.In,
		Out:    s.Out,
	}

	for {
		idx, err := chooser.Choose()
		if err != nil {
			switch {
			case errors.Is(err, menu.ErrNoSelection):
				continue
			case errors.Is(err, menu.ErrQuit):
				fmt.Fprintln(s.Out, "Bye.")
				return nil
			default:
				return err
			}
		}
		if err := cmds[idx].run(ctx, s); err != nil {
			fmt.Fprintln(s.Err, s.Palette.Error+err.Error()+s.Palette.Reset)
		}
	}
}

func asMenuItems(cmds []*commandItem) []menu.Item {
	items := make([]menu.Item, len(cmds))
	for i, c := range cmds {
		items[i] = c
	}
	return items
}

func printCommand(prefixLens []int) menu.Printer {
	return func(w io.Writer, item menu.Item, index int) {
		name := item.Name()
		if l := prefixLens[index]; l > 0 {
			fmt.Fprintf(w, "%d: %s (%s)", index+1, name, name[:l])
			return
		}
		fmt.Fprintf(w, "%d: %s", index+1, name)
	}
}

func maxNameLen(names []string) int {
	max := 0
	for _, n := range names {
		if len(n) > max {
			max = len(n)
		}
	}
	return max
}
