package stage

import (
	"bufio"
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vcs-tools/stage/internal/cli"
	"github.com/vcs-tools/stage/internal/palette"
	"github.com/vcs-tools/stage/internal/vcsproc"
)

// Main builds the command tree and runs it, returning a process exit code.
func Main(ctx context.Context, args []string) int {
	return cli.Run(ctx, buildRoot(), cli.Options{Args: args})
}

func buildRoot() *cli.Command {
	root := &cli.Command{
		Name:  "stage",
		Short: "interactive staging tool",
	}
	colorFlag := root.PersistentFlags().String("color", "", "when to color output: auto, always, never (default auto)")

	interactiveCmd := &cli.Command{
		Name:  "interactive",
		Short: "show status, then offer a command chooser",
		Run: func(c *cli.Context) error {
			sess, err := newSession(c, *colorFlag, c.Args)
			if err != nil {
				return err
			}
			return RunInteractive(c.Context, sess)
		},
	}

	patchCmd := &cli.Command{
		Name:  "patch",
		Short: "interactively stage hunks, file by file",
		Run: func(c *cli.Context) error {
			sess, err := newSession(c, *colorFlag, c.Args)
			if err != nil {
				return err
			}
			return runPatch(c.Context, sess)
		},
	}

	root.AddCommand(interactiveCmd, patchCmd)
	return root
}

func newSession(c *cli.Context, colorFlagValue string, pathspec []string) (*Session, error) {
	mode, err := resolveColorMode(colorFlagValue)
	if err != nil {
		return nil, cli.UsageError{Message: err.Error()}
	}

	pal := palette.Resolve(mode, isTerminalOut(c.Out))

	binary := os.Getenv("STAGE_VCS_BINARY")
	if binary == "" {
		binary = "git"
	}

	return &Session{
		Backend: &vcsproc.ExecBackend{
			Binary:    binary,
			IndexFile: os.Getenv("STAGE_INDEX_FILE"),
		},
		Palette:  pal,
		Pathspec: pathspec,
		In:       bufio.NewReader(c.In),
		Out:      c.Out,
		Err:      c.Err,
	}, nil
}

// resolveColorMode layers an explicit --color flag over STAGE_COLOR over
// the "auto" default.
func resolveColorMode(flagValue string) (palette.Mode, error) {
	v := flagValue
	if v == "" {
		v = os.Getenv("STAGE_COLOR")
	}
	return palette.ParseMode(v)
}

func isTerminalOut(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
