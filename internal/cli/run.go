package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

type Options struct {
	// Args is the argv excluding the program name (typically os.Args[1:]).
	Args []string

	// In/Out/Err override standard I/O. If nil, defaults are used.
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Context is passed to a command handler.
type Context struct {
	context.Context

	Command *Command
	Args    []string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes a command tree as a CLI program and returns a process exit code.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil {
		panic("cli: Run called with nil root")
	}
	if root.Name == "" {
		panic("cli: Run called with root.Name empty")
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, args, parseErr := parseArgv(root, opts.Args)
	if parseErr != nil {
		if errors.Is(parseErr, errHelpRequested) {
			writeHelp(out, root, selected)
			return 0
		}
		printUsageError(root, selected, parseErr, errOut)
		return 2
	}

	if selected.Run == nil {
		if len(args) == 0 {
			printUsageError(root, selected, usageErrorf("missing required command"), errOut)
			return 2
		}
		printUsageError(root, selected, usageErrorf("unknown command: %s", args[0]), errOut)
		return 2
	}

	c := &Context{
		Context: ctx,
		Command: selected,
		Args:    args,
		In:      in,
		Out:     out,
		Err:     errOut,
	}
	if err := selected.Run(c); err != nil {
		return exitForHandlerError(root, selected, err, errOut)
	}
	return 0
}

var errHelpRequested = errors.New("help requested")

// parseArgv scans argv left to right: a token matching an unclaimed child's
// Name descends into it, "--name"/"--name=value" sets a flag visible on the
// current command's path, "--" ends flag parsing, and anything else becomes
// a positional arg. Once the first positional/unknown-child token is seen,
// no further descent happens even if a later token matches a child name.
func parseArgv(root *Command, argv []string) (*Command, []string, error) {
	selected := root
	selectionEnded := false
	var positional []string

	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if token == "--" {
			positional = append(positional, argv[i+1:]...)
			break
		}

		if token == "-h" || token == "--help" {
			return selected, nil, errHelpRequested
		}

		if len(token) > 2 && token[0] == '-' && token[1] == '-' {
			consumed, err := parseFlagToken(selected.activeFlags(), token, argv, i)
			if err != nil {
				return selected, nil, err
			}
			i += consumed
			continue
		}

		if !selectionEnded {
			if child := selected.childByName(token); child != nil {
				selected = child
				continue
			}
			selectionEnded = true
		}

		positional = append(positional, token)
	}
	return selected, positional, nil
}

func exitForHandlerError(root, cmd *Command, err error, errOut io.Writer) int {
	var ec ExitCoder
	if errors.As(err, &ec) {
		code := ec.ExitCode()
		if code == 2 {
			printUsageError(root, cmd, err, errOut)
			return 2
		}
		if code == 0 {
			return 0
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(errOut, msg)
		}
		return code
	}

	if msg := err.Error(); msg != "" {
		fmt.Fprintln(errOut, msg)
	}
	return 1
}

func printUsageError(root, cmd *Command, err error, errOut io.Writer) {
	if msg := usageErrorMessage(err); msg != "" {
		fmt.Fprintln(errOut, msg)
		fmt.Fprintln(errOut)
	}
	writeHelp(errOut, root, cmd)
}

func usageErrorMessage(err error) string {
	var ue UsageError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
