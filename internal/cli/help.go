package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

func writeHelp(w io.Writer, root, cmd *Command) {
	full := commandPath(root, cmd)
	if cmd.Short != "" {
		fmt.Fprintf(w, "%s - %s\n", full, cmd.Short)
	} else {
		fmt.Fprintln(w, full)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usageLine(root, cmd))

	if len(cmd.children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		children := cmd.Commands()
		sort.Slice(children, func(i, j int) bool { return children[i].Name < children[j].Name })
		for _, child := range children {
			if child.Short != "" {
				fmt.Fprintf(w, "  %-12s %s\n", child.Name, child.Short)
			} else {
				fmt.Fprintf(w, "  %s\n", child.Name)
			}
		}
	}

	flags := flagsForHelp(cmd)
	if len(flags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		for _, fh := range flags {
			fmt.Fprintln(w, formatFlagHelpLine(fh))
		}
	}
}

func commandPath(root, cmd *Command) string {
	parts := []string{root.Name}
	if cmd != root {
		for _, node := range cmd.pathFromRoot()[1:] {
			parts = append(parts, node.Name)
		}
	}
	return strings.Join(parts, " ")
}

func usageLine(root, cmd *Command) string {
	line := commandPath(root, cmd)
	if len(flagsForHelp(cmd)) > 0 {
		line += " [flags]"
	}
	if len(cmd.children) > 0 && cmd.Run == nil {
		line += " <command>"
	}
	if cmd.Run != nil {
		line += " [pathspec...]"
	}
	return line
}
