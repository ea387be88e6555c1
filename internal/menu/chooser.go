package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoSelection is returned by Choose when the user submits an empty line:
// the loop ends cleanly with nothing chosen.
var ErrNoSelection = errors.New("menu: no selection")

// ErrQuit is returned by Choose when standard input is exhausted.
var ErrQuit = errors.New("menu: quit")

// helpText is printed whenever a line contains a literal "?" token.
const helpText = `Type a number to select that item by position.
Type enough of an item's name to uniquely identify it.
Type an empty line to select nothing.
Type ? to print this help.
`

// Item is a named entity that can appear in a Chooser's list.
type Item interface {
	Name() string
}

// Printer renders item (found at the given 0-based index) to w. Typical
// implementations include the item's assigned selection prefix (see the
// prefixtable package) bracketed or colored within the name.
type Printer func(w io.Writer, item Item, index int)

// Chooser lists Items and reads a single selection from In.
type Chooser struct {
	Items  []Item
	Print  Printer
	Header string // optional; printed above the list each time it is displayed, if non-empty
	Prompt string // printed (without trailing newline) before each read

	// Columns, if > 0, wraps the list with a newline every Columns items and
	// separates items on the same line with a tab. If <= 0, one item per line.
	Columns int

	In  *bufio.Reader
	Out io.Writer
}

type flusher interface {
	Flush() error
}

// Choose displays the list and reads lines from In until a token resolves to
// a 1-based index (returned 0-based), the input is empty (ErrNoSelection), or
// input is exhausted (ErrQuit). An invalid token on a line prints "Huh
// (<token>)?" and scanning continues with the next token on that same line;
// if no token on the line resolves, the list is redisplayed and another line
// is read.
func (c *Chooser) Choose() (int, error) {
	for {
		c.render()

		fmt.Fprint(c.Out, c.Prompt)
		if f, ok := c.Out.(flusher); ok {
			_ = f.Flush()
		}

		line, err := c.In.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return 0, ErrQuit
			}
			return 0, err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return 0, ErrNoSelection
		}

		if idx, ok := c.resolveLine(trimmed); ok {
			return idx, nil
		}
		// No token on this line resolved to a selection; redisplay and re-prompt.
	}
}

// resolveLine scans space/tab/CR/LF/comma-separated tokens in line and
// returns the first one that resolves to a valid 0-based index. A literal
// "?" token prints helpText and keeps scanning rather than being treated as
// an unrecognized token.
func (c *Chooser) resolveLine(line string) (int, bool) {
	for _, token := range strings.FieldsFunc(line, isSeparator) {
		if token == "?" {
			fmt.Fprint(c.Out, helpText)
			continue
		}
		idx, ok := c.resolveToken(token)
		if ok {
			return idx, true
		}
		fmt.Fprintf(c.Out, "Huh (%s)?\n", token)
	}
	return 0, false
}

func (c *Chooser) resolveToken(token string) (int, bool) {
	if isAllDigits(token) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, false
		}
		if n < 1 || n > len(c.Items) {
			return 0, false
		}
		return n - 1, true
	}

	match := -1
	for i, item := range c.Items {
		if strings.HasPrefix(item.Name(), token) {
			if match != -1 {
				return 0, false // ambiguous
			}
			match = i
		}
	}
	if match == -1 {
		return 0, false
	}
	return match, true
}

func (c *Chooser) render() {
	if c.Header != "" {
		fmt.Fprintln(c.Out, c.Header)
	}
	for i, item := range c.Items {
		c.Print(c.Out, item, i)
		if c.Columns > 0 {
			if (i+1)%c.Columns == 0 || i == len(c.Items)-1 {
				fmt.Fprintln(c.Out)
			} else {
				fmt.Fprint(c.Out, "\t")
			}
		} else {
			fmt.Fprintln(c.Out)
		}
	}
	fmt.Fprintln(c.Out)
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', ',':
		return true
	default:
		return false
	}
}
