// Package menu implements a prefix-disambiguated "list and choose" loop: it
// prints a list of named items, reads one line of input, and resolves it to
// either a 1-based index or a unique name prefix.
//
// Display and input parsing follow a fixed contract (see Chooser.Choose):
// empty input ends the loop with ErrNoSelection, EOF ends it with ErrQuit,
// and an unrecognized token prints a "Huh (...)?" message and keeps scanning
// the rest of the line before re-prompting.
package menu
