package patchflow

import "strings"

// helpText is printed in the error color whenever the user types something
// that doesn't match a known command.
const helpText = `y - stage this hunk
n - do not stage this hunk
a - stage this and all later hunks in the file
d - do not stage this or any later hunk in the file
j - leave this hunk undecided, see next undecided hunk
k - leave this hunk undecided, see previous undecided hunk
J - go to the next hunk
K - go to the previous hunk
? - print this help
`

// buildPrompt assembles "Stage this hunk [y,n,a,d<dyn>,?]? " with the
// navigation letters present only when they'd currently do something.
func buildPrompt(undecidedPrev, undecidedNext, idx, hunkCount int) string {
	var dyn strings.Builder
	if undecidedPrev >= 0 {
		dyn.WriteString(",k")
	}
	if idx > 0 {
		dyn.WriteString(",K")
	}
	if undecidedNext >= 0 {
		dyn.WriteString(",j")
	}
	if idx+1 < hunkCount {
		dyn.WriteString(",J")
	}
	return "Stage this hunk [y,n,a,d" + dyn.String() + ",?]? "
}
