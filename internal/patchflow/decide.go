package patchflow

import "github.com/vcs-tools/stage/internal/udiff"

// undecidedBefore returns the greatest index < idx whose state is
// Undecided, or -1.
func undecidedBefore(hunks []udiff.Hunk, idx int) int {
	for i := idx - 1; i >= 0; i-- {
		if hunks[i].State == udiff.Undecided {
			return i
		}
	}
	return -1
}

// undecidedAfter returns the smallest index > idx whose state is
// Undecided, or -1.
func undecidedAfter(hunks []udiff.Hunk, idx int) int {
	for i := idx + 1; i < len(hunks); i++ {
		if hunks[i].State == udiff.Undecided {
			return i
		}
	}
	return -1
}

// advanceToNextUndecided finds the next Undecided hunk starting just past
// idx and wrapping around, or len(hunks) if none remains anywhere.
func advanceToNextUndecided(hunks []udiff.Hunk, idx int) int {
	n := len(hunks)
	for step := 1; step <= n; step++ {
		i := (idx + step) % n
		if hunks[i].State == udiff.Undecided {
			return i
		}
	}
	return n
}

// markRestFrom sets hunks[idx].State to state unconditionally, and every
// subsequent hunk still Undecided to state as well.
func markRestFrom(hunks []udiff.Hunk, idx int, state udiff.State) {
	hunks[idx].State = state
	for i := idx + 1; i < len(hunks); i++ {
		if hunks[i].State == udiff.Undecided {
			hunks[i].State = state
		}
	}
}
