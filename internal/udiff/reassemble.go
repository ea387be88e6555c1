package udiff

import "bytes"

// Reassemble concatenates fd's head hunk with every hunk marked Use,
// regenerating each kept hunk's new-file offset to account for the lines
// added or removed by hunks skipped before it. The result is always
// rendered from the plain buffer: it is destined for the external patch
// applier, never for display.
func Reassemble(fd *FileDiff, patch *Patch) []byte {
	var out bytes.Buffer

	RenderHunk(&out, &fd.Head, 0, false, patch, "", "")

	delta := 0
	for i := range fd.Hunks {
		h := &fd.Hunks[i]
		if h.State == Use {
			RenderHunk(&out, h, delta, false, patch, "", "")
		} else {
			delta += h.Header.OldCount - h.Header.NewCount
		}
	}

	return out.Bytes()
}

// AnyUsed reports whether any hunk in fd is marked Use.
func AnyUsed(fd *FileDiff) bool {
	for i := range fd.Hunks {
		if fd.Hunks[i].State == Use {
			return true
		}
	}
	return false
}
