package udiff

import (
	"bytes"
	"fmt"
)

// RenderHunk writes h's regenerated bytes to out: the header "@@ -o,c
// +o'+delta,c @@" (with the trailer after the second "@@" copied from the
// source buffer) followed by the body. If h is the head hunk (or any other
// header-less hunk), it is written verbatim instead.
//
// colored selects the colored buffer when patch.Colored is non-nil;
// resetEscape and fragInfoEscape are the ANSI sequences used around the
// trailer in colored mode (pass empty strings when colored is false).
func RenderHunk(out *bytes.Buffer, h *Hunk, delta int, colored bool, patch *Patch, resetEscape, fragInfoEscape string) {
	useColor := colored && patch.Colored != nil

	if h.Header.IsHeadSentinel() {
		if useColor {
			out.Write(patch.Colored[h.ColoredStart:h.ColoredEnd])
		} else {
			out.Write(patch.Plain[h.Start:h.End])
		}
		return
	}

	fmt.Fprintf(out, "@@ -%d,%d +%d,%d @@", h.Header.OldOffset, h.Header.OldCount, h.Header.NewOffset+delta, h.Header.NewCount)

	var trailer []byte
	if useColor {
		trailer = patch.Colored[h.Header.ColoredExtraStart:h.Header.ColoredExtraEnd]
	} else {
		trailer = patch.Plain[h.Header.PlainExtraStart:h.Header.PlainExtraEnd]
	}

	if len(trailer) <= 1 { // nothing but the trailing newline (or nothing at all)
		if useColor {
			out.WriteString(resetEscape)
		}
		out.WriteByte('\n')
	} else {
		if useColor {
			out.WriteString(fragInfoEscape)
		}
		out.Write(trailer)
	}

	if useColor {
		out.Write(patch.Colored[h.ColoredStart:h.ColoredEnd])
	} else {
		out.Write(patch.Plain[h.Start:h.End])
	}
}
