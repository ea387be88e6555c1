package udiff

// State is a hunk's staging decision. The zero value, Undecided, is
// load-bearing: the interactive patch loop (see patchflow) uses it to find
// the next/previous hunk still awaiting a decision.
type State int

const (
	Undecided State = iota
	Skip
	Use
)

// Header holds a parsed "@@ -old_offset,old_count +new_offset,new_count @@"
// line. A zero Header (OldOffset == 0 && NewOffset == 0) marks a file's head
// hunk or any other header-less pass-through region; the upstream diff
// engine is assumed to never emit a real hunk with both offsets zero.
type Header struct {
	OldOffset, OldCount int
	NewOffset, NewCount int

	// PlainExtraStart/PlainExtraEnd bound the bytes in Patch.Plain from just
	// after the header's second "@@" through (and including) the header
	// line's trailing newline.
	PlainExtraStart, PlainExtraEnd int

	// ColoredExtraStart/ColoredExtraEnd are the same span located in
	// Patch.Colored. Both are zero when the patch has no colored buffer.
	ColoredExtraStart, ColoredExtraEnd int
}

// IsHeadSentinel reports whether h represents a header-less hunk (the file's
// head hunk, or any hunk otherwise not backed by a parsed "@@" line).
func (h Header) IsHeadSentinel() bool {
	return h.OldOffset == 0 && h.NewOffset == 0
}

// Hunk is a byte range into a Patch's buffers, plus its parsed header (zero
// for the head hunk) and staging decision.
type Hunk struct {
	Start, End               int // [Start, End) into Patch.Plain
	ColoredStart, ColoredEnd int // [ColoredStart, ColoredEnd) into Patch.Colored, valid only if Patch.Colored != nil

	Header Header
	State  State
}

// FileDiff is one file's entry in a Patch: a head hunk (the prelude from the
// "diff " line up to the first "@@") followed by its ordered hunks.
type FileDiff struct {
	Head  Hunk
	Hunks []Hunk
}

// Patch is the immutable result of parsing a unified diff. Plain is always
// set; Colored is nil unless a parallel colorized capture was parsed too.
type Patch struct {
	Plain   []byte
	Colored []byte

	Files []*FileDiff
}
