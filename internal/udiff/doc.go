// Package udiff parses an already-computed unified diff into a tree of
// files and hunks, renders individual hunks (optionally regenerating their
// "@@ ... @@" header to account for previously dropped hunks), and
// reassembles a subset of hunks back into a self-contained per-file patch.
//
// A Patch holds two immutable byte buffers: Plain, always present, and
// Colored, present only when a colorized capture of the same diff was also
// supplied. The two buffers are guaranteed by the caller to have the same
// line structure (same count and order of newline-terminated lines); only
// their bytes differ, on lines carrying ANSI color escapes. Every Hunk
// stores byte ranges into both buffers so a renderer can emit either.
//
// Parse is the only entry point that builds a Patch; Hunk.State starts
// Undecided and is mutated by a caller (see the patchflow package) as the
// user accepts or rejects hunks. Reassemble then walks a single FileDiff's
// hunks and produces the bytes for exactly the Use ones, adjusting each
// kept hunk's new-file offset for the ones skipped before it.
package udiff
