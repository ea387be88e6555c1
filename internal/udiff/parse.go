package udiff

import (
	"bytes"
	"fmt"
)

// Parse splits plain (and, if non-nil, the parallel colored capture of the
// same diff) into a Patch of file diffs and hunks. colored may be nil, in
// which case the result's Colored field is nil and all colored byte ranges
// are zero.
//
// plain and colored are assumed to have the same line structure (see the
// package doc); Parse does not itself verify this beyond what the header
// parser trips over when locating "@@ -" / " @@" in a colored line.
func Parse(plain, colored []byte) (*Patch, error) {
	p := &Patch{
		Plain:   ensureTrailingNewline(plain),
		Colored: nil,
	}
	hasColor := colored != nil
	if hasColor {
		p.Colored = ensureTrailingNewline(colored)
	}

	var curFile *FileDiff
	onHead := true // true while the "current hunk" is curFile.Head

	pos, coloredPos := 0, 0
	for pos < len(p.Plain) {
		lineEnd := lineEndAfter(p.Plain, pos)
		line := p.Plain[pos:lineEnd]

		coloredLineEnd := coloredPos
		var coloredLine []byte
		if hasColor {
			coloredLineEnd = lineEndAfter(p.Colored, coloredPos)
			coloredLine = p.Colored[coloredPos:coloredLineEnd]
		}

		switch {
		case bytes.HasPrefix(line, []byte("diff ")):
			curFile = &FileDiff{}
			curFile.Head.Start = pos
			if hasColor {
				curFile.Head.ColoredStart = coloredPos
			}
			p.Files = append(p.Files, curFile)
			onHead = true

		case bytes.HasPrefix(line, []byte("@@ ")):
			if curFile == nil {
				return nil, fmt.Errorf("udiff: hunk header at offset %d before any file header", pos)
			}
			h := Hunk{}
			header, err := parseHeaderLine(pos, line)
			if err != nil {
				return nil, err
			}
			if hasColor {
				coloredExtra, err := locateColoredExtra(coloredPos, coloredLine)
				if err != nil {
					return nil, err
				}
				header.ColoredExtraStart, header.ColoredExtraEnd = coloredExtra, coloredLineEnd
			}
			header.PlainExtraEnd = lineEnd
			h.Header = header
			// start points past the header line, at the first body line.
			h.Start, h.End = lineEnd, lineEnd
			if hasColor {
				h.ColoredStart, h.ColoredEnd = coloredLineEnd, coloredLineEnd
			}
			curFile.Hunks = append(curFile.Hunks, h)
			onHead = false

		default:
			if curFile == nil {
				return nil, fmt.Errorf("udiff: content at offset %d before any file header", pos)
			}
		}

		cur := curFile.currentHunk(onHead)
		cur.End = lineEnd
		if hasColor {
			cur.ColoredEnd = coloredLineEnd
		}

		pos = lineEnd
		coloredPos = coloredLineEnd
	}

	return p, nil
}

func (f *FileDiff) currentHunk(onHead bool) *Hunk {
	if onHead || len(f.Hunks) == 0 {
		return &f.Head
	}
	return &f.Hunks[len(f.Hunks)-1]
}

// ensureTrailingNewline returns buf with a trailing '\n' appended if it
// lacks one. buf is never mutated in place.
func ensureTrailingNewline(buf []byte) []byte {
	if len(buf) > 0 && buf[len(buf)-1] == '\n' {
		return buf
	}
	out := make([]byte, len(buf)+1)
	copy(out, buf)
	out[len(buf)] = '\n'
	return out
}

// lineEndAfter returns the offset just past the next '\n' in buf at or
// after start, or len(buf) if none remains (buf is assumed newline-terminated
// by ensureTrailingNewline, so this only happens at exactly len(buf)).
func lineEndAfter(buf []byte, start int) int {
	if idx := bytes.IndexByte(buf[start:], '\n'); idx >= 0 {
		return start + idx + 1
	}
	return len(buf)
}
