package filestat

import (
	"bytes"
	"sort"

	"github.com/vcs-tools/stage/internal/udiff"
)

// Counts holds one side's (staged or unstaged) change summary for a file.
type Counts struct {
	Added, Deleted uint
	Seen           bool // the diff engine reported this file on this side
	Binary         bool // counts are meaningless; the file is binary
}

// FileItem is a path plus its two change-count records.
type FileItem struct {
	Path     string
	Staged   Counts
	Unstaged Counts
}

// Side identifies which of a FileItem's two Counts a pass updates.
type Side int

const (
	Unstaged Side = iota
	Staged
)

// Collect merges the per-file counts found in unstagedDiff (worktree vs
// index) and stagedDiff (index vs HEAD) into a single list of file items,
// sorted ascending by path. Either diff may be empty.
func Collect(unstagedDiff, stagedDiff []byte) ([]*FileItem, error) {
	byPath := map[string]*FileItem{}
	var order []*FileItem

	apply := func(side Side, raw []byte) error {
		if len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		patch, err := udiff.Parse(raw, nil)
		if err != nil {
			return err
		}
		for _, fd := range patch.Files {
			path, binary := fileIdentity(patch.Plain[fd.Head.Start:fd.Head.End])
			if path == "" {
				continue
			}
			added, deleted := countChanges(patch, fd)

			item, ok := byPath[path]
			if !ok {
				item = &FileItem{Path: path}
				byPath[path] = item
				order = append(order, item)
			}
			counts := Counts{Added: added, Deleted: deleted, Seen: true, Binary: binary}
			if side == Staged {
				item.Staged = counts
			} else {
				item.Unstaged = counts
			}
		}
		return nil
	}

	if err := apply(Unstaged, unstagedDiff); err != nil {
		return nil, err
	}
	if err := apply(Staged, stagedDiff); err != nil {
		return nil, err
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Path < order[j].Path })
	return order, nil
}

func countChanges(patch *udiff.Patch, fd *udiff.FileDiff) (added, deleted uint) {
	for i := range fd.Hunks {
		h := &fd.Hunks[i]
		for _, line := range bytes.Split(patch.Plain[h.Start:h.End], []byte("\n")) {
			if len(line) == 0 {
				continue
			}
			switch line[0] {
			case '+':
				added++
			case '-':
				deleted++
			}
		}
	}
	return added, deleted
}

// fileIdentity extracts the new-side path and binary flag from a file
// block's head hunk (the prelude from "diff " up to the first "@@").
func fileIdentity(head []byte) (path string, binary bool) {
	binary = bytes.Contains(head, []byte("Binary files "))
	var gitHeaderPath string
	for _, line := range bytes.Split(head, []byte("\n")) {
		if p, ok := trimPrefix(line, "+++ b/"); ok {
			return string(trimTimestamp(p)), binary
		}
		if p, ok := trimPrefix(line, "+++ "); ok {
			return string(trimTimestamp(p)), binary
		}
		if gitHeaderPath == "" {
			if p, ok := trimPrefix(line, "diff --git a/"); ok {
				if i := bytes.Index(p, []byte(" b/")); i >= 0 {
					gitHeaderPath = string(p[i+len(" b/"):])
				}
			}
		}
	}
	// No "+++" line (binary files, or a diff engine that omits it): fall
	// back to the path named in the "diff --git" line itself.
	return gitHeaderPath, binary
}

// trimTimestamp drops a tab-separated mtime sometimes appended to "+++ "
// lines by diff implementations that don't omit it.
func trimTimestamp(p []byte) []byte {
	if i := bytes.IndexByte(p, '\t'); i >= 0 {
		return p[:i]
	}
	return p
}

func trimPrefix(line []byte, prefix string) ([]byte, bool) {
	if !bytes.HasPrefix(line, []byte(prefix)) {
		return nil, false
	}
	return line[len(prefix):], true
}
