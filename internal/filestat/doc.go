// Package filestat collects per-file staged/unstaged change counts into a
// stable, path-ordered list.
//
// Collect takes the raw unified diffs for the two comparisons a status pass
// needs (worktree-vs-index, index-vs-HEAD), reusing the udiff package to
// split each into files and hunks rather than re-deriving a diffstat from
// scratch. A file seen on only one side has a zero Counts on the other,
// distinguished from a real zero-change file by the Seen bit.
package filestat
