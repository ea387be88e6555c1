// Package vcsproc is the boundary between this tool's core and the host
// version-control system. A Backend captures the working-tree-vs-index and
// index-vs-HEAD diffs (plain and, optionally, colored) and applies a
// reassembled patch to the index.
//
// ExecBackend shells out to the host VCS binary, augmenting the child's
// environment with an index-file path the way a staging area override is
// normally threaded through a VCS's subprocess interface. FakeBackend
// instead synthesizes its diffs in-process with the internal/diff package,
// so tests can exercise the parser and the interactive patch loop without a
// real repository on disk.
package vcsproc
