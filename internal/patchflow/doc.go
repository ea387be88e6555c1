// Package patchflow drives the interactive per-file hunk walk: render each
// hunk, read a one-character decision, navigate among undecided hunks, and
// once every hunk in a file has a decision, reassemble and apply the
// selected ones via a vcsproc.Backend.
package patchflow
