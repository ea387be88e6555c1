// Package stage wires the other internal packages into the two commands
// the host CLI exposes: "interactive" (status display plus a command
// chooser) and "patch" (the per-file hunk walk run directly, without the
// chooser). Both share a Session holding the resolved palette, the
// vcsproc.Backend, and the session's pathspec.
package stage
