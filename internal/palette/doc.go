// Package palette resolves whether the interactive UI should use color and,
// if so, which ANSI escape backs each of the four named slots it uses:
// header, prompt, error, fraginfo. Disabling color collapses every slot to
// the empty string so callers can unconditionally concatenate a slot before
// text without a branch.
package palette
