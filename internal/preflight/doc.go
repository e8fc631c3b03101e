// Package preflight provides read-only readiness checks for the files,
// directories, and ports pwna depends on.
//
// The CLI "pwna status" command runs RunAll and renders one line per
// result. Checks never create or modify anything; a port check binds and
// immediately releases the listener.
package preflight
