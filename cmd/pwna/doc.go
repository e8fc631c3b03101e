// Package main hosts the pwna CLI entrypoint and command graph.
//
// The Cobra-based command tree bootstraps the YAML configuration before any
// subcommand runs, writing defaults and exiting on first use. The http
// command links the working directory into the configured HTTP root and
// serves it until interrupted; linpeas, winpeas and pspy are placeholders
// that only report the selected tool. The config and status commands inspect
// the current setup without changing it.
//
// Keep this package lean: behavior lives in the internal packages and is only
// surfaced here through commands and flags.
package main
