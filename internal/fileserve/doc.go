// Package fileserve links the invoking directory into the HTTP root and runs
// the blocking static file server that exposes it.
//
// LinkWorkingDir places a symlink named after the working directory's base
// name inside the HTTP root, leaving any existing entry of that name alone.
// Serve changes the process working directory to the HTTP root, binds the
// listener, and serves files until the context is cancelled or the server
// fails. Every request passes through an access-log middleware that tags the
// log line and response with a request identifier.
package fileserve
