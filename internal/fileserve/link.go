package fileserve

import (
	"fmt"
	"os"
	"path/filepath"

	"pwna/internal/fileutil"
)

// Link describes the HTTP root entry for a working directory.
type Link struct {
	Name    string
	Path    string
	Target  string
	Created bool
}

// LinkWorkingDir creates a symlink inside httpDirectory named after the base
// name of the current working directory and pointing at its absolute path.
// An existing entry with that name is left untouched even when it is stale or
// points elsewhere. httpDirectory is not created; when it is missing the
// symlink error is returned as is.
func LinkWorkingDir(httpDirectory string) (Link, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Link{}, fmt.Errorf("resolve working directory: %w", err)
	}
	return LinkDir(httpDirectory, cwd)
}

// LinkDir is LinkWorkingDir for an explicit source directory.
func LinkDir(httpDirectory, dir string) (Link, error) {
	target, err := filepath.Abs(dir)
	if err != nil {
		return Link{}, fmt.Errorf("resolve %s: %w", dir, err)
	}
	name := filepath.Base(target)
	link := Link{
		Name:   name,
		Path:   filepath.Join(httpDirectory, name),
		Target: target,
	}

	created, err := fileutil.LinkIfAbsent(target, link.Path)
	if err != nil {
		return link, fmt.Errorf("link %s into %s: %w", target, httpDirectory, err)
	}
	link.Created = created
	return link, nil
}
