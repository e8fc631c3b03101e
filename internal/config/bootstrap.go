package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"pwna/internal/fileutil"
)

// lockFileName serializes default generation within the config directory.
const lockFileName = ".pwna.lock"

// State describes how Bootstrap resolved the configuration.
type State int

const (
	// StateLoaded means an existing configuration file was parsed.
	StateLoaded State = iota
	// StateGenerated means the configuration directory was missing and a
	// default file was written in its place. Callers are expected to stop.
	StateGenerated
)

func (s State) String() string {
	switch s {
	case StateGenerated:
		return "generated"
	default:
		return "loaded"
	}
}

// Generated describes a freshly written default configuration file.
type Generated struct {
	Path   string
	Config Config
}

// Result is the outcome of Bootstrap.
type Result struct {
	State     State
	Path      string
	Config    *Config
	Generated *Generated
}

// EnsureDirectory creates dir (with parents) when absent. It reports whether
// the directory already existed before the call.
func EnsureDirectory(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("config directory %q is not a directory", dir)
		}
		return true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory %q: %w", dir, err)
	}
	return false, nil
}

// GenerateDefault writes the default configuration to path and returns what
// was written. The parent directory must already exist.
func GenerateDefault(path string) (Generated, error) {
	cfg := Default()
	data, err := cfg.Marshal()
	if err != nil {
		return Generated{}, fmt.Errorf("encode default config: %w", err)
	}

	lock := flock.New(filepath.Join(filepath.Dir(path), lockFileName))
	if err := lock.Lock(); err != nil {
		return Generated{}, fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock() //nolint:errcheck

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return Generated{}, fmt.Errorf("write default config: %w", err)
	}
	return Generated{Path: path, Config: cfg}, nil
}

// Bootstrap resolves the configuration at path. Only the configuration
// directory decides whether defaults are generated: when the directory exists
// but the file does not, Bootstrap returns the file-not-found error from Load
// instead of regenerating.
func Bootstrap(path string) (Result, error) {
	existed, err := EnsureDirectory(filepath.Dir(path))
	if err != nil {
		return Result{}, err
	}
	if !existed {
		generated, err := GenerateDefault(path)
		if err != nil {
			return Result{}, err
		}
		return Result{State: StateGenerated, Path: path, Generated: &generated}, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return Result{State: StateLoaded, Path: path, Config: cfg}, nil
}
