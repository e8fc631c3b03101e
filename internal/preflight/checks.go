package preflight

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"

	"pwna/internal/fileutil"
)

// CheckConfigFile verifies that the config file exists and is a regular file.
func CheckConfigFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckPortAvailable verifies that bind:port can be bound right now.
func CheckPortAvailable(name, bind string, port int) Result {
	addr := net.JoinHostPort(bind, strconv.Itoa(port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", addr, err)}
	}
	_ = ln.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (available)", addr)}
}

// CheckLink reports whether dir is already linked into root under its base name.
func CheckLink(name, root, dir string) Result {
	target, err := filepath.Abs(dir)
	if err != nil {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (error: %v)", dir, err)}
	}
	path := filepath.Join(root, filepath.Base(target))

	present, err := fileutil.Exists(path)
	if err != nil {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !present {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (not linked yet)", path)}
	}

	dest, err := os.Readlink(path)
	if err != nil {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (name taken by a non-link entry)", path)}
	}
	if dest != target {
		return Result{Name: name, Optional: true, Detail: fmt.Sprintf("%s (name taken: points at %s)", path, dest)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s -> %s", path, dest)}
}
