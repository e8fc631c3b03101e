package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// KeyHTTPDirectory names the HTTP root entry in the config file.
	KeyHTTPDirectory = "http_directory"
	// KeyHTTPPort names the default listen port entry in the config file.
	KeyHTTPPort = "http_port"
)

// Config mirrors the YAML configuration file. Fields are pointers so a key
// that is absent from the file stays distinguishable from a zero value; use
// Directory and Port to read them.
type Config struct {
	HTTPDirectory *string `yaml:"http_directory,omitempty" toml:"http_directory,omitempty"`
	HTTPPort      *int    `yaml:"http_port,omitempty" toml:"http_port,omitempty"`
}

// MissingKeyError reports a required key that was not present in the
// configuration file when it was first needed.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config: missing required key %q", e.Key)
}

// Directory returns the configured HTTP root with home-directory expansion
// applied. Relative paths are resolved against the current working directory.
func (c *Config) Directory() (string, error) {
	if c == nil || c.HTTPDirectory == nil {
		return "", &MissingKeyError{Key: KeyHTTPDirectory}
	}
	return expandPath(*c.HTTPDirectory)
}

// Port returns the configured default listen port. The value is not range
// checked; binding an invalid port fails when the server starts.
func (c *Config) Port() (int, error) {
	if c == nil || c.HTTPPort == nil {
		return 0, &MissingKeyError{Key: KeyHTTPPort}
	}
	return *c.HTTPPort, nil
}

// DefaultPath returns the absolute path to the default configuration file location.
func DefaultPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load reads and parses the configuration file at path. A missing file yields
// an error matching fs.ErrNotExist. Required keys are not checked here. Load
// only needs read access; writers replace the file atomically.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	if c == nil {
		return nil, errors.New("config: nil config")
	}
	return yaml.Marshal(c)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
