package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"pwna/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	values map[string]any
}

// NewHome points HOME at a fresh temp directory and returns it.
func NewHome(t testing.TB) string {
	t.Helper()

	home := filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	return home
}

// WriteConfig writes a YAML config file to path, creating parent
// directories. By default the HTTP root is an existing temp directory and the
// port is 8000; options override or drop either key.
func WriteConfig(t testing.TB, path string, opts ...ConfigOption) string {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "http_root")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir http root: %v", err)
	}

	builder := &configBuilder{
		values: map[string]any{
			config.KeyHTTPDirectory: root,
			config.KeyHTTPPort:      8000,
		},
	}
	for _, opt := range opts {
		opt(builder)
	}

	data, err := yaml.Marshal(builder.values)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// WithHTTPDirectory overrides the http_directory value.
func WithHTTPDirectory(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.values[config.KeyHTTPDirectory] = dir
	}
}

// WithHTTPPort overrides the http_port value.
func WithHTTPPort(port int) ConfigOption {
	return func(b *configBuilder) {
		b.values[config.KeyHTTPPort] = port
	}
}

// WithoutKey drops key from the written file.
func WithoutKey(key string) ConfigOption {
	return func(b *configBuilder) {
		delete(b.values, key)
	}
}
