package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pwna/internal/config"
	"pwna/internal/testsupport"
)

type cliTestEnv struct {
	homeDir    string
	configPath string
	httpRoot   string
}

// setupCLITestEnv isolates HOME and writes a config whose HTTP root exists.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	home := testsupport.NewHome(t)
	configPath := filepath.Join(home, ".config", "pwna", "pwna.yaml")
	testsupport.WriteConfig(t, configPath, opts...)

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("load test config: %v", err)
	}
	// Left empty when the options dropped http_directory.
	root, _ := cfg.Directory()

	return &cliTestEnv{
		homeDir:    home,
		configPath: configPath,
		httpRoot:   root,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	return runCLIContext(t, context.Background(), args, configPath)
}

func runCLIContext(t *testing.T, ctx context.Context, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func waitFor(t *testing.T, duration time.Duration, fn func() bool) {
	t.Helper()
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %s", duration)
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
