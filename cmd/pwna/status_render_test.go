package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"pwna/internal/preflight"
)

func TestRenderCheckLineNoColor(t *testing.T) {
	got := renderCheckLine(preflight.Result{Name: "HTTP root", Detail: "does not exist"}, false)
	want := fmt.Sprintf("  %-*s %s", checkLabelWidth, "HTTP root:", "[ERROR] does not exist")
	if got != want {
		t.Fatalf("renderCheckLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderCheckLineWithColor(t *testing.T) {
	got := renderCheckLine(preflight.Result{Name: "HTTP port", Passed: true, Detail: "available"}, true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestPreflightLines(t *testing.T) {
	results := []preflight.Result{
		{Name: "Config file", Passed: true, Detail: "/tmp/pwna.yaml"},
		{Name: "HTTP root", Detail: "missing"},
		{Name: "Working directory link", Optional: true, Detail: "not linked yet"},
		{Name: "Empty detail", Passed: true},
	}
	lines := preflightLines(results, false)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, want := range []string{"[OK] /tmp/pwna.yaml", "[ERROR] missing", "[WARN] not linked yet"} {
		if !strings.Contains(lines[i], want) {
			t.Fatalf("line %d: expected %s in %q", i, want, lines[i])
		}
	}
	if !strings.HasSuffix(lines[3], "[OK]") {
		t.Fatalf("expected bare verdict without detail, got %q", lines[3])
	}
}

func TestWriteStatusReportPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	writeStatusReport(&buf, "pwna status", []preflight.Result{{Name: "Config file", Passed: true}})

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes for a non-terminal writer, got %q", out)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 || lines[0] != "== pwna status ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected report layout: %q", out)
	}
}

func TestRenderKeyValueTableKeepsHeaderCase(t *testing.T) {
	out := renderKeyValueTable([][2]string{{"http_port", "8000"}, {"http_directory", missingValue}})
	for _, want := range []string{"Key", "Value", "http_port", "8000", "http_directory", missingValue} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
	if strings.Contains(out, "KEY") {
		t.Fatalf("expected header case to be preserved:\n%s", out)
	}
}
