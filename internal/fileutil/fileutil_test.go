package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.yaml")
	if err := WriteFileAtomic(path, []byte("data"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	dangling := filepath.Join(dir, "dangling")
	if err := os.Symlink(filepath.Join(dir, "gone"), dangling); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		path string
		want bool
	}{
		{file, true},
		{dangling, true},
		{filepath.Join(dir, "missing"), false},
	}
	for _, c := range cases {
		got, err := Exists(c.path)
		if err != nil {
			t.Fatalf("Exists(%s): %v", c.path, err)
		}
		if got != c.want {
			t.Fatalf("Exists(%s) = %v, want %v", c.path, got, c.want)
		}
	}
}

func TestLinkIfAbsent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link")

	created, err := LinkIfAbsent(target, link)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected link to be created")
	}
	dest, err := os.Readlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if dest != target {
		t.Fatalf("link points at %q, want %q", dest, target)
	}

	created, err = LinkIfAbsent(filepath.Join(dir, "other"), link)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("expected existing link to be left alone")
	}
	dest, _ = os.Readlink(link)
	if dest != target {
		t.Fatalf("existing link was rewritten to %q", dest)
	}
}

func TestLinkIfAbsent_MissingParent(t *testing.T) {
	dir := t.TempDir()
	_, err := LinkIfAbsent(dir, filepath.Join(dir, "missing", "link"))
	if err == nil {
		t.Fatal("expected error when link parent does not exist")
	}
}
