package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/moatarget/pkg/errors"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.pdf")

	if err := WriteFileAtomic(path, []byte("%PDF-1.3"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "%PDF-1.3" {
		t.Errorf("content = %q, want %%PDF-1.3", got)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("perm = %v, want 0644", info.Mode().Perm())
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("directory holds %v, want only target.pdf", names)
	}
}

func TestWriteFileAtomicReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.svg")
	if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestWriteFileAtomicFailures(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing directory", filepath.Join(dir, "missing", "target.pdf"), errors.ErrCodeInvalidPath},
		{"trailing slash", dir + "/", errors.ErrCodeInvalidPath},
		{"empty", "", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WriteFileAtomic(tt.path, []byte("data"), 0o644)
			if !errors.Is(err, tt.code) {
				t.Errorf("WriteFileAtomic(%q) error = %v, want %s", tt.path, err, tt.code)
			}
		})
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("failed writes left %v behind", names)
	}
}

func TestWriteFileAtomicRenameFailure(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory cannot be replaced by a file.
	dest := filepath.Join(dir, "out")
	if err := os.MkdirAll(filepath.Join(dest, "keep"), 0o755); err != nil {
		t.Fatal(err)
	}

	err := WriteFileAtomic(dest, []byte("data"), 0o644)
	if !errors.Is(err, errors.ErrCodeRenderingFailure) {
		t.Fatalf("WriteFileAtomic() error = %v, want RENDERING_FAILURE", err)
	}
	names := listDir(t, dir)
	if len(names) != 1 || names[0] != "out" {
		t.Errorf("directory holds %v, want only out", names)
	}
}

func TestAtomicFileCloseWithoutCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.png")
	if err := os.WriteFile(path, []byte("previous"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := CreateAtomic(path, 0o644)
	if err != nil {
		t.Fatalf("CreateAtomic() error = %v", err)
	}
	if _, err := f.Write([]byte("partial")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "previous" {
		t.Errorf("content = %q, want previous content kept", got)
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("directory holds %v, want only target.png", names)
	}

	if _, err := f.Write([]byte("late")); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Write() after Close error = %v, want INTERNAL_ERROR", err)
	}
	if err := f.Commit(); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Commit() after Close error = %v, want INTERNAL_ERROR", err)
	}
}
