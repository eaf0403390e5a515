package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.sdlrpx"))
	writeFile(t, filepath.Join(root, "nested", "deep", "b.sdlrpx"))
	writeFile(t, filepath.Join(root, "nested", "c.SDLRPX"))
	writeFile(t, filepath.Join(root, "other.txt"))

	got, err := FindFilesByExtension(root, ".sdlrpx")
	if err != nil {
		t.Fatalf("FindFilesByExtension() error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("found %d files, want 3: %v", len(got), got)
	}
	// WalkDir order is lexical: a.sdlrpx, nested/c.SDLRPX, nested/deep/b.sdlrpx
	want := []string{
		filepath.Join(root, "a.sdlrpx"),
		filepath.Join(root, "nested", "c.SDLRPX"),
		filepath.Join(root, "nested", "deep", "b.sdlrpx"),
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindFilesByExtensionEmptyResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"))

	got, err := FindFilesByExtension(root, ".sdlrpx")
	if err != nil {
		t.Fatalf("FindFilesByExtension() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("found %d files, want 0", len(got))
	}
}

func TestFindFilesByExtensionRejectsEmptyExtension(t *testing.T) {
	if _, err := FindFilesByExtension(t.TempDir(), ""); err == nil {
		t.Error("expected error for empty extension")
	}
}
