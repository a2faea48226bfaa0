package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystemCopyTreeDirectory(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	if err := os.MkdirAll(filepath.Join(src, "fonts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "fonts", "a.woff"), []byte("font"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "robots.txt"), []byte("ok"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	if err := fsys.CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}

	for _, rel := range []string{"robots.txt", filepath.Join("fonts", "a.woff")} {
		if !fsys.FileExists(filepath.Join(dst, rel)) {
			t.Errorf("expected %s to be copied", rel)
		}
	}
}

func TestOSFileSystemCopyTreeFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "icon.png")
	dst := filepath.Join(dir, "out", "nested", "icon.png")

	if err := os.WriteFile(src, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	if err := fsys.CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}

	data, err := fsys.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "png" {
		t.Errorf("copied contents = %q, want %q", data, "png")
	}
}

func TestOSFileSystemCopyTreeMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := NewOSFileSystem().CopyTree(filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	if err == nil {
		t.Error("expected error for missing source")
	}
}
