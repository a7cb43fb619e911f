package archive

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalFS_WriteReadDelete(t *testing.T) {
	ctx := context.Background()
	fs, err := NewLocalFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalFS() error = %v", err)
	}

	data := []byte(`{"hello":"world"}`)
	if err := fs.Write(ctx, "a/b/doc.json", data); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := fs.Read(ctx, "a/b/doc.json")
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Read() = %q, want %q", got, data)
	}

	exists, err := fs.Exists(ctx, "a/b/doc.json")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}

	if err := fs.Delete(ctx, "a/b/doc.json"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	exists, err = fs.Exists(ctx, "a/b/doc.json")
	if err != nil || exists {
		t.Errorf("Exists() after delete = %v, %v, want false, nil", exists, err)
	}
}

func TestLocalFS_WriteLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	fs, _ := NewLocalFS(base)

	if err := fs.Write(ctx, "2025/06/doc.json", []byte("1")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(base, "2025", "06"))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want just the document: %v", len(entries), entries)
	}
}

func TestLocalFS_ListSkipsStrayTempFiles(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	fs, _ := NewLocalFS(base)

	fs.Write(ctx, "2025/06/doc.json", []byte("1"))
	// Simulate a writer that crashed between CreateTemp and Rename.
	stray := filepath.Join(base, "2025", "06", ".archive-12345")
	if err := os.WriteFile(stray, []byte("partial"), 0644); err != nil {
		t.Fatalf("planting stray temp file: %v", err)
	}

	paths, err := fs.List(ctx, "2025/06")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(paths) != 1 || paths[0] != "2025/06/doc.json" {
		t.Errorf("List() = %v, want only the document", paths)
	}
}

func TestLocalFS_List(t *testing.T) {
	ctx := context.Background()
	fs, _ := NewLocalFS(t.TempDir())

	fs.Write(ctx, "2025/06/one.json", []byte("1"))
	fs.Write(ctx, "2025/06/two.json", []byte("2"))
	fs.Write(ctx, "2025/07/three.json", []byte("3"))

	paths, err := fs.List(ctx, "2025/06")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("got %d paths, want 2: %v", len(paths), paths)
	}

	all, err := fs.List(ctx, "")
	if err != nil {
		t.Fatalf("List(\"\") error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d paths, want 3", len(all))
	}

	missing, err := fs.List(ctx, "nope")
	if err != nil {
		t.Fatalf("List(nope) error = %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("got %d paths for missing prefix, want 0", len(missing))
	}
}
