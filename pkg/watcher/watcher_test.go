package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	if err := os.WriteFile(path, []byte("solid a\nendsolid a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fw, err := NewFileWatcher(50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("solid b\nendsolid b\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	abs, _ := filepath.Abs(path)
	select {
	case got := <-changed:
		if got != abs {
			t.Errorf("callback path failed: expected %s, got %s", abs, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback not called")
	}

	// The burst collapses into a single callback
	select {
	case <-changed:
		t.Error("debounced writes should trigger one callback")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestFileWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.stl")
	other := filepath.Join(dir, "other.stl")
	for _, p := range []string{path, other} {
		if err := os.WriteFile(p, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 10)
	if err := fw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case p := <-changed:
		t.Errorf("unexpected callback for %s", p)
	case <-time.After(200 * time.Millisecond):
	}

	if err := fw.RemoveAll(); err != nil {
		t.Errorf("RemoveAll failed: %v", err)
	}
}
