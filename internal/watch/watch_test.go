package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("change\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected an event")
	}
}

func TestWatcherSignalsUnderSubdir(t *testing.T) {
	dir := t.TempDir()
	refs := filepath.Join(dir, ".git", "refs")
	if err := os.MkdirAll(filepath.Join(refs, "heads"), 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(dir, []string{".git/refs"})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(refs, "heads", "main"), []byte("abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected an event")
	}
}

func TestWatcherSignalsAgainAfterDrain(t *testing.T) {
	dir := t.TempDir()

	w, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "first.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a first event")
	}

	if err := os.WriteFile(filepath.Join(dir, "second.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a second event")
	}
}

func TestWatcherCloseStopsDelivery(t *testing.T) {
	w, err := New(t.TempDir(), []string{"missing-subdir"})
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
}
