package draftwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchReportsInitialAndSavedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(text string) { got <- text })
	}()

	waitFor(t, got, "first")

	if err := os.WriteFile(path, []byte("second draft"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, got, "second draft")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")
	if err := os.WriteFile(path, []byte("mine"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func(text string) { got <- text })
	}()
	waitFor(t, got, "mine")

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("not mine"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case text := <-got:
		t.Errorf("unexpected callback with %q", text)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "draft.txt"), nil, func(string) {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func waitFor(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case text := <-ch:
			if text == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}
