package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fanexid/addonlint/internal/logging"
)

func eventFor(path string) fsnotify.Event {
	return fsnotify.Event{Name: path, Op: fsnotify.Write}
}

func TestWatcher_FiresOnChange(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "addon"), 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := New(root,
		WithDebounce(50*time.Millisecond),
		WithLogger(logging.ForTest(t)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher a moment to be fully registered before writing.
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(root, "addon", "manifest.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not fire after a file change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestWatcher_CancelDuringDebounce(t *testing.T) {
	root := t.TempDir()

	// Debounce far longer than the test so cancellation lands while the
	// timer is armed; Run must still return promptly without firing.
	w, err := New(root,
		WithDebounce(time.Minute),
		WithLogger(logging.ForTest(t)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	fired := make(chan struct{}, 1)
	go func() {
		done <- w.Run(ctx, func() {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(root, "manifest.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancellation with a pending debounce")
	}

	select {
	case <-fired:
		t.Error("callback fired despite cancellation before the debounce elapsed")
	default:
	}
}

func TestWatcher_MissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	_ = err // fsnotify tolerates missing subtrees; just ensure no panic
}

func TestRelevant(t *testing.T) {
	root := t.TempDir()
	w, err := New(root)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	hidden := filepath.Join(root, ".git", "index")
	if w.relevant(eventFor(hidden)) {
		t.Error("changes under hidden directories should be ignored")
	}

	visible := filepath.Join(root, "addon", "manifest.json")
	if !w.relevant(eventFor(visible)) {
		t.Error("changes under visible directories should be relevant")
	}
}
