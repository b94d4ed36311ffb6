package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/quill/internal/watcher"
)

// startWatcher creates a source file in a temp dir and returns a running
// watcher over it plus its notification channel.
func startWatcher(t *testing.T) (string, <-chan struct{}) {
	t.Helper()

	srcPath := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(srcPath, []byte("select 1;"), 0644))

	w, err := watcher.New(watcher.Config{
		Path:        srcPath,
		DebounceDur: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	onChange, err := w.Start()
	require.NoError(t, err)
	return srcPath, onChange
}

func expectNotification(t *testing.T, ch <-chan struct{}, within time.Duration) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(within):
		t.Fatal("expected notification but got timeout")
	}
}

func expectSilence(t *testing.T, ch <-chan struct{}, during time.Duration) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("unexpected notification")
	case <-time.After(during):
	}
}

func TestWatcher_CoalescesWriteBursts(t *testing.T) {
	srcPath, onChange := startWatcher(t)

	for i := 0; i < 10; i++ {
		require.NoError(t, os.WriteFile(srcPath, []byte(fmt.Sprintf("select %d;", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	expectNotification(t, onChange, 200*time.Millisecond)
	expectSilence(t, onChange, 100*time.Millisecond)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	srcPath, onChange := startWatcher(t)

	// Pre-create the sibling so the later write is a Write event, not Create.
	otherPath := filepath.Join(filepath.Dir(srcPath), "notes.txt")
	require.NoError(t, os.WriteFile(otherPath, []byte("initial"), 0644))
	require.NoError(t, os.WriteFile(otherPath, []byte("changed"), 0644))

	expectSilence(t, onChange, 100*time.Millisecond)
}

func TestWatcher_NotifiesOnRenameReplace(t *testing.T) {
	srcPath, onChange := startWatcher(t)

	// Editors save by writing a temp file and renaming over the original.
	tmpPath := srcPath + ".tmp"
	require.NoError(t, os.WriteFile(tmpPath, []byte("select 2;"), 0644))
	require.NoError(t, os.Rename(tmpPath, srcPath))

	expectNotification(t, onChange, 200*time.Millisecond)
}

func TestWatcher_StopDoesNotBlock(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "query.sql")
	require.NoError(t, os.WriteFile(srcPath, []byte("select 1;"), 0644))

	w, err := watcher.New(watcher.DefaultConfig(srcPath))
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		assert.NoError(t, w.Stop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop() timed out")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := watcher.DefaultConfig("/src/query.sql")
	assert.Equal(t, "/src/query.sql", cfg.Path)
	assert.Equal(t, 250*time.Millisecond, cfg.DebounceDur)
}
