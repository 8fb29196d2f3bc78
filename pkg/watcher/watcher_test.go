package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newWatcher(t *testing.T) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(20*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })
	fw.Start()
	return fw
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw := newWatcher(t)
	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))

	select {
	case got := <-changed:
		want, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresOtherFilesInDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw := newWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)

	assert.Zero(t, calls.Load())
}

func TestWatchDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw, err := NewFileWatcher(300*time.Millisecond, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })
	fw.Start()

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchMissingDirectoryFails(t *testing.T) {
	fw := newWatcher(t)
	err := fw.Watch([]string{filepath.Join(t.TempDir(), "missing", "photo.png")}, func(string) {})
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	fw, err := NewFileWatcher(DefaultDebounce, nil)
	require.NoError(t, err)
	fw.Start()

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close())
}
