package gallery

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSettle = 20 * time.Millisecond

func waitChange(t *testing.T, w *Watcher, timeout time.Duration) bool {
	t.Helper()
	select {
	case _, ok := <-w.Changes():
		return ok
	case <-time.After(timeout):
		return false
	}
}

func TestWatch_ReportsNewImage(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch([]string{dir}, ScanOptions{}, testSettle)
	require.NoError(t, err)
	defer w.Close()

	touch(t, filepath.Join(dir, "new.png"))
	assert.True(t, waitChange(t, w, 2*time.Second), "image creation is a change")
}

func TestWatch_CoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch([]string{dir}, ScanOptions{}, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	for _, name := range []string{"a.png", "b.png", "c.jpg"} {
		touch(t, filepath.Join(dir, name))
	}
	require.True(t, waitChange(t, w, 2*time.Second))
	assert.False(t, waitChange(t, w, 300*time.Millisecond), "one burst, one change")
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch([]string{dir}, ScanOptions{}, testSettle)
	require.NoError(t, err)
	defer w.Close()

	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, ".hidden.png"))
	assert.False(t, waitChange(t, w, 200*time.Millisecond))
}

func TestWatch_RecursiveFollowsNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch([]string{dir}, ScanOptions{Recursive: true}, testSettle)
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.True(t, waitChange(t, w, 2*time.Second), "a new directory is a change")

	touch(t, filepath.Join(sub, "deep.png"))
	assert.True(t, waitChange(t, w, 2*time.Second), "images in the new directory are watched")
}

func TestWatch_SkipsPlainFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "one.png")
	touch(t, file)

	w, err := Watch([]string{file}, ScanOptions{}, testSettle)
	require.NoError(t, err)
	defer w.Close()

	touch(t, filepath.Join(dir, "two.png"))
	assert.False(t, waitChange(t, w, 200*time.Millisecond))
}

func TestWatch_CloseEndsChanges(t *testing.T) {
	w, err := Watch([]string{t.TempDir()}, ScanOptions{}, testSettle)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	_, ok := <-w.Changes()
	assert.False(t, ok)
	assert.NoError(t, w.Close(), "second close is a no-op")
}
