package imageload

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.NRGBA{R: 255, A: 255})
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 12, 7)

	e, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, "png", e.Format)
	assert.Equal(t, 12, e.Width())
	assert.Equal(t, 7, e.Height())
	assert.Equal(t, path, e.Path)
	assert.Positive(t, e.Size)
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Decode(filepath.Join(dir, "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o600))
	_, err = Decode(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")

	_, err = Decode(dir)
	require.Error(t, err)
}

func TestCache_HitReturnsSameImage(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 4, 4)
	c := NewCache(2)

	first, err := c.Get(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	second, err := c.Get(path)
	require.NoError(t, err, "served from memory after the file is gone")
	assert.Same(t, first.Image, second.Image)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 1, 1)
	b := writePNG(t, dir, "b.png", 1, 1)
	d := writePNG(t, dir, "d.png", 1, 1)
	c := NewCache(2)

	_, _ = c.Get(a)
	_, _ = c.Get(b)
	_, _ = c.Get(a) // a is now the most recent
	_, _ = c.Get(d)

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(a))
	assert.False(t, c.Contains(b))
	assert.True(t, c.Contains(d))
}

func TestCache_EvictAndClear(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 1, 1)
	b := writePNG(t, dir, "b.png", 1, 1)
	c := NewCache(0)

	_, _ = c.Get(a)
	_, _ = c.Get(b)
	c.Evict(a)
	c.Evict("unknown")
	assert.False(t, c.Contains(a))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
}

func TestCache_FailuresAreNotCached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "late.png")
	c := NewCache(2)

	_, err := c.Get(path)
	require.Error(t, err)
	assert.Zero(t, c.Len())

	writePNG(t, dir, "late.png", 2, 2)
	_, err = c.Get(path)
	require.NoError(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "a.png", 3, 2)
	c := NewCache(2)

	msg := c.Load(4, path)()
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 4, loaded.Index)
	assert.Equal(t, path, loaded.Src)
	assert.Equal(t, 3, loaded.Entry.Width())

	msg = c.Load(5, filepath.Join(dir, "nope.png"))()
	failed, ok := msg.(FailedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, 5, failed.Index)
	require.Error(t, failed.Err)
}

func TestPrefetch(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", 1, 1)
	c := NewCache(2)

	assert.Nil(t, c.Prefetch())

	cmd := c.Prefetch(a, filepath.Join(dir, "missing.png"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.True(t, c.Contains(a))
	assert.Equal(t, 1, c.Len())
}
