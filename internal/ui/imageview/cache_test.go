package imageview

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewCache_CustomDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")

	cache, err := NewCache(dir)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	want := filepath.Join(dir, cacheSubdir)
	if cache.Dir() != want {
		t.Errorf("Dir() = %q, want %q", cache.Dir(), want)
	}
	if info, err := os.Stat(want); err != nil || !info.IsDir() {
		t.Fatalf("cache directory not created: %v", err)
	}
}

func TestCache_PutAndGet(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	mod := time.Unix(1000, 0)
	data := []byte("png bytes")

	if got := cache.Get("/a.png", mod, 80, 40); got != nil {
		t.Error("expected miss before Put")
	}
	if err := cache.Put("/a.png", mod, 80, 40, data); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if got := cache.Get("/a.png", mod, 80, 40); !bytes.Equal(got, data) {
		t.Errorf("Get() = %q, want %q", got, data)
	}
}

func TestCache_KeyedBySizeAndVersion(t *testing.T) {
	cache, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	mod := time.Unix(1000, 0)
	if err := cache.Put("/a.png", mod, 80, 40, []byte("x")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		src  string
		mod  time.Time
		w, h int
	}{
		{"other size", "/a.png", mod, 80, 41},
		{"edited file", "/a.png", mod.Add(time.Second), 80, 40},
		{"other file", "/b.png", mod, 80, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cache.Get(tt.src, tt.mod, tt.w, tt.h); got != nil {
				t.Errorf("expected miss, got %q", got)
			}
		})
	}
}

func TestCache_Nil(t *testing.T) {
	var cache *Cache
	if got := cache.Get("/a.png", time.Time{}, 1, 1); got != nil {
		t.Error("nil cache never hits")
	}
	if err := cache.Put("/a.png", time.Time{}, 1, 1, []byte("x")); err != nil {
		t.Errorf("nil cache Put should be a no-op, got %v", err)
	}
	if cache.Dir() != "" {
		t.Error("nil cache has no dir")
	}
}

func TestCache_PruneRemovesOldEntries(t *testing.T) {
	dir := t.TempDir()
	cache := &Cache{dir: dir}

	old := filepath.Join(dir, "old.png")
	fresh := filepath.Join(dir, "fresh.png")
	for _, p := range []string{old, fresh} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-cacheMaxAge - time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	cache.prune()

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old entry should be pruned")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Error("fresh entry should be kept")
	}
}

func TestCacheKey(t *testing.T) {
	mod := time.Unix(5, 0)
	a := cacheKey("/a.png", mod, 1, 2)
	if a != cacheKey("/a.png", mod, 1, 2) {
		t.Error("key should be deterministic")
	}
	if a == cacheKey("/a.png", mod, 2, 1) {
		t.Error("key should include dimensions in order")
	}
	if len(a) != 64 {
		t.Errorf("key length = %d, want 64", len(a))
	}
}
