package imageview

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheSubdir   = "fitted"
	cacheMaxAge   = 30 * 24 * time.Hour
	pruneInterval = 24 * time.Hour
)

// Cache stores PNG renderings of images fitted to a canvas size, so
// reopening an image at the same terminal size skips the resample.
type Cache struct {
	dir        string
	lastPruned time.Time
}

// NewCache creates a disk cache under baseDir, or under the XDG cache
// directory when baseDir is empty. Old entries are pruned in the
// background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = filepath.Join(xdg.CacheHome, "peek")
	}

	dir := filepath.Join(baseDir, cacheSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	c := &Cache{dir: dir}
	go c.prune()
	return c, nil
}

// Dir returns the directory holding the entries.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// cacheKey identifies a source file version at a canvas size.
func cacheKey(src string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", src, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(src string, modTime time.Time, width, height int) string {
	return filepath.Join(c.dir, cacheKey(src, modTime, width, height)+".png")
}

// Get returns cached PNG data, or nil on a miss.
func (c *Cache) Get(src string, modTime time.Time, width, height int) []byte {
	if c == nil {
		return nil
	}

	path := c.path(src, modTime, width, height)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file so frequently viewed images survive pruning.
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data.
func (c *Cache) Put(src string, modTime time.Time, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(src, modTime, width, height), data, 0o600)
}

// prune removes entries older than cacheMaxAge.
func (c *Cache) prune() {
	if c == nil || time.Since(c.lastPruned) < pruneInterval {
		return
	}
	c.lastPruned = time.Now()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
