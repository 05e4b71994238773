// Package imageload decodes gallery images off the UI goroutine and keeps
// the decoded results in memory.
package imageload

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"sync"
	"time"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// DefaultCapacity is the number of decoded images kept by NewCache.
const DefaultCapacity = 8

// Entry is a decoded image and what is known about its file.
type Entry struct {
	Path    string
	Image   image.Image
	Format  string
	Size    int64
	ModTime time.Time
}

// Width returns the image width in pixels.
func (e Entry) Width() int {
	return e.Image.Bounds().Dx()
}

// Height returns the image height in pixels.
func (e Entry) Height() int {
	return e.Image.Bounds().Dy()
}

// Cache keeps decoded images keyed by path. Once full, the least recently
// used entry is dropped. It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]Entry
	order    []string // least recently used first
}

// NewCache creates a cache holding up to capacity images. A capacity below
// 1 uses DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]Entry),
	}
}

// Get returns the decoded image at path, reading it from disk on a miss.
func (c *Cache) Get(path string) (Entry, error) {
	c.mu.Lock()
	if e, ok := c.entries[path]; ok {
		c.touch(path)
		c.mu.Unlock()
		return e, nil
	}
	c.mu.Unlock()

	e, err := Decode(path)
	if err != nil {
		return Entry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[path]; !ok {
		c.entries[path] = e
		c.order = append(c.order, path)
		c.evict()
	}
	return e, nil
}

// Contains reports whether path is cached.
func (c *Cache) Contains(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[path]
	return ok
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Evict removes path from the cache.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[path]; !ok {
		return
	}
	delete(c.entries, path)
	c.remove(path)
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Entry)
	c.order = nil
}

func (c *Cache) touch(path string) {
	c.remove(path)
	c.order = append(c.order, path)
}

func (c *Cache) remove(path string) {
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *Cache) evict() {
	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Decode reads and decodes the image at path without caching it.
func Decode(path string) (Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Entry{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Entry{}, fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return Entry{}, fmt.Errorf("open image: %s is a directory", path)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return Entry{}, fmt.Errorf("decode image: %w", err)
	}
	return Entry{
		Path:    path,
		Image:   img,
		Format:  format,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}
