package imageview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/peek/internal/geom"
	"github.com/llehouerou/peek/internal/imageload"
)

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// frameKey identifies what is currently in terminal memory.
type frameKey struct {
	src       string
	modTime   time.Time
	transform geom.Transform
	w, h      int
}

// Renderer turns the current image and transform into terminal commands.
// Each distinct frame is composed once; Render returns "" when nothing
// changed.
type Renderer struct {
	mu sync.Mutex

	proto Protocol
	cache *Cache
	bg    color.Color
	log   *slog.Logger

	id  uint32
	key frameKey
}

// NewRenderer creates a renderer. cache may be nil.
func NewRenderer(proto Protocol, cache *Cache, bg color.Color, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if bg == nil {
		bg = color.Black
	}
	return &Renderer{proto: proto, cache: cache, bg: bg, log: log}
}

// Protocol returns the output protocol, nil when images are disabled.
func (r *Renderer) Protocol() Protocol {
	return r.proto
}

// Render composes entry under t for the viewport and returns the command
// replacing the previous frame. It returns "" when the frame is unchanged
// or images are disabled.
func (r *Renderer) Render(entry imageload.Entry, t geom.Transform, vp Viewport) (string, error) {
	if r.proto == nil || entry.Image == nil {
		return "", nil
	}
	w, h := vp.PixelSize()
	if w <= 0 || h <= 0 {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := frameKey{src: entry.Path, modTime: entry.ModTime, transform: t, w: w, h: h}
	if r.id != 0 && r.key == key {
		return "", nil
	}

	var out string
	if r.id != 0 {
		out = r.proto.Delete(r.id)
	}
	r.id = 0

	id := getNextImageID()
	cmd, err := r.prepare(entry, t, w, h, id)
	if err != nil {
		return out, fmt.Errorf("render %s: %w", entry.Path, err)
	}
	r.id = id
	r.key = key
	return out + cmd, nil
}

func (r *Renderer) prepare(entry imageload.Entry, t geom.Transform, w, h int, id uint32) (string, error) {
	if t != geom.Identity {
		return r.proto.Prepare(Compose(entry.Image, t, w, h, r.bg), id)
	}

	// The unzoomed frame is the one worth keeping on disk.
	if data := r.cache.Get(entry.Path, entry.ModTime, w, h); data != nil {
		if _, ok := r.proto.(KittyProtocol); ok {
			return TransmitPNG(data, id), nil
		}
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return r.proto.Prepare(img, id)
		}
	}

	fitted, data, err := encodeFitted(entry, w, h, r.bg)
	if err != nil {
		return "", err
	}
	if err := r.cache.Put(entry.Path, entry.ModTime, w, h, data); err != nil {
		r.log.Debug("cache write failed", slog.String("src", entry.Path), slog.Any("err", err))
	}
	if _, ok := r.proto.(KittyProtocol); ok {
		return TransmitPNG(data, id), nil
	}
	return r.proto.Prepare(fitted, id)
}

func encodeFitted(entry imageload.Entry, w, h int, bg color.Color) (image.Image, []byte, error) {
	fitted := Compose(entry.Image, geom.Identity, w, h, bg)
	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return nil, nil, fmt.Errorf("encode png: %w", err)
	}
	return fitted, buf.Bytes(), nil
}

// Warm stores the unzoomed frame of entry for a w×h pixel canvas in cache,
// so a later Render at that size skips the resample. It reports whether
// a frame was written; an existing entry is left alone.
func Warm(cache *Cache, entry imageload.Entry, w, h int, bg color.Color) (bool, error) {
	if cache == nil || entry.Image == nil || w <= 0 || h <= 0 {
		return false, nil
	}
	if cache.Get(entry.Path, entry.ModTime, w, h) != nil {
		return false, nil
	}
	_, data, err := encodeFitted(entry, w, h, bg)
	if err != nil {
		return false, err
	}
	if err := cache.Put(entry.Path, entry.ModTime, w, h, data); err != nil {
		return false, fmt.Errorf("write cache: %w", err)
	}
	return true, nil
}

// Placement returns the command displaying the current frame over vp, or
// "" when there is none.
func (r *Renderer) Placement(vp Viewport) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.proto == nil || r.id == 0 {
		return ""
	}
	return r.proto.Place(r.id, vp.Row+1, vp.Col+1, vp.Cols, vp.Rows)
}

// HasImage reports whether a frame is ready to be placed.
func (r *Renderer) HasImage() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.id != 0
}

// Clear removes the current frame and returns the command doing so.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cmd string
	if r.proto != nil && r.id != 0 {
		cmd = r.proto.Delete(r.id)
	}
	r.id = 0
	r.key = frameKey{}
	return cmd
}
