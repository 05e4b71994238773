package imageview

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// placeCounter makes every Sixel placement string unique, so bubbletea's
// diff renderer never skips re-sending image data when only the
// surrounding text changed.
var placeCounter uint64

// SixelProtocol implements Protocol with Sixel graphics. Sixel has no
// terminal-side image store, so encoded data is kept here and emitted on
// every placement.
type SixelProtocol struct {
	mu     sync.RWMutex
	images map[uint32]string
}

// NewSixelProtocol creates a SixelProtocol.
func NewSixelProtocol() *SixelProtocol {
	return &SixelProtocol{images: make(map[uint32]string)}
}

// Name implements Protocol.
func (s *SixelProtocol) Name() string { return "sixel" }

// Prepare implements Protocol.
func (s *SixelProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel: %w", err)
	}

	s.mu.Lock()
	s.images[id] = buf.String()
	s.mu.Unlock()
	return "", nil
}

// Place implements Protocol.
func (s *SixelProtocol) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return ""
	}

	seq := atomic.AddUint64(&placeCounter, 1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b[u\x1b[%dm\x1b[0m", seq%255+1)
	return sb.String()
}

// Delete implements Protocol. Nothing is sent to the terminal.
func (s *SixelProtocol) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.images, id)
	s.mu.Unlock()
	return ""
}
