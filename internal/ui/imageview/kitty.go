package imageview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	// Kitty protocol requires chunked transmission; each chunk carries at
	// most this many base64 bytes.
	chunkSize = 4096
)

// KittyProtocol implements Protocol with the Kitty graphics protocol.
// Images are transmitted once and placed by ID.
type KittyProtocol struct{}

// Name implements Protocol.
func (KittyProtocol) Name() string { return "kitty" }

// Prepare implements Protocol.
func (KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	return TransmitImage(img, id)
}

// Place implements Protocol.
func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return PlaceImage(id, row, col, width, height)
}

// Delete implements Protocol.
func (KittyProtocol) Delete(id uint32) string {
	return DeleteImage(id)
}

// TransmitImage encodes img as PNG and returns the transmit-only (a=t)
// command storing it under id.
func TransmitImage(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return TransmitPNG(buf.Bytes(), id), nil
}

// TransmitPNG returns the chunked transmit command for pre-encoded PNG
// data.
//
//	a=t   transmit only
//	f=100 PNG payload
//	q=2   suppress terminal responses
//	m=1   more chunks follow
func TransmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded) || i == 0; i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// PlaceImage returns the sequence displaying a transmitted image at the
// 1-based (row, col) over width x height cells. A fixed placement ID means a
// new placement replaces the previous one without leaving ghosts; C=1 keeps
// the cursor in place.
func PlaceImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// DeleteImage returns the sequence deleting an image and its placements.
func DeleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}
