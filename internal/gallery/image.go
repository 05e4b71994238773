// Package gallery holds the image descriptors a viewer navigates and builds
// galleries from files, directories and manifests.
package gallery

import (
	"path/filepath"
	"strings"
)

// Image describes one entry of a gallery. Order in a gallery is navigation
// order.
type Image struct {
	Src       string `koanf:"src"`
	Alt       string `koanf:"alt"`
	Title     string `koanf:"title"`
	Thumbnail string `koanf:"thumbnail"`
}

// Input is either a bare source or a full descriptor.
type Input interface {
	string | Image
}

// Normalize turns a bare source into a descriptor with an empty Alt.
// Descriptors are returned as-is.
func Normalize[T Input](in T) Image {
	switch v := any(in).(type) {
	case string:
		return Image{Src: v}
	case Image:
		return v
	}
	return Image{}
}

// NormalizeAll normalizes every input, keeping order.
func NormalizeAll[T Input](in ...T) []Image {
	out := make([]Image, len(in))
	for i, v := range in {
		out[i] = Normalize(v)
	}
	return out
}

// Label is the text shown for an image: its title, else its alt text,
// else the file name of its source.
func (img Image) Label() string {
	switch {
	case img.Title != "":
		return img.Title
	case img.Alt != "":
		return img.Alt
	}
	return filepath.Base(img.Src)
}

// ThumbnailSrc returns the thumbnail source, falling back to Src.
func (img Image) ThumbnailSrc() string {
	if img.Thumbnail != "" {
		return img.Thumbnail
	}
	return img.Src
}

var extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// IsImageFile reports whether path has a supported image extension.
func IsImageFile(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}
