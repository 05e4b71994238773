package gallery

import (
	"fmt"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Manifest is a gallery described in a TOML file:
//
//	title = "Holidays"
//
//	[[image]]
//	src = "beach.jpg"
//	alt = "Sunset over the beach"
//	thumbnail = "thumbs/beach.jpg"
type Manifest struct {
	Title  string  `koanf:"title"`
	Images []Image `koanf:"image"`
}

// LoadManifest reads a manifest. Relative sources and thumbnails are
// resolved against the manifest's directory. Entries without a source are
// dropped.
func LoadManifest(path string) (*Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	images := m.Images[:0]
	for _, img := range m.Images {
		if img.Src == "" {
			continue
		}
		img.Src = resolve(dir, img.Src)
		if img.Thumbnail != "" {
			img.Thumbnail = resolve(dir, img.Thumbnail)
		}
		images = append(images, img)
	}
	m.Images = images
	return &m, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
