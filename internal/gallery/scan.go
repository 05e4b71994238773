package gallery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ScanOptions controls directory expansion.
type ScanOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Hidden includes dot files and dot directories.
	Hidden bool
}

// Scan builds a gallery from paths. Files are kept in the order given when
// they are supported images; directories are expanded into their images,
// sorted by path. Titles default to the file name.
func Scan(ctx context.Context, paths []string, opts ScanOptions) ([]Image, error) {
	var images []Image
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			if IsImageFile(p) {
				images = append(images, fileImage(p))
			}
			continue
		}

		found, err := scanDir(ctx, p, opts)
		if err != nil {
			return nil, err
		}
		images = append(images, found...)
	}
	return images, nil
}

func scanDir(ctx context.Context, root string, opts ScanOptions) ([]Image, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			return nil //nolint:nilerr // skip unreadable entries, keep walking
		}
		if path == root {
			return nil
		}

		if !opts.Hidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !opts.Recursive {
				return fs.SkipDir
			}
			return nil
		}

		if IsImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	slices.Sort(files)
	images := make([]Image, len(files))
	for i, f := range files {
		images[i] = fileImage(f)
	}
	return images, nil
}

func fileImage(path string) Image {
	return Image{Src: path, Title: filepath.Base(path)}
}
