// Command peekwarm renders the fitted frames of a gallery into the image
// cache ahead of time, so peek shows them without resampling.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/imageload"
	"github.com/llehouerou/peek/internal/ui/imageview"
)

func main() {
	cols := flag.Int("cols", 0, "terminal width in cells (default: this terminal)")
	rows := flag.Int("rows", 0, "terminal height in cells (default: this terminal)")
	recursive := flag.Bool("r", false, "descend into subdirectories")
	jobs := flag.Int("j", runtime.NumCPU(), "images rendered in parallel")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if *cols <= 0 || *rows <= 0 {
		w, h, err := term.GetSize(os.Stdout.Fd())
		if err != nil {
			log.Fatal(errmsg.Format(errmsg.OpTerminalSize, err), " (pass -cols and -rows)")
		}
		*cols, *rows = w, h
	}

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	images, err := gallery.Scan(context.Background(), paths, gallery.ScanOptions{
		Recursive: *recursive || cfg.Recursive,
	})
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpGalleryScan, err))
	}
	if len(images) == 0 {
		log.Fatalf("No image found in %v", paths)
	}

	cache, err := imageview.NewCache(cfg.GetCacheDir())
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpCacheWrite, err))
	}

	// Lay the viewer out as peek would, to get the same canvas size.
	next, _ := app.New(cfg, images, app.Options{}).Update(tea.WindowSizeMsg{Width: *cols, Height: *rows})
	w, h := next.(app.Model).ImageViewport().PixelSize()
	if w <= 0 || h <= 0 {
		log.Fatalf("Terminal of %dx%d cells leaves no room for images", *cols, *rows)
	}
	log.Printf("Warming %d images at %dx%d px into %s", len(images), w, h, cache.Dir())

	bg := imageview.ParseBackground(cfg.GetBackground())
	start := time.Now()
	var written, failed atomic.Int64
	var bytes atomic.Int64

	work := make(chan gallery.Image)
	var wg sync.WaitGroup
	for range max(*jobs, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for img := range work {
				entry, err := imageload.Decode(img.Src)
				if err != nil {
					failed.Add(1)
					log.Print("  ", errmsg.FormatWith(errmsg.OpImageDecode, img.Src, err))
					continue
				}
				ok, err := imageview.Warm(cache, entry, w, h, bg)
				if err != nil {
					failed.Add(1)
					log.Print("  ", errmsg.FormatWith(errmsg.OpCacheWrite, img.Src, err))
					continue
				}
				if ok {
					written.Add(1)
					bytes.Add(entry.Size)
				}
			}
		}()
	}
	for _, img := range images {
		work <- img
	}
	close(work)
	wg.Wait()

	//nolint:gosec // sizes are non-negative
	log.Printf("Done in %s: %d frames written from %s of images, %d already cached, %d failed",
		time.Since(start).Round(time.Millisecond), written.Load(), humanize.Bytes(uint64(bytes.Load())),
		int64(len(images))-written.Load()-failed.Load(), failed.Load())
}
