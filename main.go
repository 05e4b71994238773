package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/peek/internal/app"
	"github.com/llehouerou/peek/internal/config"
	"github.com/llehouerou/peek/internal/errmsg"
	"github.com/llehouerou/peek/internal/gallery"
	"github.com/llehouerou/peek/internal/state"
	"github.com/llehouerou/peek/internal/ui/imageview"
)

const usage = `Usage: peek [flags] <image|directory>...
       peek [flags] -manifest gallery.toml

Flags:
`

type flags struct {
	config    string
	manifest  string
	index     int
	loop      bool
	recursive bool
	hidden    bool
}

func parseFlags() flags {
	var f flags
	flag.StringVar(&f.config, "config", "", "extra config file, applied last")
	flag.StringVar(&f.manifest, "manifest", "", "gallery manifest (TOML)")
	flag.IntVar(&f.index, "index", 0, "1-based image to open first (default: where you left off)")
	flag.BoolVar(&f.loop, "loop", false, "wrap around at the ends of the gallery")
	flag.BoolVar(&f.recursive, "r", false, "descend into subdirectories")
	flag.BoolVar(&f.hidden, "a", false, "include hidden files and directories")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	return f
}

// openLog writes debug logs to the XDG state directory when PEEK_DEBUG is
// set; otherwise logs are dropped. The returned closer is never nil.
func openLog() (*slog.Logger, io.Closer) {
	if os.Getenv("PEEK_DEBUG") == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	path, err := xdg.StateFile(filepath.Join("peek", "peek.log"))
	if err != nil {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f
}

// session holds what must be released when the program ends.
type session struct {
	state   state.Interface
	watcher *gallery.Watcher
	logFile io.Closer
}

func (s *session) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.state != nil {
		if err := s.state.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	s.logFile.Close()
}

func loadGallery(ctx context.Context, f flags, cfg *config.Config, paths []string) ([]gallery.Image, string, error) {
	if f.manifest != "" {
		m, err := gallery.LoadManifest(f.manifest)
		if err != nil {
			return nil, "", errors.New(errmsg.Format(errmsg.OpManifestLoad, err))
		}
		return m.Images, m.Title, nil
	}

	images, err := gallery.Scan(ctx, paths, scanOptions(f, cfg))
	if err != nil {
		return nil, "", errors.New(errmsg.Format(errmsg.OpGalleryScan, err))
	}
	return images, "", nil
}

func scanOptions(f flags, cfg *config.Config) gallery.ScanOptions {
	return gallery.ScanOptions{
		Recursive: f.recursive || cfg.Recursive,
		Hidden:    f.hidden,
	}
}

func initialModel(f flags) (app.Model, *session, error) {
	log, logFile := openLog()
	s := &session{logFile: logFile}

	var extra []string
	if f.config != "" {
		extra = append(extra, f.config)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		s.Close()
		return app.Model{}, nil, errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	paths := flag.Args()
	if f.manifest == "" && len(paths) == 0 {
		paths = []string{"."}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	images, title, err := loadGallery(ctx, f, cfg, paths)
	if err != nil {
		s.Close()
		return app.Model{}, nil, err
	}
	if len(images) == 0 {
		s.Close()
		return app.Model{}, nil, errors.New(errmsg.Format(errmsg.OpGalleryEmpty, errors.New("no supported image given")))
	}
	log.Info("gallery loaded", slog.Int("images", len(images)), slog.String("title", title))

	opts := app.Options{
		Index:    f.index - 1,
		Loop:     f.loop,
		Protocol: imageview.Detect(cfg.GetImageProtocol()),
		Logger:   log,
	}
	if opts.Protocol != nil {
		log.Info("image protocol", slog.String("name", opts.Protocol.Name()))
	}

	if cache, err := imageview.NewCache(cfg.GetCacheDir()); err == nil {
		opts.RenderCache = cache
	} else {
		log.Warn(errmsg.Format(errmsg.OpCacheWrite, err))
	}

	if cfg.RememberPositionEnabled() {
		if st, err := state.Open(); err == nil {
			s.state = st
			opts.State = st
			opts.Gallery = galleryKey(f, paths)
			if f.index == 0 {
				pos, err := st.GetPosition(opts.Gallery)
				if err != nil {
					log.Warn("read resume position", slog.Any("err", err))
				}
				opts.Index = app.ResumeIndex(images, pos)
				if pos != nil && pos.Loop {
					opts.Loop = true
				}
			}
		} else {
			log.Warn("open state database", slog.Any("err", err))
		}
	}

	// A manifest lists its files, so only scanned galleries are watched.
	if f.manifest == "" && cfg.WatchEnabled() {
		if w, err := gallery.Watch(paths, scanOptions(f, cfg), gallery.DefaultSettle); err == nil {
			s.watcher = w
			opts.Changes = w.Changes()
			opts.Rescan = func(ctx context.Context) ([]gallery.Image, error) {
				return gallery.Scan(ctx, paths, scanOptions(f, cfg))
			}
			go logWatchErrors(log, w)
		} else {
			log.Warn("watch gallery", slog.Any("err", err))
		}
	}

	m := app.New(cfg, images, opts)
	return m, s, nil
}

func galleryKey(f flags, paths []string) string {
	if f.manifest != "" {
		return state.GalleryKey([]string{f.manifest})
	}
	return state.GalleryKey(paths)
}

func logWatchErrors(log *slog.Logger, w *gallery.Watcher) {
	for err := range w.Errors() {
		log.Debug("watch error", slog.Any("err", err))
	}
}

func main() {
	f := parseFlags()

	m, s, err := initialModel(f)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	s.Close()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
