// Package state remembers, per gallery, the image last shown so that
// opening the same gallery again resumes where it was left.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "peek"
	dbFileName   = "peek.db"
	saveDebounce = 500 * time.Millisecond

	// maxGalleries bounds the table; the least recently viewed galleries
	// are forgotten first.
	maxGalleries = 500
)

// Position is the resume point of one gallery.
type Position struct {
	Gallery   string // see GalleryKey
	Src       string
	Index     int
	Loop      bool
	UpdatedAt time.Time
}

type Manager struct {
	db       *sql.DB
	debounce time.Duration
	save     func(Position) error

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Position
	closed    bool
	saveErr   error
	// saving counts timer saves that got past the closed check.
	saving sync.WaitGroup
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at path, creating it if needed.
func OpenPath(path string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	m := &Manager{db: db, debounce: saveDebounce}
	m.save = func(p Position) error { return savePosition(m.db, p) }
	return m
}

// Close waits for a save in progress, writes a pending one and closes the
// database. It returns the first save error since the last Close.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.closed {
		m.saveMu.Unlock()
		return nil
	}
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.saving.Wait()

	if pending != nil {
		m.recordErr(m.save(*pending))
	}

	m.saveMu.Lock()
	saveErr := m.saveErr
	m.saveMu.Unlock()
	return errors.Join(saveErr, m.db.Close())
}

// GetPosition returns the saved position of gallery, nil if none.
func (m *Manager) GetPosition(gallery string) (*Position, error) {
	return getPosition(m.db, gallery)
}

// SavePosition records p. Writes are debounced: browsing quickly through
// a gallery only stores where it stopped. Saves after Close are dropped.
func (m *Manager) SavePosition(p Position) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		return
	}

	m.pending = &p

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, m.flush)
}

func (m *Manager) flush() {
	m.saveMu.Lock()
	if m.closed || m.pending == nil {
		m.saveMu.Unlock()
		return
	}
	pending := *m.pending
	m.pending = nil
	m.saving.Add(1)
	m.saveMu.Unlock()

	defer m.saving.Done()
	m.recordErr(m.save(pending))
}

func (m *Manager) recordErr(err error) {
	if err == nil {
		return
	}
	m.saveMu.Lock()
	if m.saveErr == nil {
		m.saveErr = fmt.Errorf("save position: %w", err)
	}
	m.saveMu.Unlock()
}
