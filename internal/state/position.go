package state

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// GalleryKey identifies a gallery by the paths it was built from, in any
// order.
func GalleryKey(paths []string) string {
	clean := make([]string, 0, len(paths))
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		clean = append(clean, filepath.Clean(p))
	}
	slices.Sort(clean)
	clean = slices.Compact(clean)
	sum := sha256.Sum256([]byte(strings.Join(clean, "\n")))
	return hex.EncodeToString(sum[:])
}

func getPosition(db *sql.DB, gallery string) (*Position, error) {
	row := db.QueryRow(`
		SELECT src, image_index, loop, updated_at
		FROM gallery_positions WHERE gallery = ?
	`, gallery)

	p := Position{Gallery: gallery}
	var src sql.NullString
	var loop int
	var updated int64
	err := row.Scan(&src, &p.Index, &loop, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved position is valid on first view
	}
	if err != nil {
		return nil, err
	}

	if src.Valid {
		p.Src = src.String
	}
	p.Loop = loop != 0
	p.UpdatedAt = time.Unix(updated, 0)
	return &p, nil
}

func savePosition(db *sql.DB, p Position) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	loop := 0
	if p.Loop {
		loop = 1
	}
	return withTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO gallery_positions (gallery, src, image_index, loop, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(gallery) DO UPDATE SET
				src = excluded.src,
				image_index = excluded.image_index,
				loop = excluded.loop,
				updated_at = excluded.updated_at
		`, p.Gallery, p.Src, p.Index, loop, p.UpdatedAt.Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM gallery_positions WHERE gallery NOT IN (
				SELECT gallery FROM gallery_positions ORDER BY updated_at DESC LIMIT ?
			)
		`, maxGalleries)
		return err
	})
}

// withTx executes fn within a transaction, rolling back on error.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
