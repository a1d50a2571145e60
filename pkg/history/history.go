// Package history records which icons were copied from the browser, so the
// sidebar can offer them again and `lv history` can report on them.
//
// The store is a single SQLite file in the XDG state directory. Builds with
// cgo use github.com/mattn/go-sqlite3; others fall back to the pure Go
// modernc.org/sqlite driver.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// RelPath is the database location relative to the XDG state home.
const RelPath = "lv/history.db"

// Copy is one copied icon together with the style it was copied with.
type Copy struct {
	ID          int64
	Icon        string
	Color       string
	Size        string
	RotationDeg float64
	CopiedAt    time.Time
}

// Usage is how often an icon was copied.
type Usage struct {
	Icon  string
	Count int
	Last  time.Time
}

// DB handles history persistence.
type DB struct {
	db *sql.DB
}

// DefaultPath returns the database path under the XDG state home, creating
// its directory.
func DefaultPath() (string, error) {
	p, err := xdg.StateFile(RelPath)
	if err != nil {
		return "", fmt.Errorf("history path: %w", err)
	}
	return p, nil
}

// Open opens or creates the history database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	h := &DB{db: db}
	if err := h.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return h, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS copies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		icon TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		size TEXT NOT NULL DEFAULT '',
		rotation REAL NOT NULL DEFAULT 0,
		copied_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_copies_icon ON copies(icon);
	CREATE INDEX IF NOT EXISTS idx_copies_copied_at ON copies(copied_at);
	`
	_, err := d.db.Exec(schema)
	return err
}

// Record stores c and sets its ID. A zero CopiedAt is set to now.
func (d *DB) Record(c *Copy) error {
	if c.Icon == "" {
		return errors.New("record copy: icon name is required")
	}
	if c.CopiedAt.IsZero() {
		c.CopiedAt = time.Now()
	}
	result, err := d.db.Exec(`
		INSERT INTO copies (icon, color, size, rotation, copied_at)
		VALUES (?, ?, ?, ?, ?)
	`, c.Icon, c.Color, c.Size, c.RotationDeg, c.CopiedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record copy: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("record copy: %w", err)
	}
	c.ID = id
	return nil
}

// Recent returns up to limit distinct icon names, most recently copied
// first.
func (d *DB) Recent(limit int) ([]string, error) {
	rows, err := d.db.Query(`
		SELECT icon
		FROM copies
		GROUP BY icon
		ORDER BY MAX(copied_at) DESC, MAX(id) DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent copies: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Top returns up to limit icons by copy count, ties broken by name.
func (d *DB) Top(limit int) ([]Usage, error) {
	rows, err := d.db.Query(`
		SELECT icon, COUNT(*) AS n, MAX(copied_at)
		FROM copies
		GROUP BY icon
		ORDER BY n DESC, icon ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top copies: %w", err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		var last int64
		if err := rows.Scan(&u.Icon, &u.Count, &last); err != nil {
			return nil, err
		}
		u.Last = time.Unix(0, last)
		out = append(out, u)
	}
	return out, rows.Err()
}

// Log returns up to limit copies, newest first.
func (d *DB) Log(limit int) ([]Copy, error) {
	rows, err := d.db.Query(`
		SELECT id, icon, color, size, rotation, copied_at
		FROM copies
		ORDER BY copied_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("copy log: %w", err)
	}
	defer rows.Close()

	var out []Copy
	for rows.Next() {
		var c Copy
		var at int64
		if err := rows.Scan(&c.ID, &c.Icon, &c.Color, &c.Size, &c.RotationDeg, &at); err != nil {
			return nil, err
		}
		c.CopiedAt = time.Unix(0, at)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Clear deletes every record and returns how many were removed.
func (d *DB) Clear() (int64, error) {
	result, err := d.db.Exec(`DELETE FROM copies`)
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	return result.RowsAffected()
}
