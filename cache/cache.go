/*
Package cache stores packed textures in an SQLite database so unchanged
images are not decoded and resampled on every build.
*/
package cache

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3" // register sqlite3 driver
	"github.com/zeebo/blake3"
)

// Cache is a texture cache.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache stored in file.
func Open(file string) (*Cache, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS texture (id INTEGER PRIMARY KEY NOT NULL, key TEXT NOT NULL UNIQUE, pixels BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives a cache key from the content of file and the settings that
// affect the result.
func Key(file string, colors int) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d", hex.EncodeToString(h.Sum(nil)), colors), nil
}

// Get returns the pixels stored under key, or nil if there are none.
func (c *Cache) Get(key string) ([]byte, error) {
	var pixels []byte
	switch err := c.db.QueryRow("SELECT pixels FROM texture WHERE key = ?", key).Scan(&pixels); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return pixels, nil
	default:
		return nil, err
	}
}

// Put stores pixels under key, replacing anything already there.
func (c *Cache) Put(key string, pixels []byte) error {
	if _, err := c.db.Exec("INSERT OR REPLACE INTO texture (key, pixels) VALUES (?, ?)", key, pixels); err != nil {
		return err
	}
	return nil
}
