// ABOUTME: SQLite-based cache implementation for persistent session storage
// ABOUTME: Keeps viewer sessions in a local file so they survive application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"splitview-api/core/interfaces"
)

const (
	cleanupInterval = 5 * time.Minute

	// noExpiry marks rows stored with a zero TTL
	noExpiry = 0
)

const (
	schemaQuery = `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`
	getQuery     = "SELECT value FROM cache WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	setQuery     = "INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)"
	deleteQuery  = "DELETE FROM cache WHERE key = ?"
	cleanupQuery = "DELETE FROM cache WHERE expiry != 0 AND expiry <= ?"
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// NewSQLiteCache opens or creates the database at filePath. logger may be nil.
func NewSQLiteCache(filePath string, logger interfaces.Logger) (*Client, error) {
	if filePath == "" {
		filePath = "sessions.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	if _, err := db.Exec(schemaQuery); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go client.cleanupRoutine()

	return client, nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key, c.logger); err != nil {
		return nil, err
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, getQuery, key, time.Now().Unix()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key, c.logger); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	expiry := int64(noExpiry)
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	if _, err := c.db.ExecContext(ctx, setQuery, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key, c.logger); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// cleanupRoutine periodically removes expired entries until Close
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup removes expired entries
func (c *Client) cleanup() {
	if _, err := c.db.Exec(cleanupQuery, time.Now().Unix()); err != nil && c.logger != nil {
		c.logger.Warn("SQLite cleanup failed", map[string]interface{}{
			"file":  c.filePath,
			"error": err.Error(),
		})
	}
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	return c.db.Close()
}
