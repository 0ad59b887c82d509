package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/rulecache/internal/core/domain"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // SQLite driver
)

// sqliteBackend keeps entries in one table of a SQLite database in WAL mode.
// Readers and writers in other processes are coordinated by SQLite locking.
type sqliteBackend struct {
	db   *sql.DB
	path string

	getStmt *sql.Stmt
	putStmt *sql.Stmt
}

func openSQLite(path string, busyTimeout time.Duration) (*sqliteBackend, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path, busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	// A single long-lived connection keeps PRAGMA data_version meaningful.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	b := &sqliteBackend{db: db, path: path}
	if err := b.init(); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	return b, nil
}

func (b *sqliteBackend) init() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS entries (
		key BLOB PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	) WITHOUT ROWID;
	`
	if _, err := b.db.Exec(schema); err != nil {
		return err
	}

	var err error
	b.getStmt, err = b.db.Prepare(`SELECT value FROM entries WHERE key = ?`)
	if err != nil {
		return err
	}
	b.putStmt, err = b.db.Prepare(`
		INSERT INTO entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`)
	return err
}

func (b *sqliteBackend) get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := b.getStmt.QueryRow(key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return value, true, nil
}

func (b *sqliteBackend) put(key, value []byte) error {
	if _, err := b.putStmt.Exec(key, value, time.Now().UnixMilli()); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// version returns PRAGMA data_version, which changes when another connection commits.
func (b *sqliteBackend) version() (uint64, error) {
	var v int64
	if err := b.db.QueryRow(`PRAGMA data_version`).Scan(&v); err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return uint64(v), nil //nolint:gosec // data_version is never negative.
}

func (b *sqliteBackend) stats() (int, int64, error) {
	var (
		entries int
		size    int64
	)
	err := b.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(LENGTH(value)), 0) FROM entries`).Scan(&entries, &size)
	if err != nil {
		return 0, 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return entries, size, nil
}

func (b *sqliteBackend) clear() error {
	if _, err := b.db.Exec(`DELETE FROM entries`); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	return nil
}

func (b *sqliteBackend) location() string {
	return b.path
}

func (b *sqliteBackend) close() error {
	if b.getStmt != nil {
		_ = b.getStmt.Close()
	}
	if b.putStmt != nil {
		_ = b.putStmt.Close()
	}
	return b.db.Close()
}
