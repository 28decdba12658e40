package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Handle is an open, migrated database together with its SQL dialect.
type Handle struct {
	DB      *sql.DB
	Dialect Dialect
}

// Conn returns the DBTX repositories should use outside transactions.
func (h *Handle) Conn() DBTX {
	return h.Dialect.Wrap(h.DB)
}

// UnitOfWork returns a UnitOfWork whose transactions speak h's dialect.
func (h *Handle) UnitOfWork() UnitOfWork {
	return NewUnitOfWork(h.DB, h.Dialect)
}

func (h *Handle) Close() error {
	return h.DB.Close()
}

// Open connects to the configured driver. For sqlite, target is a file path
// or ":memory:"; for postgres it is a connection string.
func Open(driver, target string) (*Handle, error) {
	switch driver {
	case DriverSQLite, "":
		conn, err := OpenDB(target)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: conn, Dialect: DialectSQLite}, nil
	case DriverPostgres:
		conn, err := OpenPostgres(target)
		if err != nil {
			return nil, err
		}
		return &Handle{DB: conn, Dialect: DialectPostgres}, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
}

// OpenDB opens a SQLite database at the given path.
// If path is ":memory:", uses a single-connection in-memory database.
// Sets WAL mode and enables foreign keys.
// Runs migrations automatically.
func OpenDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every new connection would get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db, DialectSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// OpenPostgres opens and migrates a PostgreSQL database.
func OpenPostgres(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("opening database: empty postgres connection string")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := Migrate(db, DialectPostgres); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
