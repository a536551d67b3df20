package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"github.com/jaekwang-park/todolist-api/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS lists (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT
);

CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	list_id TEXT NOT NULL,
	description TEXT NOT NULL,
	status TEXT CHECK(status IN ('PENDING', 'IN-PROGRESS', 'DONE')) NOT NULL,
	FOREIGN KEY(list_id) REFERENCES lists(id)
);`

// DB is the process-wide store handle. Queries are written with ? placeholders
// and rebound for drivers that use numbered parameters.
type DB struct {
	*sql.DB
	driver string
}

// Open connects to the configured store and creates the lists and items
// tables when they are missing.
func Open(ctx context.Context, cfg config.DBConfig) (*DB, error) {
	sqlDB, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Driver == config.DriverSQLite || cfg.Driver == config.DriverSQLite3 {
		// Only one writer at a time for SQLite; requests queue on the pool.
		sqlDB.SetMaxOpenConns(1)
		if _, err := sqlDB.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to set busy timeout: %w", err)
		}
	}

	db := &DB{DB: sqlDB, driver: cfg.Driver}
	if err := db.createSchema(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func (db *DB) createSchema(ctx context.Context) error {
	// one statement per Exec
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (db *DB) rebind(query string) string {
	if db.driver != config.DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.ExecContext(ctx, db.rebind(query), args...)
}

func (db *DB) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.QueryContext(ctx, db.rebind(query), args...)
}

func (db *DB) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.QueryRowContext(ctx, db.rebind(query), args...)
}

type scannable interface {
	Scan(dest ...any) error
}
