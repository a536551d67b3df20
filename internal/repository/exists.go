package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Table names the tables the existence checker may query.
type Table int

const (
	TableLists Table = iota + 1
	TableItems
)

func (t Table) String() string {
	switch t {
	case TableLists:
		return "lists"
	case TableItems:
		return "items"
	default:
		return fmt.Sprintf("Table(%d)", int(t))
	}
}

// ExistenceChecker reports whether a row with the given primary key exists.
type ExistenceChecker interface {
	Exists(ctx context.Context, table Table, id string) (bool, error)
}

var existsQueries = map[Table]string{
	TableLists: `SELECT id FROM lists WHERE id = ?`,
	TableItems: `SELECT id FROM items WHERE id = ?`,
}

// Exists looks up id in table by primary key.
func (db *DB) Exists(ctx context.Context, table Table, id string) (bool, error) {
	query, ok := existsQueries[table]
	if !ok {
		return false, fmt.Errorf("unknown table %s", table)
	}

	var found sql.NullString
	err := db.queryRow(ctx, query, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	return true, nil
}

var _ ExistenceChecker = (*DB)(nil)
