package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaekwang-park/todolist-api/internal/model"
)

type SQLListRepository struct {
	db *DB
}

func NewSQLList(db *DB) *SQLListRepository {
	return &SQLListRepository{db: db}
}

func (r *SQLListRepository) All(ctx context.Context) ([]model.List, error) {
	rows, err := r.db.query(ctx, `SELECT id, name, description FROM lists`)
	if err != nil {
		return nil, storageError("list lists", err)
	}
	defer rows.Close()

	lists := []model.List{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, storageError("scan list", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate lists", err)
	}

	return lists, nil
}

func (r *SQLListRepository) Create(ctx context.Context, list model.ListInput) error {
	query := `INSERT INTO lists (id, name, description) VALUES (?, ?, ?)`

	_, err := r.db.exec(ctx, query, list.ID, list.Name, list.Description)
	return storageError("insert list", err)
}

// Update overwrites name and description. Absent fields are written as NULL
// and a missing id affects no rows without error.
func (r *SQLListRepository) Update(ctx context.Context, list model.ListInput) error {
	query := `UPDATE lists SET name = ?, description = ? WHERE id = ?`

	_, err := r.db.exec(ctx, query, list.Name, list.Description, list.ID)
	return storageError("update list", err)
}

func (r *SQLListRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.exec(ctx, `DELETE FROM lists`)
	return storageError("delete lists", err)
}

func scanList(row scannable) (model.List, error) {
	var id, name, description sql.NullString
	if err := row.Scan(&id, &name, &description); err != nil {
		return model.List{}, fmt.Errorf("failed to scan list: %w", err)
	}

	l := model.List{ID: id.String, Name: name.String}
	if description.Valid {
		l.Description = &description.String
	}
	return l, nil
}

var _ ListRepository = (*SQLListRepository)(nil)
