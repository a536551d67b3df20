package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todolist-api/internal/model"
)

type SQLItemRepository struct {
	db *DB
}

func NewSQLItem(db *DB) *SQLItemRepository {
	return &SQLItemRepository{db: db}
}

func (r *SQLItemRepository) ListByList(ctx context.Context, listID string) ([]model.Item, error) {
	query := `
		SELECT id, list_id, description, status
		FROM items
		WHERE list_id = ?`

	rows, err := r.db.query(ctx, query, listID)
	if err != nil {
		return nil, storageError("list items", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storageError("scan item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate items", err)
	}

	return items, nil
}

func (r *SQLItemRepository) Create(ctx context.Context, item model.Item) error {
	query := `INSERT INTO items (id, list_id, description, status) VALUES (?, ?, ?, ?)`

	_, err := r.db.exec(ctx, query, item.ID, item.ListID, item.Description, string(item.Status))
	return storageError("insert item", err)
}

func (r *SQLItemRepository) Get(ctx context.Context, listID, itemID string) (model.Item, error) {
	query := `
		SELECT id, list_id, description, status
		FROM items
		WHERE id = ? AND list_id = ?`

	item, err := scanItem(r.db.queryRow(ctx, query, itemID, listID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, err
	}
	if err != nil {
		return model.Item{}, storageError("get item", err)
	}
	return item, nil
}

func (r *SQLItemRepository) Update(ctx context.Context, listID, itemID string, description *string, status *model.ItemStatus) error {
	query := `
		UPDATE items
		SET description = COALESCE(?, description), status = COALESCE(?, status)
		WHERE id = ? AND list_id = ?`

	var statusArg any
	if status != nil {
		statusArg = string(*status)
	}

	_, err := r.db.exec(ctx, query, description, statusArg, itemID, listID)
	return storageError("update item", err)
}

// Delete removes the item matching both ids. Zero matching rows is not an error.
func (r *SQLItemRepository) Delete(ctx context.Context, listID, itemID string) error {
	query := `DELETE FROM items WHERE id = ? AND list_id = ?`

	_, err := r.db.exec(ctx, query, itemID, listID)
	return storageError("delete item", err)
}

func (r *SQLItemRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.exec(ctx, `DELETE FROM items`)
	return storageError("delete items", err)
}

func scanItem(row scannable) (model.Item, error) {
	var i model.Item
	var status string
	if err := row.Scan(&i.ID, &i.ListID, &i.Description, &status); err != nil {
		return model.Item{}, fmt.Errorf("failed to scan item: %w", err)
	}
	i.Status = model.ItemStatus(status)
	return i, nil
}

var _ ItemRepository = (*SQLItemRepository)(nil)
