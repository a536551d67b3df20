package repository

import (
	"context"

	"github.com/jaekwang-park/todolist-api/internal/model"
)

type ItemRepository interface {
	ListByList(ctx context.Context, listID string) ([]model.Item, error)
	Create(ctx context.Context, item model.Item) error
	// Get returns sql.ErrNoRows (wrapped) when no item matches both ids.
	Get(ctx context.Context, listID, itemID string) (model.Item, error)
	// Update replaces description and status only where the new value is non-nil.
	Update(ctx context.Context, listID, itemID string, description *string, status *model.ItemStatus) error
	Delete(ctx context.Context, listID, itemID string) error
	DeleteAll(ctx context.Context) error
}
