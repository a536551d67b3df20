package repository

import (
	"context"

	"github.com/jaekwang-park/todolist-api/internal/model"
)

type ListRepository interface {
	All(ctx context.Context) ([]model.List, error)
	Create(ctx context.Context, list model.ListInput) error
	Update(ctx context.Context, list model.ListInput) error
	DeleteAll(ctx context.Context) error
}
