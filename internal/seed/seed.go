// Package seed resets the store to a fixed set of sample lists and items.
package seed

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
)

func ptr(s string) *string { return &s }

// Lists are the sample lists inserted by Run.
var Lists = []model.ListInput{
	{ID: ptr("1"), Name: ptr("Shopping List"), Description: ptr("Groceries and household items")},
	{ID: ptr("2"), Name: ptr("Work Tasks"), Description: ptr("Important work-related tasks")},
	{ID: ptr("3"), Name: ptr("Personal Goals"), Description: ptr("Personal development goals for 2024")},
}

// Items are the sample items inserted by Run.
var Items = []model.Item{
	{ID: "item1", ListID: "1", Description: "Buy milk", Status: model.ItemStatusPending},
	{ID: "item2", ListID: "1", Description: "Get bread", Status: model.ItemStatusDone},
	{ID: "item3", ListID: "1", Description: "Purchase vegetables", Status: model.ItemStatusInProgress},
	{ID: "item4", ListID: "2", Description: "Complete project proposal", Status: model.ItemStatusInProgress},
	{ID: "item5", ListID: "2", Description: "Review code changes", Status: model.ItemStatusPending},
	{ID: "item6", ListID: "3", Description: "Learn TypeScript", Status: model.ItemStatusInProgress},
}

type Result struct {
	Lists int
	Items int
}

// Run deletes every item and list, then inserts the sample data. Items go
// first on delete and last on insert so list references stay valid.
func Run(ctx context.Context, lists repository.ListRepository, items repository.ItemRepository) (Result, error) {
	if err := items.DeleteAll(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to clear items: %w", err)
	}
	if err := lists.DeleteAll(ctx); err != nil {
		return Result{}, fmt.Errorf("failed to clear lists: %w", err)
	}

	var res Result
	for _, l := range Lists {
		if err := lists.Create(ctx, l); err != nil {
			return res, fmt.Errorf("failed to insert list %s: %w", *l.ID, err)
		}
		res.Lists++
	}
	for _, it := range Items {
		if err := items.Create(ctx, it); err != nil {
			return res, fmt.Errorf("failed to insert item %s: %w", it.ID, err)
		}
		res.Items++
	}

	return res, nil
}
