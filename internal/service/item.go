package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todolist-api/internal/idgen"
	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
)

const itemIDPrefix = "item-"

const (
	msgDescriptionRequired = "Description is required"
	msgInvalidStatus       = "Invalid status"
	msgListNotFound        = "List not found"
	msgItemNotFound        = "Item not found"
)

type AddItemInput struct {
	Description string
}

type UpdateItemInput struct {
	Description *string
	Status      *string
}

type ItemService struct {
	repo    repository.ItemRepository
	checker repository.ExistenceChecker
	newID   idgen.Generator
}

func NewItemService(repo repository.ItemRepository, checker repository.ExistenceChecker, newID idgen.Generator) *ItemService {
	if newID == nil {
		newID = idgen.Generate
	}
	return &ItemService{repo: repo, checker: checker, newID: newID}
}

// List returns the items of listID. An unknown list yields an empty slice.
func (s *ItemService) List(ctx context.Context, listID string) ([]model.Item, error) {
	items, err := s.repo.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Add creates a PENDING item under listID once the list is known to exist.
func (s *ItemService) Add(ctx context.Context, listID string, input AddItemInput) (model.Item, error) {
	if input.Description == "" {
		return model.Item{}, invalidInput(msgDescriptionRequired)
	}

	ok, err := s.checker.Exists(ctx, repository.TableLists, listID)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to check list: %w", err)
	}
	if !ok {
		return model.Item{}, notFound(msgListNotFound)
	}

	item := model.Item{
		ID:          s.newID(itemIDPrefix),
		ListID:      listID,
		Description: input.Description,
		Status:      model.ItemStatusPending,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// Update applies a partial update. Existence is checked by item id alone while
// the write and the re-read match id and list id, so a list id that does not
// own the item ends in ErrNotFound after a no-op write.
func (s *ItemService) Update(ctx context.Context, listID, itemID string, input UpdateItemInput) (model.Item, error) {
	var status *model.ItemStatus
	if input.Status != nil {
		st := model.ItemStatus(*input.Status)
		if !st.IsValid() {
			return model.Item{}, invalidInput(msgInvalidStatus)
		}
		status = &st
	}

	if err := s.requireItem(ctx, itemID); err != nil {
		return model.Item{}, err
	}

	if err := s.repo.Update(ctx, listID, itemID, input.Description, status); err != nil {
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	updated, err := s.repo.Get(ctx, listID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, notFound(msgItemNotFound)
		}
		return model.Item{}, fmt.Errorf("failed to get updated item: %w", err)
	}

	return updated, nil
}

// Delete removes the item. As with Update, existence is checked by item id
// alone; a mismatched list id deletes nothing and still succeeds.
func (s *ItemService) Delete(ctx context.Context, listID, itemID string) error {
	if err := s.requireItem(ctx, itemID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, listID, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func (s *ItemService) requireItem(ctx context.Context, itemID string) error {
	ok, err := s.checker.Exists(ctx, repository.TableItems, itemID)
	if err != nil {
		return fmt.Errorf("failed to check item: %w", err)
	}
	if !ok {
		return notFound(msgItemNotFound)
	}
	return nil
}
