package service

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
)

type UpdateListInput struct {
	Name        *string
	Description *string
}

type ListService struct {
	repo repository.ListRepository
}

func NewListService(repo repository.ListRepository) *ListService {
	return &ListService{repo: repo}
}

func (s *ListService) List(ctx context.Context) ([]model.List, error) {
	lists, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// Create inserts the list with the caller's id. Duplicate ids are left to the
// store's primary key to reject.
func (s *ListService) Create(ctx context.Context, input model.ListInput) (model.ListInput, error) {
	if err := s.repo.Create(ctx, input); err != nil {
		return model.ListInput{}, fmt.Errorf("failed to create list: %w", err)
	}
	return input, nil
}

// Update overwrites name and description without checking that the list
// exists. Absent fields are cleared, unlike item updates.
func (s *ListService) Update(ctx context.Context, listID string, input UpdateListInput) (model.ListInput, error) {
	in := model.ListInput{
		ID:          &listID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Update(ctx, in); err != nil {
		return model.ListInput{}, fmt.Errorf("failed to update list: %w", err)
	}
	return in, nil
}
