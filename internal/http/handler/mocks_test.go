package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/jaekwang-park/todolist-api/internal/http/handler"
	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
)

// mockListRepo for handler tests
type mockListRepo struct {
	allFn    func(ctx context.Context) ([]model.List, error)
	createFn func(ctx context.Context, list model.ListInput) error
	updateFn func(ctx context.Context, list model.ListInput) error
}

func (m *mockListRepo) All(ctx context.Context) ([]model.List, error) {
	return m.allFn(ctx)
}
func (m *mockListRepo) Create(ctx context.Context, list model.ListInput) error {
	return m.createFn(ctx, list)
}
func (m *mockListRepo) Update(ctx context.Context, list model.ListInput) error {
	return m.updateFn(ctx, list)
}
func (m *mockListRepo) DeleteAll(ctx context.Context) error {
	return nil
}

// mockItemRepo for handler tests
type mockItemRepo struct {
	listFn   func(ctx context.Context, listID string) ([]model.Item, error)
	createFn func(ctx context.Context, item model.Item) error
	getFn    func(ctx context.Context, listID, itemID string) (model.Item, error)
	updateFn func(ctx context.Context, listID, itemID string, description *string, status *model.ItemStatus) error
	deleteFn func(ctx context.Context, listID, itemID string) error
}

func (m *mockItemRepo) ListByList(ctx context.Context, listID string) ([]model.Item, error) {
	return m.listFn(ctx, listID)
}
func (m *mockItemRepo) Create(ctx context.Context, item model.Item) error {
	return m.createFn(ctx, item)
}
func (m *mockItemRepo) Get(ctx context.Context, listID, itemID string) (model.Item, error) {
	return m.getFn(ctx, listID, itemID)
}
func (m *mockItemRepo) Update(ctx context.Context, listID, itemID string, description *string, status *model.ItemStatus) error {
	return m.updateFn(ctx, listID, itemID, description, status)
}
func (m *mockItemRepo) Delete(ctx context.Context, listID, itemID string) error {
	return m.deleteFn(ctx, listID, itemID)
}
func (m *mockItemRepo) DeleteAll(ctx context.Context) error {
	return nil
}

// stubChecker reports ids in the set as present.
type stubChecker struct {
	present map[string]bool
	err     error
}

func (s *stubChecker) Exists(ctx context.Context, table repository.Table, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.present[id], nil
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var result handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return result.Error
}
