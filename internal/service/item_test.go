package service_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
	"github.com/jaekwang-park/todolist-api/internal/service"
)

// mockItemRepo implements repository.ItemRepository for testing
type mockItemRepo struct {
	listFn      func(ctx context.Context, listID string) ([]model.Item, error)
	createFn    func(ctx context.Context, item model.Item) error
	getFn       func(ctx context.Context, listID, itemID string) (model.Item, error)
	updateFn    func(ctx context.Context, listID, itemID string, description *string, status *model.ItemStatus) error
	deleteFn    func(ctx context.Context, listID, itemID string) error
	deleteAllFn func(ctx context.Context) error
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
	return m.deleteAllFn(ctx)
}

// mockChecker answers existence from fixed sets and records every lookup.
type mockChecker struct {
	lists map[string]bool
	items map[string]bool
	err   error
	calls []repository.Table
}

func (m *mockChecker) Exists(ctx context.Context, table repository.Table, id string) (bool, error) {
	m.calls = append(m.calls, table)
	if m.err != nil {
		return false, m.err
	}
	if table == repository.TableLists {
		return m.lists[id], nil
	}
	return m.items[id], nil
}

func fixedID(prefix string) string { return prefix + "1700000000000-abcdefghi" }

func sampleItem() model.Item {
	return model.Item{
		ID:          "item-1",
		ListID:      "L1",
		Description: "Buy milk",
		Status:      model.ItemStatusPending,
	}
}

func wantClientError(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
	var ce *service.ClientError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ClientError, got %T", err)
	}
	if ce.Message != msg {
		t.Errorf("expected message %q, got %q", msg, ce.Message)
	}
}

func TestItemService_List(t *testing.T) {
	repo := &mockItemRepo{
		listFn: func(ctx context.Context, listID string) ([]model.Item, error) {
			if listID != "L1" {
				return []model.Item{}, nil
			}
			return []model.Item{sampleItem()}, nil
		},
	}
	checker := &mockChecker{}
	svc := service.NewItemService(repo, checker, fixedID)

	got, err := svc.List(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
	if len(checker.calls) != 0 {
		t.Errorf("listing items must not check the list, got %d lookups", len(checker.calls))
	}
}

func TestItemService_Add(t *testing.T) {
	tests := []struct {
		name       string
		listID     string
		input      service.AddItemInput
		checkErr   error
		repoErr    error
		wantKind   error
		wantMsg    string
		wantErr    bool
		wantInsert bool
	}{
		{
			name:       "success",
			listID:     "L1",
			input:      service.AddItemInput{Description: "Buy milk"},
			wantInsert: true,
		},
		{
			name:     "empty description",
			listID:   "L1",
			input:    service.AddItemInput{Description: ""},
			wantKind: service.ErrInvalidInput,
			wantMsg:  "Description is required",
		},
		{
			name:     "unknown list",
			listID:   "missing",
			input:    service.AddItemInput{Description: "Buy milk"},
			wantKind: service.ErrNotFound,
			wantMsg:  "List not found",
		},
		{
			name:     "existence check fails",
			listID:   "L1",
			input:    service.AddItemInput{Description: "Buy milk"},
			checkErr: fmt.Errorf("disk I/O error"),
			wantErr:  true,
		},
		{
			name:       "insert fails",
			listID:     "L1",
			input:      service.AddItemInput{Description: "Buy milk"},
			repoErr:    &repository.StorageError{Op: "insert item", Err: fmt.Errorf("database is locked")},
			wantErr:    true,
			wantInsert: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inserted *model.Item
			repo := &mockItemRepo{
				createFn: func(ctx context.Context, item model.Item) error {
					inserted = &item
					return tt.repoErr
				},
			}
			checker := &mockChecker{lists: map[string]bool{"L1": true}, err: tt.checkErr}
			svc := service.NewItemService(repo, checker, fixedID)

			got, err := svc.Add(context.Background(), tt.listID, tt.input)

			if (inserted != nil) != tt.wantInsert {
				t.Errorf("insert called = %v, want %v", inserted != nil, tt.wantInsert)
			}
			if tt.wantKind != nil {
				wantClientError(t, err, tt.wantKind, tt.wantMsg)
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != "item-1700000000000-abcdefghi" {
				t.Errorf("unexpected id %q", got.ID)
			}
			if got.Status != model.ItemStatusPending {
				t.Errorf("expected status=PENDING, got %s", got.Status)
			}
			if got.ListID != "L1" {
				t.Errorf("expected list_id=L1, got %s", got.ListID)
			}
		})
	}
}

func TestItemService_Add_ChecksBeforeInsert(t *testing.T) {
	var order []string
	checker := &mockChecker{lists: map[string]bool{"L1": true}}
	repo := &mockItemRepo{
		createFn: func(ctx context.Context, item model.Item) error {
			order = append(order, fmt.Sprintf("insert after %d lookups", len(checker.calls)))
			return nil
		},
	}
	svc := service.NewItemService(repo, checker, fixedID)

	if _, err := svc.Add(context.Background(), "L1", service.AddItemInput{Description: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 1 || order[0] != "insert after 1 lookups" {
		t.Errorf("unexpected sequencing: %v", order)
	}
	if checker.calls[0] != repository.TableLists {
		t.Errorf("expected lookup in lists, got %s", checker.calls[0])
	}
}

func TestItemService_Update(t *testing.T) {
	done := "DONE"
	invalid := "INVALID"
	empty := ""
	desc := "Buy oat milk"

	tests := []struct {
		name       string
		listID     string
		input      service.UpdateItemInput
		getFn      func(ctx context.Context, listID, itemID string) (model.Item, error)
		wantKind   error
		wantMsg    string
		wantUpdate bool
	}{
		{
			name:   "status only",
			listID: "L1",
			input:  service.UpdateItemInput{Status: &done},
			getFn: func(ctx context.Context, listID, itemID string) (model.Item, error) {
				item := sampleItem()
				item.Status = model.ItemStatusDone
				return item, nil
			},
			wantUpdate: true,
		},
		{
			name:   "description only",
			listID: "L1",
			input:  service.UpdateItemInput{Description: &desc},
			getFn: func(ctx context.Context, listID, itemID string) (model.Item, error) {
				item := sampleItem()
				item.Description = desc
				return item, nil
			},
			wantUpdate: true,
		},
		{
			name:     "invalid status",
			listID:   "L1",
			input:    service.UpdateItemInput{Status: &invalid},
			wantKind: service.ErrInvalidInput,
			wantMsg:  "Invalid status",
		},
		{
			// "" is rejected before the CHECK constraint sees it, so the
			// response is 400 rather than a 500 carrying the driver message.
			name:     "empty status is invalid",
			listID:   "L1",
			input:    service.UpdateItemInput{Status: &empty},
			wantKind: service.ErrInvalidInput,
			wantMsg:  "Invalid status",
		},
		{
			name:     "unknown item",
			listID:   "L1",
			input:    service.UpdateItemInput{Status: &done},
			wantKind: service.ErrNotFound,
			wantMsg:  "Item not found",
		},
		{
			name:   "list id does not own the item",
			listID: "L2",
			input:  service.UpdateItemInput{Status: &done},
			getFn: func(ctx context.Context, listID, itemID string) (model.Item, error) {
				return model.Item{}, fmt.Errorf("failed to scan item: %w", sql.ErrNoRows)
			},
			wantKind:   service.ErrNotFound,
			wantMsg:    "Item not found",
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			itemID := "item-1"
			if tt.name == "unknown item" {
				itemID = "item-404"
			}

			var (
				updated   bool
				gotDesc   *string
				gotStatus *model.ItemStatus
			)
			repo := &mockItemRepo{
				updateFn: func(ctx context.Context, listID, id string, description *string, status *model.ItemStatus) error {
					updated = true
					gotDesc, gotStatus = description, status
					return nil
				},
				getFn: tt.getFn,
			}
			checker := &mockChecker{items: map[string]bool{"item-1": true}}
			svc := service.NewItemService(repo, checker, fixedID)

			got, err := svc.Update(context.Background(), tt.listID, itemID, tt.input)

			if updated != tt.wantUpdate {
				t.Errorf("update called = %v, want %v", updated, tt.wantUpdate)
			}
			if tt.wantKind != nil {
				wantClientError(t, err, tt.wantKind, tt.wantMsg)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (tt.input.Description == nil) != (gotDesc == nil) {
				t.Errorf("description presence not passed through: %v", gotDesc)
			}
			if (tt.input.Status == nil) != (gotStatus == nil) {
				t.Errorf("status presence not passed through: %v", gotStatus)
			}
			if got.ID != "item-1" {
				t.Errorf("expected re-fetched item, got %+v", got)
			}
		})
	}
}

func TestItemService_Update_StorageErrors(t *testing.T) {
	done := "DONE"
	storeErr := &repository.StorageError{Op: "update item", Err: fmt.Errorf("database is locked")}

	t.Run("update statement", func(t *testing.T) {
		repo := &mockItemRepo{
			updateFn: func(ctx context.Context, listID, itemID string, d *string, s *model.ItemStatus) error {
				return storeErr
			},
		}
		svc := service.NewItemService(repo, &mockChecker{items: map[string]bool{"item-1": true}}, fixedID)

		_, err := svc.Update(context.Background(), "L1", "item-1", service.UpdateItemInput{Status: &done})
		var se *repository.StorageError
		if !errors.As(err, &se) {
			t.Fatalf("expected StorageError, got %v", err)
		}
	})

	t.Run("existence check", func(t *testing.T) {
		svc := service.NewItemService(&mockItemRepo{}, &mockChecker{err: fmt.Errorf("disk I/O error")}, fixedID)

		_, err := svc.Update(context.Background(), "L1", "item-1", service.UpdateItemInput{Status: &done})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var se *repository.StorageError
		if errors.As(err, &se) {
			t.Error("existence failures must not be reported as statement errors")
		}
	})
}

func TestItemService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		listID     string
		itemID     string
		repoErr    error
		wantKind   error
		wantErr    bool
		wantDelete bool
	}{
		{"success", "L1", "item-1", nil, nil, false, true},
		{"mismatched list still succeeds", "L2", "item-1", nil, nil, false, true},
		{"unknown item", "L1", "item-404", nil, service.ErrNotFound, false, false},
		{"repo error", "L1", "item-1", fmt.Errorf("db error"), nil, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted := false
			repo := &mockItemRepo{
				deleteFn: func(ctx context.Context, listID, itemID string) error {
					deleted = true
					if listID != tt.listID || itemID != tt.itemID {
						t.Errorf("delete got (%s, %s)", listID, itemID)
					}
					return tt.repoErr
				},
			}
			svc := service.NewItemService(repo, &mockChecker{items: map[string]bool{"item-1": true}}, fixedID)

			err := svc.Delete(context.Background(), tt.listID, tt.itemID)

			if deleted != tt.wantDelete {
				t.Errorf("delete called = %v, want %v", deleted, tt.wantDelete)
			}
			if tt.wantKind != nil {
				wantClientError(t, err, tt.wantKind, "Item not found")
				return
			}
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewItemService_DefaultGenerator(t *testing.T) {
	var inserted model.Item
	repo := &mockItemRepo{
		createFn: func(ctx context.Context, item model.Item) error {
			inserted = item
			return nil
		},
	}
	svc := service.NewItemService(repo, &mockChecker{lists: map[string]bool{"L1": true}}, nil)

	if _, err := svc.Add(context.Background(), "L1", service.AddItemInput{Description: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inserted.ID) <= len("item-") || inserted.ID[:5] != "item-" {
		t.Errorf("expected generated item- id, got %q", inserted.ID)
	}
}
