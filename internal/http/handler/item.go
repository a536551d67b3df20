package handler

import (
	"net/http"

	"github.com/jaekwang-park/todolist-api/internal/service"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type AddItemRequest struct {
	Description string `json:"description" doc:"Description of the todo item"`
}

type UpdateItemRequest struct {
	Description *string `json:"description,omitempty" doc:"New description; omitted keeps the current one"`
	Status      *string `json:"status,omitempty" enum:"PENDING,IN-PROGRESS,DONE" doc:"New status; omitted keeps the current one"`
}

// List handles GET /lists/{id}/items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, items)
}

// Add handles POST /lists/{id}/items. Any status in the body is ignored.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	item, err := h.svc.Add(r.Context(), r.PathValue("id"), service.AddItemInput{
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, item)
}

// Update handles PUT /lists/{listId}/items/{itemId}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	item, err := h.svc.Update(r.Context(), r.PathValue("listId"), r.PathValue("itemId"), service.UpdateItemInput{
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /lists/{listId}/items/{itemId}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("listId"), r.PathValue("itemId")); err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}
