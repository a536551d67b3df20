package handler

import (
	"net/http"

	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/service"
)

type ListHandler struct {
	svc *service.ListService
}

func NewListHandler(svc *service.ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

type CreateListRequest struct {
	ID          *string `json:"id" doc:"Unique identifier for the list"`
	Name        *string `json:"name" doc:"Name of the list"`
	Description *string `json:"description,omitempty" doc:"Optional description of the list"`
}

type UpdateListRequest struct {
	Name        *string `json:"name,omitempty" doc:"New name of the list"`
	Description *string `json:"description,omitempty" doc:"New description of the list"`
}

// List handles GET /lists.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, lists)
}

// Create handles POST /lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	list, err := h.svc.Create(r.Context(), model.ListInput{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, list)
}

// Update handles PUT /lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateListRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	list, err := h.svc.Update(r.Context(), r.PathValue("id"), service.UpdateListInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, list)
}
