package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jaekwang-park/todolist-api/internal/repository"
	"github.com/jaekwang-park/todolist-api/internal/service"
)

const (
	msgInternal    = "Internal server error"
	msgInvalidBody = "Invalid request body"
)

var kindStatus = map[error]int{
	service.ErrInvalidInput: http.StatusBadRequest,
	service.ErrNotFound:     http.StatusNotFound,
}

// handleServiceError answers err. Client errors carry their own message,
// statement failures echo the store's message, anything else is generic.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *service.ClientError
	if errors.As(err, &ce) {
		if status, ok := kindStatus[ce.Kind]; ok {
			WriteError(w, status, ce.Message)
			return
		}
	}

	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)

	var se *repository.StorageError
	if errors.As(err, &se) {
		WriteError(w, http.StatusInternalServerError, se.Error())
		return
	}

	WriteError(w, http.StatusInternalServerError, msgInternal)
}
