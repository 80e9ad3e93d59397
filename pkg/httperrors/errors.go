package httperrors

import (
	"errors"
	"net/http"

	"github.com/sir_venger/upload_lite/internal/models"
)

func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrOffsetMismatch):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, models.ErrOverflow):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, models.ErrSourceRead):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
