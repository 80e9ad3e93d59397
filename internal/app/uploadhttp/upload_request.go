package uploadhttp

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// requireUploadID валидирует path-параметр id и возвращает его.
func requireUploadID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" || !safeID(id) {
		http.NotFound(w, r)
		return "", false
	}

	return id, true
}

// safeID пропускает только [A-Za-z0-9._-] без ведущей точки: id напрямую задаёт
// имена файлов в каталоге данных.
func safeID(id string) bool {
	if strings.HasPrefix(id, ".") {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}

	return true
}
