package uploadhttp

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sir_venger/upload_lite/internal/models"
	"github.com/sir_venger/upload_lite/pkg/httperrors"
	"github.com/sir_venger/upload_lite/pkg/log"
	"github.com/sir_venger/upload_lite/pkg/uploadproto"
)

// createUpload принимает POST-запросы на регистрацию новой загрузки.
func (a *Server) createUpload(w http.ResponseWriter, r *http.Request) {
	length, err := parseDeclaredLength(r.Header)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Метаданные сохраняются как есть — сервер их не интерпретирует.
	metadata := r.Header.Get(uploadproto.HeaderUploadMetadata)

	id, err := a.store.NewUpload(length, metadata)
	if err != nil {
		log.Errorf("create upload failed: %v", err)
		httperrors.Write(w, err)
		return
	}

	if ok := a.refreshExpiration(w, id); !ok {
		return
	}

	log.Infof("upload %s created (declared_length=%d)", id, length)
	w.Header().Set("Location", uploadproto.UploadsPath+"/"+id)
	w.WriteHeader(http.StatusCreated)
}

// parseDeclaredLength разбирает Upload-Length либо Upload-Defer-Length: 1.
func parseDeclaredLength(h http.Header) (int64, error) {
	if h.Get(uploadproto.HeaderUploadDeferLength) == "1" {
		return models.LengthUnknown, nil
	}

	raw := h.Get(uploadproto.HeaderUploadLength)
	if raw == "" {
		return 0, fmt.Errorf("either %s or %s header is required",
			uploadproto.HeaderUploadLength, uploadproto.HeaderUploadDeferLength)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s header", uploadproto.HeaderUploadLength)
	}

	return n, nil
}

// refreshExpiration продлевает срок жизни загрузки и проставляет Upload-Expires.
func (a *Server) refreshExpiration(w http.ResponseWriter, id string) bool {
	if a.ttl <= 0 {
		return true
	}

	expires := time.Now().Add(a.ttl)
	if err := a.store.SetExpiration(id, expires); err != nil {
		log.Errorf("set expiration for %s failed: %v", id, err)
		httperrors.Write(w, err)
		return false
	}
	w.Header().Set(uploadproto.HeaderUploadExpires, expires.UTC().Format(time.RFC3339Nano))

	return true
}
