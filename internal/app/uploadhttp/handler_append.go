package uploadhttp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sir_venger/upload_lite/internal/models"
	"github.com/sir_venger/upload_lite/pkg/httperrors"
	"github.com/sir_venger/upload_lite/pkg/log"
	"github.com/sir_venger/upload_lite/pkg/uploadproto"
)

// appendChunk дописывает тело PATCH-запроса в хвост файла загрузки.
func (a *Server) appendChunk(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUploadID(w, r)
	if !ok {
		return
	}

	// Движок конкурентные дозаписи одного id не сериализует — это делаем мы.
	unlock := a.locks.lock(id)
	defer unlock()

	info, err := a.store.Info(id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	// Оффсет обязателен: ретрай без него молча дописал бы те же байты второй раз.
	offset, err := parseUploadOffset(r.Header)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if offset != info.WrittenLength {
		httperrors.Write(w, fmt.Errorf("%w: got %d, current %d",
			models.ErrOffsetMismatch, offset, info.WrittenLength))
		return
	}

	written, err := a.store.AppendChunk(r.Context(), id, r.Body)
	if err != nil {
		log.Errorf("append to %s failed after %d bytes: %v", id, written, err)
		httperrors.Write(w, err)
		return
	}

	if ok := a.refreshExpiration(w, id); !ok {
		return
	}

	log.Infof("upload %s: +%d bytes at offset %d", id, written, info.WrittenLength)
	w.Header().Set(uploadproto.HeaderUploadOffset, strconv.FormatInt(info.WrittenLength+written, 10))
	w.WriteHeader(http.StatusNoContent)
}

// parseUploadOffset разбирает обязательный заголовок Upload-Offset.
func parseUploadOffset(h http.Header) (int64, error) {
	raw := h.Get(uploadproto.HeaderUploadOffset)
	if raw == "" {
		return 0, fmt.Errorf("%s header is required", uploadproto.HeaderUploadOffset)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s header", uploadproto.HeaderUploadOffset)
	}

	return n, nil
}
