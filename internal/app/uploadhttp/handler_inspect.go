package uploadhttp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sir_venger/upload_lite/internal/models"
	"github.com/sir_venger/upload_lite/pkg/httperrors"
	"github.com/sir_venger/upload_lite/pkg/uploadproto"
)

// inspectUpload отвечает на HEAD-запросы текущим прогрессом загрузки.
func (a *Server) inspectUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUploadID(w, r)
	if !ok {
		return
	}

	info, err := a.store.Info(id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	w.Header().Set(uploadproto.HeaderUploadOffset, strconv.FormatInt(info.WrittenLength, 10))
	if info.DeclaredLength != models.LengthUnknown {
		w.Header().Set(uploadproto.HeaderUploadLength, strconv.FormatInt(info.DeclaredLength, 10))
	}
	if !info.ExpiresAt.IsZero() {
		w.Header().Set(uploadproto.HeaderUploadExpires, info.ExpiresAt.Format(time.RFC3339Nano))
	}
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
}
