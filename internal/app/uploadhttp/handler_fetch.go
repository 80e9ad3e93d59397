package uploadhttp

import (
	"io"
	"net/http"
	"strconv"

	"github.com/sir_venger/upload_lite/pkg/httperrors"
)

// fetchUpload обслуживает GET-запросы, возвращая уже принятые байты файла.
func (a *Server) fetchUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUploadID(w, r)
	if !ok {
		return
	}

	info, err := a.store.Info(id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}

	f, err := a.store.Open(id)
	if err != nil {
		httperrors.Write(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Length", strconv.FormatInt(info.WrittenLength, 10))
	w.Header().Set("Content-Type", "application/octet-stream")

	if _, err = io.Copy(w, f); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
