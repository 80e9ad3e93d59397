package uploadhttp

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

// healthStats — payload ответа /health.
type healthStats struct {
	OK         bool  `json:"ok"`
	Uploads    int   `json:"uploads"`
	TotalBytes int64 `json:"total_bytes"`
}

// health возвращает агрегированную статистику по каталогу данных.
func (a *Server) health(w http.ResponseWriter, _ *http.Request) {
	stats := healthStats{OK: true}

	// Каталог плоский: файлы данных без точки в имени, сайдкары — с точкой.
	entries, err := os.ReadDir(a.dataDir)
	if err != nil && !os.IsNotExist(err) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		stats.TotalBytes += fi.Size()
		if !strings.Contains(e.Name(), ".") {
			stats.Uploads++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
