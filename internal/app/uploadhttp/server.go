package uploadhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sir_venger/upload_lite/internal/store/diskstore"
)

// Server обслуживает HTTP API докачиваемых загрузок поверх дискового стораджа.
type Server struct {
	dataDir string
	store   *diskstore.Store
	locks   *idLocker
	ttl     time.Duration
}

// New создаёт HTTP-обработчик поверх каталога с данными. При ttl > 0 сервер
// выставляет срок жизни загрузки на создании и продлевает его при каждой дозаписи.
func New(dataDir string, ttl time.Duration) http.Handler {
	srv := &Server{
		dataDir: dataDir,
		store:   diskstore.New(dataDir, diskstore.UUIDProvider{}),
		locks:   newIDLocker(),
		ttl:     ttl,
	}

	return srv.routes()
}

// routes регистрирует обработчики загрузок и health.
func (a *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Post("/uploads", a.createUpload)
	r.Route("/uploads/{id}", func(ur chi.Router) {
		ur.Head("/", a.inspectUpload)
		ur.Patch("/", a.appendChunk)
		ur.Get("/", a.fetchUpload)
	})

	r.Get("/health", a.health)

	return r
}
