package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"manifest-service/internal/config"
	manHnd "manifest-service/internal/manifest/handler"
	"manifest-service/internal/middleware"
	"manifest-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// основные эндпоинты
	r.Post("/manifest/process", manHnd.Process(cfg, logger))
	r.Get("/manifest/carriers", manHnd.Carriers)

	return r
}
