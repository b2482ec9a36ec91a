package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kruvl/gloria-proyect/internal/app/config"
	"github.com/kruvl/gloria-proyect/internal/app/http/handlers"
	"github.com/kruvl/gloria-proyect/internal/app/http/middleware"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/export"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/pdf"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
)

func NewRouter(cfg config.Config, st *store.Store, gen pdf.Generator) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)

	h := handlers.New(st, export.New(gen, cfg.ExportDir), cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.InternalAuth(cfg.InternalToken))

			r.Post("/quotes/preview", h.PreviewQuote)
			r.Post("/quotes/export", h.ExportQuote)
			r.Post("/quotes", h.SaveQuote)
			r.Get("/quotes", h.ListQuotes)
			r.Get("/quotes/{key}", h.LoadQuote)
		})
	})

	return r
}
