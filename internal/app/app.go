package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/kruvl/gloria-proyect/internal/app/config"
	apphttp "github.com/kruvl/gloria-proyect/internal/app/http"
	pdfgen "github.com/kruvl/gloria-proyect/internal/domain/quote/pdf/gofpdf"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
	"github.com/kruvl/gloria-proyect/internal/infra/db/postgres"
	"github.com/kruvl/gloria-proyect/internal/infra/kv"
)

func Run() {
	cfg := config.MustLoad()

	var backend kv.Store
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()

		pgkv := postgres.NewKV(db)
		if err := pgkv.EnsureSchema(context.Background()); err != nil {
			log.Fatalf("db: %v", err)
		}
		backend = pgkv
	} else {
		log.Printf("storage: DATABASE_URL not set, saved quotes stay in memory")
		backend = kv.NewMemory()
	}

	router := apphttp.NewRouter(cfg, store.New(backend), pdfgen.New())

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
