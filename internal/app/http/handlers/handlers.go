package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/kruvl/gloria-proyect/internal/app/config"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/export"
	"github.com/kruvl/gloria-proyect/internal/domain/quote/store"
)

type Handlers struct {
	Store *store.Store
	Exp   *export.Exporter
	Cfg   config.Config

	// single-slot in-flight tokens: a second export or save while one
	// is still running is rejected instead of racing it
	exportBusy busyToken
	saveBusy   busyToken
}

func New(st *store.Store, exp *export.Exporter, cfg config.Config) *Handlers {
	return &Handlers{Store: st, Exp: exp, Cfg: cfg}
}

type busyToken struct {
	flag atomic.Bool
}

func (b *busyToken) tryAcquire() bool { return b.flag.CompareAndSwap(false, true) }
func (b *busyToken) release()         { b.flag.Store(false) }

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
