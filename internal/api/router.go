package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/timestamper/internal/api/handler"
	"github.com/mcoot/timestamper/internal/api/middleware"
	"github.com/mcoot/timestamper/internal/services/timestamp"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	TimeService *timestamp.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	timeHandler := handler.NewTimeHandler(cfg.TimeService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/time", timeHandler.Now).Methods(http.MethodGet)
	api.HandleFunc("/times", timeHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/times/{identifier}", timeHandler.Save).Methods(http.MethodPut)
	api.HandleFunc("/times/{identifier}", timeHandler.Load).Methods(http.MethodGet)
	api.HandleFunc("/compare", timeHandler.Compare).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
