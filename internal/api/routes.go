package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Analysis routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analysis/{ticker}", handler.GetAnalysis).Methods("GET")

	return r
}
