package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/omshetye/Stock-sentiment-analytics/internal/finviz"
	"github.com/omshetye/Stock-sentiment-analytics/internal/kafka"
	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// AnalysisRunner runs the news-to-signal pipeline for one ticker.
type AnalysisRunner interface {
	Run(ctx context.Context, ticker string) (*models.Analysis, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	runner   AnalysisRunner
	producer *kafka.Producer
	log      zerolog.Logger
}

// NewHandler creates a new Handler. producer may be nil when event
// publishing is disabled.
func NewHandler(runner AnalysisRunner, producer *kafka.Producer, log zerolog.Logger) *Handler {
	return &Handler{
		runner:   runner,
		producer: producer,
		log:      log.With().Str("component", "api").Logger(),
	}
}

// GetAnalysis handles GET /api/v1/analysis/{ticker}
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ticker := strings.ToUpper(vars["ticker"])
	if ticker == "" {
		respondError(w, http.StatusBadRequest, "ticker is required")
		return
	}

	analysis, err := h.runner.Run(r.Context(), ticker)
	if err != nil {
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Analysis run failed")
		respondError(w, statusForError(err), err.Error())
		return
	}

	// Publish Kafka event, best effort
	if h.producer != nil {
		if err := h.producer.PublishAnalysisCompleted(r.Context(), analysis); err != nil {
			h.log.Warn().Err(err).Str("ticker", ticker).Msg("Failed to publish analysis event")
		}
	}

	respondJSON(w, http.StatusOK, analysis)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// statusForError maps pipeline failures to HTTP status codes: a ticker
// without news is a 404, an unreachable source is a 502, everything else
// (malformed tokens, degenerate price data) is a 500.
func statusForError(err error) int {
	var fetchErr *finviz.FetchError
	switch {
	case errors.Is(err, finviz.ErrNoNews):
		return http.StatusNotFound
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
