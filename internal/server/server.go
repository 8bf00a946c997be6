// Package server provides the HTTP handler that serves the browser UI and
// the valuation API. Session history is held in memory for the lifetime of
// the process only.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cyberweblabs/propdata/internal/config"
	"github.com/cyberweblabs/propdata/internal/forecast"
	"github.com/cyberweblabs/propdata/internal/rates"
	"github.com/cyberweblabs/propdata/internal/valuation"
	"github.com/cyberweblabs/propdata/pkg/constants"
	"github.com/cyberweblabs/propdata/pkg/format"
	"github.com/cyberweblabs/propdata/pkg/report"
	"github.com/cyberweblabs/propdata/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	market         *config.Market
	rates          *rates.Table
	engine         *valuation.Engine
	forecaster     *forecast.Generator
	reporter       *report.Builder
	maxRequestSize int64
	version        string

	mu      sync.Mutex
	history []historyEntry
}

type historyEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Request   valuation.Request `json:"request"`
	Result    valuation.Result  `json:"result"`
	Formatted string            `json:"formatted"`
}

// Options bundles the collaborators for the HTTP handler.
type Options struct {
	Logger         *zap.Logger
	Market         *config.Market
	Rates          *rates.Table
	Engine         *valuation.Engine
	Forecaster     *forecast.Generator
	Reporter       *report.Builder
	MaxRequestSize int64
	Version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// valuation API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	market := opts.Market
	if market == nil {
		defaults := config.DefaultMarket()
		market = &defaults
	}

	table := opts.Rates
	if table == nil {
		table = rates.NewTable()
	}

	engine := opts.Engine
	if engine == nil {
		engine = valuation.NewEngine(logger, market, table)
	}

	forecaster := opts.Forecaster
	if forecaster == nil {
		forecaster = forecast.NewGenerator(logger)
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = report.NewBuilder(logger)
	}

	maxRequestSize := opts.MaxRequestSize
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:         logger,
		market:         market,
		rates:          table,
		engine:         engine,
		forecaster:     forecaster,
		reporter:       reporter,
		maxRequestSize: maxRequestSize,
		version:        version,
	}

	mux := http.NewServeMux()

	// Rate tables and configuration labels for the UI form
	mux.HandleFunc("/api/locations", h.handleLocations)

	// Valuation endpoint
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// PDF report download
	mux.HandleFunc("/api/report", h.handleReport)

	// Session history (process lifetime only)
	mux.HandleFunc("/api/history", h.handleHistory)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type clusterPayload struct {
	Name      string            `json:"name"`
	Locations []locationPayload `json:"locations"`
}

type locationPayload struct {
	Name        string             `json:"name"`
	BaseRate    float64            `json:"baseRate"`
	Coordinates *rates.Coordinates `json:"coordinates,omitempty"`
}

type locationsResponse struct {
	Clusters       []clusterPayload `json:"clusters"`
	RoadCategories []string         `json:"roadCategories"`
	QualityTiers   []string         `json:"qualityTiers"`
}

// reportRequest binds a report download to an already-computed estimate so
// the document carries the same price the user was shown. Re-estimating
// would draw a fresh jitter and change the headline price.
type reportRequest struct {
	Request valuation.Request `json:"request"`
	Result  *valuation.Result `json:"result"`
}

type estimateResponse struct {
	Result    valuation.Result `json:"result"`
	Formatted string           `json:"formatted"`
	Crore     float64          `json:"crore"`
	Lakh      float64          `json:"lakh"`
	Forecast  []forecast.Point `json:"forecast,omitempty"`
	Duration  string           `json:"duration"`
}

func (h *handler) handleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	clusters := make([]clusterPayload, 0, len(h.rates.ClusterNames()))
	for _, name := range h.rates.ClusterNames() {
		payload := clusterPayload{Name: name}
		for _, location := range h.rates.ClusterLocations(name) {
			rate, _ := h.rates.BaseRate(location)
			entry := locationPayload{Name: location, BaseRate: rate}
			if coords, ok := h.rates.Coordinates(location); ok {
				c := coords
				entry.Coordinates = &c
			}
			payload.Locations = append(payload.Locations, entry)
		}
		clusters = append(clusters, payload)
	}

	h.writeJSON(w, http.StatusOK, locationsResponse{
		Clusters:       clusters,
		RoadCategories: h.market.RoadCategories(),
		QualityTiers:   h.market.QualityTiers(),
	})
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r, "server.handleEstimate")
	if !ok {
		return
	}

	start := time.Now()
	result, err := h.engine.Estimate(req)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleEstimate")
		return
	}

	points := h.forecaster.Project(result.Price, constants.DefaultForecastMonths)
	crore, lakh := format.CroreLakh(result.Price)
	formatted := format.Currency(result.Price)
	elapsed := time.Since(start)

	h.mu.Lock()
	h.history = append(h.history, historyEntry{
		Timestamp: time.Now(),
		Request:   req,
		Result:    result,
		Formatted: formatted,
	})
	h.mu.Unlock()

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.String("location", req.Location),
		zap.String("type", string(req.Type)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		Result:    result,
		Formatted: formatted,
		Crore:     crore,
		Lakh:      lakh,
		Forecast:  points,
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var payload reportRequest
	if !h.decodeJSON(w, r, "server.handleReport", &payload) {
		return
	}
	if err := validation.ValidateRequest(payload.Request, h.market); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleReport")
		return
	}
	if payload.Result == nil {
		h.respondError(w, http.StatusBadRequest, "report requires the computed result it documents", "server.handleReport")
		return
	}

	pdfBytes, err := h.reporter.Build(payload.Request, *payload.Result, time.Now())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to build report: %v", err), "server.handleReport")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="Valuation_Report.pdf"`)
	if _, err := w.Write(pdfBytes); err != nil {
		h.logger.Warn("failed to write report response",
			zap.String("op", "server.handleReport"),
			zap.Error(err),
		)
	}
}

func (h *handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.mu.Lock()
	entries := make([]historyEntry, len(h.history))
	copy(entries, h.history)
	h.mu.Unlock()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": entries,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest reads, decodes, and validates an estimate request body.
// On failure it writes the error response and returns ok=false.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, op string) (valuation.Request, bool) {
	var req valuation.Request

	if !h.decodeJSON(w, r, op, &req) {
		return req, false
	}

	if err := validation.ValidateRequest(req, h.market); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return req, false
	}

	return req, true
}

// decodeJSON reads a size-limited POST body into dst. On failure it writes
// the error response and returns false.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}

	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
