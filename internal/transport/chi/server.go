// Package chi implements the HTTP API.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fitlocal/classdex/internal/domain"
	"github.com/fitlocal/classdex/internal/domain/search/preset"
	"github.com/fitlocal/classdex/internal/domain/search/request"
	"github.com/fitlocal/classdex/internal/domain/search/sortby"
	"github.com/fitlocal/classdex/internal/metrics"
	healthuc "github.com/fitlocal/classdex/internal/usecase/health"
	searchuc "github.com/fitlocal/classdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search API over chi.
type Server struct {
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	trendingLimit int
	recentLimit   int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		search:        search,
		health:        health,
		logger:        logger,
		trendingLimit: 5,
		recentLimit:   20,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrPresetNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrHistoryDisabled, http.StatusNotFound, codeNotConfigured),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
	}
	return s
}

// WithLimits overrides the default trending and history page sizes.
func (s *Server) WithLimits(trending, recent int) *Server {
	if trending > 0 {
		s.trendingLimit = trending
	}
	if recent > 0 {
		s.recentLimit = recent
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.Search)
		r.Get("/presets", s.ListPresets)
		r.Get("/trending", s.Trending)
		r.Get("/history/recent", s.RecentSearches)
	})
}

// Search handles POST /v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var dto searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	spec, err := specFromDTO(dto.Filters)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	// A named preset replaces the filter spec wholesale.
	if dto.Preset != "" {
		p, ok := preset.ByID(dto.Preset)
		if !ok {
			s.handleDomainError(w, domain.ErrPresetNotFound)
			return
		}
		spec = p.Spec
	}

	req, err := request.New(
		dto.Query,
		request.Scope(dto.Scope),
		locationFromDTO(dto.Location),
		dto.RadiusKm,
		dto.Offset, dto.Limit,
		spec,
		sortby.Strategy(dto.SortBy),
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	start := time.Now()
	items, total, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.SearchesTotal.WithLabelValues(string(req.Scope()), string(req.SortBy())).Inc()
	metrics.SearchDuration.WithLabelValues(string(req.Scope())).Observe(time.Since(start).Seconds())
	metrics.SearchResults.Observe(float64(total))
	metrics.SearchActiveFilters.Observe(float64(req.Filters().ActiveCount()))

	out := make([]searchItemDTO, len(items))
	for i, it := range items {
		out[i] = itemToDTO(it)
	}

	writeJSON(w, http.StatusOK, searchResponseDTO{
		Items:  out,
		Total:  total,
		Offset: req.Offset(),
		Limit:  req.Limit(),
	})
}

// ListPresets handles GET /v1/presets.
func (s *Server) ListPresets(w http.ResponseWriter, _ *http.Request) {
	all := preset.All()
	out := make([]presetDTO, len(all))
	for i, p := range all {
		out[i] = presetToDTO(p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Trending handles GET /v1/trending.
func (s *Server) Trending(w http.ResponseWriter, r *http.Request) {
	limit := s.trendingLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	trends, err := s.search.Trending(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]trendDTO, len(trends))
	for i, t := range trends {
		out[i] = trendDTO{Category: string(t.Category), UpcomingCount: t.UpcomingCount}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// RecentSearches handles GET /v1/history/recent.
func (s *Server) RecentSearches(w http.ResponseWriter, r *http.Request) {
	entries, err := s.search.Recent(r.Context(), s.recentLimit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	out := make([]historyEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = historyToDTO(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrClassNotFound,
		domain.ErrPresetNotFound,
		domain.ErrInvalidRequest,
		domain.ErrHistoryDisabled,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
