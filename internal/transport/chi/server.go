package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/slabstack/smartpills/internal/domain"
	"github.com/slabstack/smartpills/internal/domain/vocab"
	healthuc "github.com/slabstack/smartpills/internal/usecase/health"
	pillsuc "github.com/slabstack/smartpills/internal/usecase/pills"
	watchuc "github.com/slabstack/smartpills/internal/usecase/watch"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers for the suggestion API.
type Server struct {
	pills         *pillsuc.Service
	watch         *watchuc.Service // nil without a cache store
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. watch may be nil; the saved-search
// endpoints then answer 503.
func NewServer(
	pills *pillsuc.Service,
	watch *watchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		pills:  pills,
		watch:  watch,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrStoreRequired, http.StatusServiceUnavailable),
		sentinelHandler(domain.ErrRateLimited, http.StatusTooManyRequests),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/api/smart-pills", s.GetSmartPills)
	r.Get("/api/popular-queries", s.GetPopularQueries)
	r.Get("/health", s.HealthCheck)

	r.Post("/api/saved-searches", s.CreateSavedSearch)
	r.Get("/api/saved-searches/{id}/check", s.CheckSavedSearch)
	r.Delete("/api/saved-searches/{id}", s.DeleteSavedSearch)
}

// GetSmartPills handles GET /api/smart-pills.
func (s *Server) GetSmartPills(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	threshold := 0
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "threshold must be a non-negative integer")
			return
		}
		threshold = v
	}

	resp, err := s.pills.Generate(r.Context(), query, threshold)
	if err != nil {
		s.handleDomainError(w, err, "Failed to generate smart pills")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPopularQueries handles GET /api/popular-queries. The catalogue is
// static; no index round trip happens here.
func (s *Server) GetPopularQueries(w http.ResponseWriter, _ *http.Request) {
	queries := vocab.PopularQueries()
	writeJSON(w, http.StatusOK, map[string]any{
		"queries":     queries,
		"total":       len(queries),
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":       string(report.Status),
		"cacheEnabled": report.CacheEnabled,
		"checks":       report.Checks,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// CreateSavedSearch handles POST /api/saved-searches.
func (s *Server) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.handleDomainError(w, domain.ErrStoreRequired, "Saved searches are unavailable")
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	ss, err := s.watch.Create(r.Context(), strings.TrimSpace(req.Query))
	if err != nil {
		s.handleDomainError(w, err, "Failed to create saved search")
		return
	}

	w.Header().Set("Location", "/api/saved-searches/"+ss.ID)
	writeJSON(w, http.StatusCreated, ss)
}

// CheckSavedSearch handles GET /api/saved-searches/{id}/check.
func (s *Server) CheckSavedSearch(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.handleDomainError(w, domain.ErrStoreRequired, "Saved searches are unavailable")
		return
	}

	id := chi.URLParam(r, "id")
	result, err := s.watch.Check(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err, "Failed to check saved search")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// DeleteSavedSearch handles DELETE /api/saved-searches/{id}.
func (s *Server) DeleteSavedSearch(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.handleDomainError(w, domain.ErrStoreRequired, "Saved searches are unavailable")
		return
	}

	if err := s.watch.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err, "Failed to delete saved search")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error. The sentinel text is safe for clients, unlike whatever wraps it.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, sentinel.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error, fallback string) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, fallback)
}
