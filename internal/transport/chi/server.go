// Package chi exposes the query engine over HTTP. Handlers are thin:
// decode, delegate to a usecase service, encode. Absent results arrive
// as found=false payloads from the builders and are served as 200s;
// only infrastructure failures map to error statuses.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/opencamara/actadex/internal/domain"
	healthuc "github.com/opencamara/actadex/internal/usecase/health"
	queryuc "github.com/opencamara/actadex/internal/usecase/query"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeUnauthorized      = "unauthorized"
	codeCorpusUnavailable = "corpus_unavailable"
	codeNarrativeError    = "narrative_provider_error"
	codeInternalError     = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type queryRequest struct {
	Question string `json:"question"`
}

// Server is the HTTP API server.
type Server struct {
	query         *queryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(query *queryuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		query:  query,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrCorpusUnavailable, http.StatusServiceUnavailable, codeCorpusUnavailable),
		sentinelHandler(domain.ErrNarrativeProviderError, http.StatusBadGateway, codeNarrativeError),
	}
	return s
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/query", s.PostQuery)
	r.Get("/v1/sessions/{session}", s.GetSession)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// PostQuery handles POST /v1/query.
func (s *Server) PostQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Question == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Question is required")
		return
	}

	resp, err := s.query.Answer(r.Context(), req.Question)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetSession handles GET /v1/sessions/{session}. An unknown session is a
// found=false payload, not a 404: session numbers are free-form input,
// not resource identifiers.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	session := chi.URLParam(r, "session")

	list, err := s.query.Session(r.Context(), session)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
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
		domain.ErrCorpusUnavailable,
		domain.ErrNarrativeProviderError,
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
