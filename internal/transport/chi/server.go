// Package chi implements the HTTP API on top of the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/seedicon/internal/domain"
	facemeshuc "github.com/kailas-cloud/seedicon/internal/usecase/facemesh"
	healthuc "github.com/kailas-cloud/seedicon/internal/usecase/health"
	identiconuc "github.com/kailas-cloud/seedicon/internal/usecase/identicon"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the identicon API over HTTP.
type Server struct {
	identicons    *identiconuc.Service
	meshes        *facemeshuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	identicons *identiconuc.Service,
	meshes *facemeshuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		identicons: identicons,
		meshes:     meshes,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidDigest, http.StatusBadRequest, CodeInvalidDigest),
		sentinelHandler(domain.ErrUnknownStrategy, http.StatusBadRequest, CodeUnknownStrategy),
		sentinelHandler(domain.ErrInvalidCount, http.StatusBadRequest, CodeInvalidCount),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chirouter.Router) {
	r.Route("/api/v1", func(r chirouter.Router) {
		r.Get("/identicons/{seed}", s.GetIdenticon)
		r.Get("/identicons/{seed}/digest", s.GetDigest)
		r.Get("/identicons/{seed}/mesh", s.GetMesh)
		r.Get("/strategies", s.ListStrategies)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// GetIdenticon handles GET /api/v1/identicons/{seed}.
func (s *Server) GetIdenticon(w http.ResponseWriter, r *http.Request) {
	seedText := chirouter.URLParam(r, "seed")

	var count int
	if err := runtime.BindQueryParameter(
		"form", true, false, "count", r.URL.Query(), &count,
	); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid count parameter")
		return
	}

	var strategy string
	if err := runtime.BindQueryParameter(
		"form", true, false, "strategy", r.URL.Query(), &strategy,
	); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid strategy parameter")
		return
	}

	icon, err := s.identicons.Generate(r.Context(), seedText, count, strategy)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, IdenticonResponse{
		Seed:       icon.Text,
		Strategy:   icon.Strategy,
		Primitives: icon.Primitives,
	})
}

// GetDigest handles GET /api/v1/identicons/{seed}/digest.
func (s *Server) GetDigest(w http.ResponseWriter, r *http.Request) {
	seedText := chirouter.URLParam(r, "seed")

	var index int
	if err := runtime.BindQueryParameter(
		"form", true, false, "index", r.URL.Query(), &index,
	); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid index parameter")
		return
	}
	if index < 0 {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "index must be non-negative")
		return
	}

	writeJSON(w, http.StatusOK, DigestResponse{
		Seed:   seedText,
		Index:  index,
		Digest: s.identicons.Digest(seedText, index).String(),
	})
}

// GetMesh handles GET /api/v1/identicons/{seed}/mesh.
func (s *Server) GetMesh(w http.ResponseWriter, r *http.Request) {
	seedText := chirouter.URLParam(r, "seed")

	m, err := s.meshes.Generate(r.Context(), seedText)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MeshResponse{
		Seed:     seedText,
		Vertices: m.Vertices,
		Faces:    m.Faces,
	})
}

// ListStrategies handles GET /api/v1/strategies.
func (s *Server) ListStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"strategies": s.identicons.Strategies(),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
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

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidDigest,
		domain.ErrUnknownStrategy,
		domain.ErrInvalidCount,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
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
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
