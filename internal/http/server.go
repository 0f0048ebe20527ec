// Package http serves link lookups and operational endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"medialinks/internal/core"
	"medialinks/pkg/medialink"
)

const serviceName = "medialinks"

// Resolver turns a filename into a link for a service.
type Resolver interface {
	Resolve(key medialink.ServiceKey, file string) (core.Link, error)
}

type Server struct {
	config   *core.ServerConfig
	logger   *zap.Logger
	server   *http.Server
	resolver Resolver
	registry *prometheus.Registry
	metrics  *Metrics
}

type Metrics struct {
	LookupsTotal   *prometheus.CounterVec
	ErrorsTotal    *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
}

type linkResponse struct {
	Key        string   `json:"key"`
	File       string   `json:"file"`
	URL        string   `json:"url"`
	Words      []string `json:"words"`
	Identifier string   `json:"identifier,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newMetrics(registry prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medialinks_lookups_total",
				Help: "Total number of link lookups",
			},
			[]string{"service", "status"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "medialinks_errors_total",
				Help: "Total number of rejected lookups",
			},
			[]string{"type"},
		),
		LookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "medialinks_lookup_duration_seconds",
				Help:    "Time spent resolving links",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),
	}

	registry.MustRegister(
		metrics.LookupsTotal,
		metrics.ErrorsTotal,
		metrics.LookupDuration,
	)

	return metrics
}

// NewServer creates a server with its own metrics registry.
func NewServer(config *core.ServerConfig, resolver Resolver, logger *zap.Logger) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		config:   config,
		logger:   logger,
		resolver: resolver,
		registry: registry,
		metrics:  newMetrics(registry),
	}
	s.server = createHTTPServer(config, s.setupRoutes())

	return s
}

func createHTTPServer(config *core.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
}

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready", "service": serviceName})
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /keys", func(w http.ResponseWriter, _ *http.Request) {
		keys := medialink.Keys()
		names := make([]string, 0, len(keys))
		for _, key := range keys {
			names = append(names, key.String())
		}
		s.writeJSON(w, http.StatusOK, names)
	})

	mux.HandleFunc("GET /link", s.handleLink)

	return mux
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := query.Get("key")
	file := query.Get("file")

	if name == "" || !query.Has("file") {
		s.metrics.ErrorsTotal.WithLabelValues("missing_parameter").Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameters key and file are required"})
		return
	}

	key, err := medialink.ParseServiceKey(name)
	if err != nil {
		s.metrics.ErrorsTotal.WithLabelValues("unknown_key").Inc()
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	link, err := s.resolver.Resolve(key, file)
	s.metrics.LookupDuration.WithLabelValues(key.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ErrorsTotal.WithLabelValues("resolve").Inc()
		s.logger.Error("Failed to resolve link",
			zap.String("service", key.String()),
			zap.String("file", file),
			zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to resolve link"})
		return
	}

	s.metrics.LookupsTotal.WithLabelValues(key.String(), string(link.Status)).Inc()

	resp := linkResponse{
		Key:        key.String(),
		File:       file,
		URL:        link.URL,
		Words:      link.Words,
		Identifier: link.Identifier,
	}
	if link.URL == "" {
		s.writeJSON(w, http.StatusNotFound, resp)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Debug("Failed to write response", zap.Error(err))
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr))

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shutdown HTTP server gracefully", zap.Error(err))
		}
	}()

	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

func (s *Server) GetMetrics() *Metrics {
	return s.metrics
}
