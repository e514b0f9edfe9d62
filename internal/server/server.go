// Package server exposes the Wandercast HTTP API: podcast generation, the
// suggested-location list, an application health summary, generated-audio
// file serving, and the operational endpoints (healthz, readyz, metrics).
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wandercast/wandercast/internal/config"
	"github.com/wandercast/wandercast/internal/health"
	"github.com/wandercast/wandercast/internal/observe"
	"github.com/wandercast/wandercast/internal/podcast"
)

// DefaultLocations is the built-in suggested destination list, served when
// the config does not override it.
var DefaultLocations = []string{
	"Paris, France",
	"Tokyo, Japan",
	"New York, USA",
	"London, England",
	"Sydney, Australia",
	"Rome, Italy",
	"Barcelona, Spain",
	"Amsterdam, Netherlands",
	"Cairo, Egypt",
	"Mumbai, India",
	"Rio de Janeiro, Brazil",
	"Dubai, UAE",
	"Berlin, Germany",
	"Seoul, South Korea",
	"Bangkok, Thailand",
}

// Generator is the pipeline surface the server depends on. *podcast.Generator
// satisfies it; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, req podcast.Request) (*podcast.Result, error)
}

// Server handles HTTP requests for the Wandercast API.
type Server struct {
	generator Generator
	health    *health.Handler
	metrics   *observe.Metrics

	audioDir  string
	publicDir string

	scriptConfigured bool
	speechConfigured bool

	// mu guards the hot-reloadable fields below.
	mu              sync.RWMutex
	locations       []string
	defaultLanguage string
	defaultVoice    podcast.GenderPreference

	httpSrv *http.Server
}

// Option configures a [Server].
type Option func(*Server)

// WithHealthHandler sets the health handler serving /healthz and /readyz.
func WithHealthHandler(h *health.Handler) Option {
	return func(s *Server) { s.health = h }
}

// WithMetrics overrides the metrics instance, mainly for tests.
func WithMetrics(m *observe.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// New creates a Server around gen using settings from cfg.
func New(gen Generator, cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		generator:        gen,
		audioDir:         cfg.Server.AudioDir,
		publicDir:        cfg.Server.PublicDir,
		scriptConfigured: cfg.Providers.Script.Name != "",
		speechConfigured: cfg.Providers.Speech.Name != "",
		locations:        cfg.Podcast.Locations,
		defaultLanguage:  cfg.Podcast.DefaultLanguage,
		defaultVoice:     podcast.GenderPreference(cfg.Podcast.DefaultVoice),
	}
	if len(s.locations) == 0 {
		s.locations = DefaultLocations
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.health == nil {
		s.health = health.New()
	}
	if s.metrics == nil {
		s.metrics = observe.DefaultMetrics()
	}
	return s
}

// ApplyDiff applies a hot-reloaded config change. Only location-list, default,
// and log-level changes are honoured; everything else needs a restart.
func (s *Server) ApplyDiff(d config.ConfigDiff) {
	if !d.Any() {
		return
	}
	s.mu.Lock()
	if d.LocationsChanged {
		s.locations = d.NewLocations
		if len(s.locations) == 0 {
			s.locations = DefaultLocations
		}
	}
	if d.DefaultsChanged {
		s.defaultLanguage = d.NewDefaultLanguage
		s.defaultVoice = podcast.GenderPreference(d.NewDefaultVoice)
	}
	s.mu.Unlock()
	slog.Info("applied config changes",
		"locations", d.LocationsChanged,
		"defaults", d.DefaultsChanged,
	)
}

// Routes builds the full HTTP handler, with the observability middleware
// wrapped around every route.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/generate-podcast", s.handleGeneratePodcast)
	mux.HandleFunc("GET /api/locations", s.handleLocations)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(s.audioDir))))
	if s.publicDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(s.publicDir)))
	}

	s.health.Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	return observe.Middleware(s.metrics)(mux)
}

// ListenAndServe starts the HTTP server on addr and blocks until Shutdown is
// called or the listener fails. TLS is used when both cert and key are
// non-empty.
func (s *Server) ListenAndServe(addr string, tlsCfg *config.TLSConfig) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http server listening", "addr", addr, "tls", tlsCfg != nil)
	var err error
	if tlsCfg != nil {
		err = s.httpSrv.ListenAndServeTLS(tlsCfg.CertFile, tlsCfg.KeyFile)
	} else {
		err = s.httpSrv.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight requests
// up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
