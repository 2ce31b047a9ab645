// Package practice hosts the browser-facing practice workspace.
package practice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/practice.space/internal/platform/i18n/catalog"
	"github.com/louisbranch/practice.space/internal/platform/timeouts"
	"github.com/louisbranch/practice.space/internal/problems/registry"
	"github.com/louisbranch/practice.space/internal/problems/widget"
	practiceapp "github.com/louisbranch/practice.space/internal/services/practice/app"
	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/modules"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/httpx"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/i18n"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/observability"
	"github.com/louisbranch/practice.space/internal/services/practice/platform/requestmeta"
	"github.com/louisbranch/practice.space/internal/services/practice/routepath"
	practicestatic "github.com/louisbranch/practice.space/internal/services/practice/static"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config defines startup inputs for the practice service.
type Config struct {
	HTTPAddr            string
	Registry            *registry.Registry
	Store               widget.StateStore
	Catalog             *catalog.Bundle
	Logger              *zap.Logger
	Metrics             *observability.Metrics
	Tracer              trace.Tracer
	TrustForwardedProto bool
}

// Server hosts the practice HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler from the default module groups.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Registry == nil {
		return nil, errors.New("problem registry is required")
	}
	if cfg.Store == nil {
		cfg.Store = widget.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NewMetrics()
	}
	if cfg.Catalog == nil {
		bundle, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load message catalog: %w", err)
		}
		cfg.Catalog = bundle
	}
	deps := module.Dependencies{
		Registry:     cfg.Registry,
		Store:        cfg.Store,
		Languages:    i18n.NewResolver(cfg.Catalog),
		Logger:       cfg.Logger,
		Metrics:      cfg.Metrics,
		Tracer:       cfg.Tracer,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	}
	h, err := practiceapp.Composer{}.Compose(practiceapp.ComposeInput{
		Dependencies:    deps,
		Modules:         modules.DefaultModules(),
		StatefulModules: modules.DefaultStatefulModules(),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(practicestatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, cfg.Metrics.Handler())
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger, cfg.Metrics),
	), nil
}

// NewServer validates config and constructs a practice server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose practice handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("practice server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server is running", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown practice http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve practice http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
