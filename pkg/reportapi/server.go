// Package reportapi serves scan results over HTTP for headless use.
package reportapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/datatug/assetdirstat/pkg/assetdirstat"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	addr      string
	router    *gin.Engine
	logger    *zap.Logger
	handlers  *Handlers
	presenter *assetdirstat.Presenter

	// serialises every presenter call
	mu sync.Mutex
}

type Option func(s *Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebug switches gin to debug mode.
func WithDebug(debug bool) Option {
	return func(s *Server) {
		if debug {
			gin.SetMode(gin.DebugMode)
		} else {
			gin.SetMode(gin.ReleaseMode)
		}
	}
}

// New creates a server. The presenter options are applied to the
// headless presenter that owns the scan state.
func New(addr, root string, scan assetdirstat.ScanFunc, options []Option, presenterOptions ...assetdirstat.PresenterOption) *Server {
	s := &Server{
		addr:   addr,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(s)
	}
	presenterOptions = append(presenterOptions, assetdirstat.WithPresenterLogger(s.logger))
	s.presenter = assetdirstat.NewPresenter(root, scan, headlessView{}, presenterOptions...)
	s.handlers = &Handlers{server: s}
	s.router = gin.New()
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(RecoveryMiddleware(s.logger))
	s.router.Use(LoggerMiddleware(s.logger))
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handlers.HealthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/scan", s.handlers.GetScan)
		api.POST("/scan", s.handlers.Rescan)
		api.DELETE("/scan", s.handlers.Clear)
		api.GET("/types/:ext/files", s.handlers.GetTypeFiles)
	}
}

// Router returns the Gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Scan runs a scan outside of a request, e.g. at startup.
func (s *Server) Scan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presenter.Scan()
}

func (s *Server) withPresenter(f func(p *assetdirstat.Presenter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.presenter)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info("shutting down report server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- httpServer.Shutdown(shutdownCtx)
	}()

	s.logger.Info("starting report server", zap.String("addr", s.addr))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Info("report server stopped")
	return nil
}

// headlessView discards rendering, the API reads presenter state directly.
type headlessView struct{}

func (headlessView) SetDisabled(bool, string) {}
func (headlessView) ShowHelp(bool, string) {}
func (headlessView) ShowTypes([]assetdirstat.TypeEntry, string, bool, int) {}
func (headlessView) ShowTotals(assetdirstat.TotalsEntry) {}
func (headlessView) ShowFiles(string, []assetdirstat.FileEntry, int) {}
func (headlessView) ShowEmptyFiles(string) {}
func (headlessView) ShowStatus(string, bool) {}
func (headlessView) ScrollOffsets() (int, int) { return 0, 0 }
