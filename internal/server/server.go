package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ironsheep/element-lens/internal/pipeline"
)

// DefaultMaxUploadBytes caps the request body when Options leaves it unset.
const DefaultMaxUploadBytes = 10 << 20

const shutdownTimeout = 10 * time.Second

// Analyzer runs the element pipeline on an image file.
type Analyzer interface {
	Analyze(ctx context.Context, imagePath string) (pipeline.Result, error)
}

// Options configures the HTTP server.
type Options struct {
	// Addr is the listen address, e.g. ":5000".
	Addr string

	// MaxUploadBytes caps the request body. Zero means DefaultMaxUploadBytes.
	MaxUploadBytes int64

	// TempDir receives uploaded files while they are analyzed. Empty means
	// os.TempDir.
	TempDir string

	Logger *slog.Logger
}

// Server serves the upload page and the analyze endpoint.
type Server struct {
	analyzer Analyzer
	opts     Options
	logger   *slog.Logger
	handler  http.Handler
}

// New creates a server that analyzes uploads with a.
func New(a Analyzer, opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		analyzer: a,
		opts:     opts,
		logger:   logger,
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	return s.withRequestID(s.withRecover(mux))
}

// Run listens on Options.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
