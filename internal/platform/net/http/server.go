package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"joblens/internal/platform/config"
	"joblens/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps a chi mux with a stdlib http.Server
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads PORT from cfg and prepares the listener.
// opts receive the raw mux so callers can attach routes and middleware
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns the platform Router seam over the mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Run serves until the listener closes. A graceful Shutdown is not an error
func (s *Server) Run(_ context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
