package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

var _ model.Server = (*Server)(nil)

// Server runs an http.Handler on a listener from a security layer.
type Server struct {
	server *http.Server
}

// NewServer creates a Server for handler on addr.
func NewServer(handler http.Handler, addr string) *Server {
	return &Server{server: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start serves until Stop is called, then returns nil.
func (s *Server) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve http: %w", err)
	}
	return nil
}

// Stop shuts the server down, waiting for active requests until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.server.Addr
}
