package server

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

var _ model.Server = (*GRPCServer)(nil)

// HealthShutdowner marks every served service NOT_SERVING.
type HealthShutdowner interface {
	Shutdown()
}

// GRPCServer wraps a gRPC server with address and lifecycle methods.
type GRPCServer struct {
	server *grpc.Server
	health HealthShutdowner
	addr   string
}

// NewGRPCServer creates a GRPCServer with given server and address. health
// may be nil.
func NewGRPCServer(
	server *grpc.Server,
	health HealthShutdowner,
	addr string,
) *GRPCServer {
	return &GRPCServer{server: server, health: health, addr: addr}
}

// Start starts serving on the configured address using the provided security
// layer. It returns nil once Stop has been called.
func (s *GRPCServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("failed to serve grpc: %w", err)
	}
	return nil
}

// Stop reports NOT_SERVING, then drains in-flight calls. Calls still running
// when ctx is done are cut off.
func (s *GRPCServer) Stop(ctx context.Context) error {
	if s.health != nil {
		s.health.Shutdown()
	}

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.server.Stop()
		<-done
		return fmt.Errorf("graceful stop interrupted: %w", ctx.Err())
	}
}

// Address returns the configured listen address.
func (s *GRPCServer) Address() string {
	return s.addr
}
