package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	grpcctx "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/context"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// RequestIDSource issues new request IDs and moves them in and out of a context.
type RequestIDSource interface {
	model.RequestIDManager
	NewRequestID() string
}

// RequestID tags every unary call with a request ID. A caller-supplied ID is
// kept; otherwise a new one is issued. The ID is echoed in the response header.
type RequestID struct {
	source RequestIDSource
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(source RequestIDSource) *RequestID {
	return &RequestID{source: source}
}

// HandleGRPC implements grpc.UnaryServerInterceptor.
func (m *RequestID) HandleGRPC(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id, ok := m.source.GetRequestIDFromContext(ctx)
	if !ok {
		id = m.source.NewRequestID()
	}
	ctx = m.source.SetRequestIDToContext(ctx, id)

	// Fails only outside a server transport, e.g. when called directly in tests.
	_ = grpc.SetHeader(ctx, metadata.Pairs(grpcctx.RequestIDKey, id))

	return handler(ctx, req)
}
