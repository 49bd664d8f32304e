package context

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// RequestIDKey is the metadata key carrying the request ID, both on incoming
// requests and on response headers.
const RequestIDKey = "x-request-id"

var _ model.RequestIDManager = (*Manager)(nil)

// Manager stores and retrieves request IDs in gRPC metadata.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// NewRequestID returns a fresh random request ID.
func (m *Manager) NewRequestID() string {
	return uuid.NewString()
}

// SetRequestIDToContext sets the request ID in the incoming metadata of ctx,
// replacing any value the caller sent.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{RequestIDKey: requestID})
	} else {
		md = md.Copy()
		md.Set(RequestIDKey, requestID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetRequestIDFromContext retrieves the request ID from incoming metadata.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	return first(md)
}

// GetRequestIDFromResponseMetadata retrieves the request ID a server echoed
// in its response header.
func (m *Manager) GetRequestIDFromResponseMetadata(md metadata.MD) (string, bool) {
	return first(md)
}

func first(md metadata.MD) (string, bool) {
	ids := md.Get(RequestIDKey)
	if len(ids) == 0 || ids[0] == "" {
		return "", false
	}

	return ids[0], true
}
