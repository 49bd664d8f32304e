package model

import "context"

// RequestIDManager stores and retrieves request IDs carried in call metadata.
type RequestIDManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
}
