package model

import "context"

// SlotStore is a raw key-value persistence mechanism holding opaque payloads.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
}

// HealthChecker is implemented by slot stores backed by a remote service.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RegistryStore loads and saves the whole registry.
type RegistryStore interface {
	Load(ctx context.Context) []ScamEntry
	Save(ctx context.Context, entries []ScamEntry) error
}
