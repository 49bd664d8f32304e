// Package store persists the registry in a single key-value slot.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// Adapter encodes the registry to and from one slot of a SlotStore.
type Adapter struct {
	slot   model.SlotStore
	key    string
	logger *logger.Logger
}

// NewAdapter creates an Adapter bound to key. An empty key selects model.DefaultSlotKey.
func NewAdapter(slot model.SlotStore, key string, logger *logger.Logger) *Adapter {
	if key == "" {
		key = model.DefaultSlotKey
	}
	return &Adapter{
		slot:   slot,
		key:    key,
		logger: logger,
	}
}

// Key returns the slot key the registry is stored under.
func (a *Adapter) Key() string {
	return a.key
}

// Load returns the persisted registry. A missing, unreadable or malformed
// payload yields the seed set; the cause is logged, never returned.
func (a *Adapter) Load(ctx context.Context) []model.ScamEntry {
	payload, err := a.slot.Read(ctx, a.key)
	if errors.Is(err, model.ErrSlotNotFound) {
		a.logger.Info("no persisted registry, using defaults", "slot", a.key)
		return Seed()
	}
	if err != nil {
		a.logger.Warn("failed to read persisted registry, using defaults", "slot", a.key, "error", err)
		return Seed()
	}

	entries, err := decode(payload)
	if err != nil {
		a.logger.Warn("persisted registry is corrupt, using defaults", "slot", a.key, "error", err)
		return Seed()
	}

	a.logger.Debug("loaded persisted registry", "slot", a.key, "entries", len(entries))
	return entries
}

// Save overwrites the slot with entries.
func (a *Adapter) Save(ctx context.Context, entries []model.ScamEntry) error {
	payload, err := encode(entries)
	if err != nil {
		return fmt.Errorf("%w: failed to encode registry: %w", model.ErrPersistence, err)
	}
	if err := a.slot.Write(ctx, a.key, payload); err != nil {
		return fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}
	return nil
}

// Ping checks the slot backend when it supports health checks.
func (a *Adapter) Ping(ctx context.Context) error {
	if hc, ok := a.slot.(model.HealthChecker); ok {
		return hc.Ping(ctx)
	}
	return nil
}
