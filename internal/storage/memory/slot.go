// Package memory keeps slots in process memory. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

var _ model.SlotStore = (*SlotStore)(nil)

type SlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewSlotStore() *SlotStore {
	return &SlotStore{slots: make(map[string][]byte)}
}

func (s *SlotStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.slots[key]
	if !ok {
		return nil, model.ErrSlotNotFound
	}
	return slices.Clone(payload), nil
}

func (s *SlotStore) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = slices.Clone(payload)
	return nil
}
