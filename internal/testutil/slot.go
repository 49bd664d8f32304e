package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// ErrWriteRejected is returned by FlakySlot writes while failing is set.
var ErrWriteRejected = errors.New("quota exceeded")

// FlakySlot is an in-memory SlotStore whose reads and writes can be made to fail.
type FlakySlot struct {
	mu       sync.Mutex
	payloads map[string][]byte
	readErr  error
	failing  bool
	writes   int
}

func NewFlakySlot() *FlakySlot {
	return &FlakySlot{payloads: make(map[string][]byte)}
}

func (s *FlakySlot) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	p, ok := s.payloads[key]
	if !ok {
		return nil, model.ErrSlotNotFound
	}
	return append([]byte(nil), p...), nil
}

func (s *FlakySlot) Write(_ context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return ErrWriteRejected
	}
	s.writes++
	s.payloads[key] = append([]byte(nil), payload...)
	return nil
}

// Put stores payload directly, bypassing failure injection.
func (s *FlakySlot) Put(key string, payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads[key] = append([]byte(nil), payload...)
}

// Payload returns the stored payload for key.
func (s *FlakySlot) Payload(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloads[key]
}

func (s *FlakySlot) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

func (s *FlakySlot) SetReadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

// Writes returns the number of successful writes.
func (s *FlakySlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
