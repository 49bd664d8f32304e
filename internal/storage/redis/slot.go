// Package redis keeps slots as plain Redis string keys.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

const keyPrefix = "screener:slot:" // screener:slot:{key}

var _ model.SlotStore = (*SlotStore)(nil)

type SlotStore struct {
	client *goredis.Client
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func NewSlotStore(client *goredis.Client) *SlotStore {
	return &SlotStore{client: client}
}

func (s *SlotStore) Read(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, model.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	return payload, nil
}

func (s *SlotStore) Write(ctx context.Context, key string, payload []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot: %w", err)
	}
	return nil
}

func (s *SlotStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
