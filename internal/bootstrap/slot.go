// Package bootstrap builds the slot backend selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/config"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/repository/postgres"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/storage/file"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/storage/memory"
	storage "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/storage/minio"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/storage/redis"
)

// CloseFunc releases the resources behind a slot store.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenSlot connects to the backend named by cfg.Store.Backend.
func OpenSlot(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.SlotStore, CloseFunc, error) {
	logger.Info("opening slot store", "backend", cfg.Store.Backend, "slot", cfg.Store.Key)

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewSlotStore(), noopClose, nil

	case config.BackendFile:
		s, err := file.NewSlotStore(cfg.File.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return s, noopClose, nil

	case config.BackendRedis:
		client, err := redis.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		return redis.NewSlotStore(client), client.Close, nil

	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return postgres.NewSlotRepository(db), db.Close, nil

	case config.BackendMinio:
		minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		s, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open minio store: %w", err)
		}
		return s, noopClose, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
