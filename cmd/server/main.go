package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/reflection"

	grpcctx "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/context"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/middleware"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/router"
	grpcServer "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/server"
	httpapi "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/http"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/bootstrap"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/config"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/metrics"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/scheduler"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/server"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/service"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/store"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	logAppVersion()

	slot, closeSlot, err := bootstrap.OpenSlot(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer func() {
		if err := closeSlot(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	m := metrics.New()
	adapter := store.NewAdapter(slot, cfg.Store.Key, logger)
	registry := service.NewRegistry(ctx, adapter, logger, m)

	sched := scheduler.New(logger)
	if err := sched.Add("publish-stats", cfg.Stats.Schedule, registry.PublishStats); err != nil {
		logger.Fatal("failed to schedule stats refresh", "error", err)
	}
	registry.PublishStats(ctx)
	sched.Start()

	healthServer := health.NewServer()
	servers := []model.Server{
		registerGRPCServer(cfg, logger, registry, healthServer),
		httpapi.NewServer(
			httpapi.NewRouter(m.Registry, registry, adapter, logger),
			fmt.Sprintf(":%s", cfg.HTTP.Port),
		),
	}
	layers := []model.SecurityLayer{
		server.NewSecurityLayer(cfg.GRPC),
		server.NewPlainListener(),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range servers {
		g.Go(func() error {
			logger.Info("Starting server on", "address", s.Address())
			return s.Start(layers[i])
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		for _, s := range servers {
			if err := s.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", s.Address())
			}
		}
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Error("error stopping scheduler", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	cfg *config.Config,
	logger *logger.Logger,
	registry *service.Registry,
	healthServer *health.Server,
) *grpcServer.GRPCServer {
	var limiter ratelimit.Limiter
	if cfg.GRPC.MutationRate > 0 {
		limiter = middleware.NewRateLimiter(cfg.GRPC.MutationRate, cfg.GRPC.MutationBurst)
	}

	r := router.New(registry, healthServer, grpcctx.NewManager(), limiter, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, healthServer, fmt.Sprintf(":%s", cfg.GRPC.Port))
}
