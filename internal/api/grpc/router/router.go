package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/ratelimit"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpcctx "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/context"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/handler"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/middleware"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
)

// Router represents a gRPC router for the registry service.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	registryService handler.RegistryService
	health          *health.Server
	contextManager  *grpcctx.Manager
	limiter         ratelimit.Limiter
	logger          *logger.Logger
}

// New creates new gRPC Router instance. health may be nil, in which case
// the router creates its own health server. limiter throttles the mutating
// methods; nil disables throttling.
func New(
	registryService handler.RegistryService,
	health *health.Server,
	contextManager *grpcctx.Manager,
	limiter ratelimit.Limiter,
	logger *logger.Logger,
) *Router {
	return &Router{
		registryService: registryService,
		health:          health,
		contextManager:  contextManager,
		limiter:         limiter,
		logger:          logger,
	}
}

func isMutation(_ context.Context, c interceptors.CallMeta) bool {
	switch c.FullMethod() {
	case "/" + handler.ServiceName + "/Report", "/" + handler.ServiceName + "/Remove":
		return true
	default:
		return false
	}
}

// Health checks are polled often and are not worth a log line each.
func logSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

func (r *Router) recoverPanic(ctx context.Context, p any) error {
	requestID, _ := r.contextManager.GetRequestIDFromContext(ctx)
	r.logger.Error("gRPC handler panicked",
		"request_id", requestID,
		"panic", fmt.Sprint(p),
		"stack", string(debug.Stack()))

	return status.Error(codes.Internal, "internal server error")
}

// Register registers all gRPC services and middleware.
// Interceptors run in order: request ID, logging, rate limit, panic recovery.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	requestID := middleware.NewRequestID(r.contextManager)
	logging := middleware.NewLogging(r.logger, r.contextManager)
	recoveryOpt := recovery.WithRecoveryHandlerContext(r.recoverPanic)

	unary := []grpc.UnaryServerInterceptor{
		requestID.HandleGRPC,
		selector.UnaryServerInterceptor(logging.HandleGRPC, selector.MatchFunc(logSkip)),
	}
	if r.limiter != nil {
		unary = append(unary,
			selector.UnaryServerInterceptor(ratelimit.UnaryServerInterceptor(r.limiter), selector.MatchFunc(isMutation)))
	}
	unary = append(unary, recovery.UnaryServerInterceptor(recoveryOpt))

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
	r.registerRegistryRoutes(s)
	r.registerHealthRoutes(s)

	return s
}

func (r *Router) registerRegistryRoutes(server *grpc.Server) {
	registryHandler := handler.NewRegistry(r.registryService, r.logger)
	handler.RegisterRegistryServer(server, registryHandler)
}

func (r *Router) registerHealthRoutes(server *grpc.Server) {
	if r.health == nil {
		r.health = health.NewServer()
	}
	r.health.SetServingStatus(handler.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, r.health)
}
