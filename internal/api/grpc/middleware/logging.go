package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger     *logger.Logger
	requestIDs model.RequestIDManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, requestIDs model.RequestIDManager) *Logging {
	return &Logging{logger: logger, requestIDs: requestIDs}
}

// HandleGRPC logs method name, request ID, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	requestID, _ := l.requestIDs.GetRequestIDFromContext(ctx)
	log := l.logger.With("method", info.FullMethod, "request_id", requestID)

	log.Info("gRPC request started",
		"start_time", start.Format(time.RFC3339))

	resp, err := handler(ctx, req)

	duration := time.Since(start)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	log.Info("gRPC request completed",
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String())

	if err != nil {
		log.Error("gRPC request failed",
			"error", err.Error(),
			"status", statusCode.String())
	}

	return resp, err
}
