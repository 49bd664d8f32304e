package router

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcctx "github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/context"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/handler"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/middleware"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/metrics"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/mocks"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/service"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/storage/memory"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/store"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/testutil"
)

func serve(t *testing.T, r *Router) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := r.Register()
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(mocks.NewRegistryService(t), nil, grpcctx.NewManager(), nil, testutil.MakeNoopLogger())
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, handler.ServiceName)
	assert.Contains(t, info, healthpb.Health_ServiceDesc.ServiceName)
}

func TestRouter_EndToEnd(t *testing.T) {
	ctx := context.Background()
	adapter := store.NewAdapter(memory.NewSlotStore(), "", testutil.MakeNoopLogger())
	registry := service.NewRegistry(ctx, adapter, testutil.MakeNoopLogger(), metrics.New())

	conn := serve(t, New(registry, nil, grpcctx.NewManager(), nil, testutil.MakeNoopLogger()))
	client := handler.NewRegistryClient(conn)

	check, err := client.Check(ctx, &handler.CheckRequest{Number: "(888) 123-4567"})
	require.NoError(t, err)
	assert.True(t, check.Matched)
	assert.Equal(t, "Tech Support", check.Category)

	report, err := client.Report(ctx, &handler.ReportRequest{Number: "555.123.4567", Category: "Charity"})
	require.NoError(t, err)
	assert.Equal(t, "555-123-4567", report.Entry.Number)

	_, err = client.Report(ctx, &handler.ReportRequest{Number: "5551234567"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.Report(ctx, &handler.ReportRequest{Number: "555-1234"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	declined, err := client.Remove(ctx, &handler.RemoveRequest{Number: "555-123-4567"})
	require.NoError(t, err)
	assert.False(t, declined.Removed)

	removed, err := client.Remove(ctx, &handler.RemoveRequest{Number: "555-123-4567", Confirmed: true})
	require.NoError(t, err)
	assert.True(t, removed.Removed)

	found, err := client.Search(ctx, &handler.SearchRequest{Term: "LOTTERY"})
	require.NoError(t, err)
	assert.Len(t, found.Entries, 2)

	stats, err := client.Stats(ctx, &handler.StatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	svc := mocks.NewRegistryService(t)
	svc.On("Stats", mock.Anything).Return(model.Stats{})

	manager := grpcctx.NewManager()
	client := handler.NewRegistryClient(serve(t, New(svc, nil, manager, nil, testutil.MakeNoopLogger())))

	var header metadata.MD
	ctx := metadata.AppendToOutgoingContext(context.Background(), grpcctx.RequestIDKey, "client-id")
	_, err := client.Stats(ctx, &handler.StatsRequest{}, grpc.Header(&header))
	require.NoError(t, err)

	got, ok := manager.GetRequestIDFromResponseMetadata(header)
	assert.True(t, ok)
	assert.Equal(t, "client-id", got)
}

func TestRouter_RecoversPanics(t *testing.T) {
	svc := mocks.NewRegistryService(t)
	svc.On("Stats", mock.Anything).Panic("boom")

	client := handler.NewRegistryClient(serve(t, New(svc, nil, grpcctx.NewManager(), nil, testutil.MakeNoopLogger())))

	_, err := client.Stats(context.Background(), &handler.StatsRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestRouter_Health(t *testing.T) {
	hs := health.NewServer()
	conn := serve(t, New(mocks.NewRegistryService(t), hs, grpcctx.NewManager(), nil, testutil.MakeNoopLogger()))
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: handler.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	hs.Shutdown()
	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: handler.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

func TestRouter_RateLimitsMutations(t *testing.T) {
	svc := mocks.NewRegistryService(t)
	svc.On("Report", mock.Anything, "555-123-4567", "", "").Return(model.ScamEntry{Number: "555-123-4567"}, nil).Once()
	svc.On("Check", mock.Anything, "555-123-4567").Return(model.MatchResult{Matched: true})

	limiter := middleware.NewRateLimiter(0.001, 1)
	client := handler.NewRegistryClient(serve(t, New(svc, nil, grpcctx.NewManager(), limiter, testutil.MakeNoopLogger())))
	ctx := context.Background()

	_, err := client.Report(ctx, &handler.ReportRequest{Number: "555-123-4567"})
	require.NoError(t, err)

	_, err = client.Report(ctx, &handler.ReportRequest{Number: "555-123-4567"})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	for range 3 {
		_, err = client.Check(ctx, &handler.CheckRequest{Number: "555-123-4567"})
		require.NoError(t, err)
	}
}
