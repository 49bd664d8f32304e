package handler

import (
	"context"

	"google.golang.org/grpc"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/api/grpc/codec"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "screener.v1.Registry"

// RegistryServer is the server API of the registry service.
type RegistryServer interface {
	Check(context.Context, *CheckRequest) (*CheckResponse, error)
	Report(context.Context, *ReportRequest) (*ReportResponse, error)
	Remove(context.Context, *RemoveRequest) (*RemoveResponse, error)
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	Stats(context.Context, *StatsRequest) (*StatsResponse, error)
	Format(context.Context, *FormatRequest) (*FormatResponse, error)
}

// RegistryServiceDesc describes the registry service for grpc.Server.RegisterService.
var RegistryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Check", RegistryServer.Check),
		unary("Report", RegistryServer.Report),
		unary("Remove", RegistryServer.Remove),
		unary("Search", RegistryServer.Search),
		unary("Stats", RegistryServer.Stats),
		unary("Format", RegistryServer.Format),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "screener/v1/registry",
}

// RegisterRegistryServer registers srv on s.
func RegisterRegistryServer(s grpc.ServiceRegistrar, srv RegistryServer) {
	s.RegisterService(&RegistryServiceDesc, srv)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req, Resp any](name string, call func(RegistryServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(RegistryServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(RegistryServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// RegistryClient calls the registry service over the JSON codec.
type RegistryClient struct {
	cc grpc.ClientConnInterface
}

// NewRegistryClient creates a client on cc.
func NewRegistryClient(cc grpc.ClientConnInterface) *RegistryClient {
	return &RegistryClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, c *RegistryClient, name string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethod(name), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryClient) Check(ctx context.Context, in *CheckRequest, opts ...grpc.CallOption) (*CheckResponse, error) {
	return invoke[CheckResponse](ctx, c, "Check", in, opts)
}

func (c *RegistryClient) Report(ctx context.Context, in *ReportRequest, opts ...grpc.CallOption) (*ReportResponse, error) {
	return invoke[ReportResponse](ctx, c, "Report", in, opts)
}

func (c *RegistryClient) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*RemoveResponse, error) {
	return invoke[RemoveResponse](ctx, c, "Remove", in, opts)
}

func (c *RegistryClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	return invoke[SearchResponse](ctx, c, "Search", in, opts)
}

func (c *RegistryClient) Stats(ctx context.Context, in *StatsRequest, opts ...grpc.CallOption) (*StatsResponse, error) {
	return invoke[StatsResponse](ctx, c, "Stats", in, opts)
}

func (c *RegistryClient) Format(ctx context.Context, in *FormatRequest, opts ...grpc.CallOption) (*FormatResponse, error) {
	return invoke[FormatResponse](ctx, c, "Format", in, opts)
}
