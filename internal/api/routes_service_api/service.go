package routes_service_api

import (
	"context"

	"github.com/Domenick1991/airroute/internal/domain"
	"google.golang.org/grpc"
)

const (
	serviceName = "airroute.routes.v1.RoutesService"

	FindRouteMethod = "/" + serviceName + "/FindRoute"
	ReloadMethod    = "/" + serviceName + "/Reload"
)

type FindRouteRequest struct {
	Criterion string `json:"criterion"`
	StartCity int    `json:"start_city"`
	EndCity   int    `json:"end_city"`
	T1        int    `json:"t1"`
	T2        int    `json:"t2"`
}

type ReloadRequest struct{}

type ReloadResponse struct {
	Snapshot uint64 `json:"snapshot"`
}

type RoutesServiceServer interface {
	FindRoute(context.Context, *FindRouteRequest) (*domain.RouteResult, error)
	Reload(context.Context, *ReloadRequest) (*ReloadResponse, error)
}

func RegisterRoutesServiceServer(s grpc.ServiceRegistrar, srv RoutesServiceServer) {
	s.RegisterService(&RoutesServiceDesc, srv)
}

var RoutesServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*RoutesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FindRoute", Handler: findRouteHandler},
		{MethodName: "Reload", Handler: reloadHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airroute/routes/v1",
}

func findRouteHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FindRouteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutesServiceServer).FindRoute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FindRouteMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoutesServiceServer).FindRoute(ctx, req.(*FindRouteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func reloadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ReloadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoutesServiceServer).Reload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ReloadMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoutesServiceServer).Reload(ctx, req.(*ReloadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Client calls RoutesService over an existing connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) FindRoute(ctx context.Context, in *FindRouteRequest, opts ...grpc.CallOption) (*domain.RouteResult, error) {
	out := new(domain.RouteResult)
	if err := c.cc.Invoke(ctx, FindRouteMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Reload(ctx context.Context, in *ReloadRequest, opts ...grpc.CallOption) (*ReloadResponse, error) {
	out := new(ReloadResponse)
	if err := c.cc.Invoke(ctx, ReloadMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}
