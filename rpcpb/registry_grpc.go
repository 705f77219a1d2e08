package rpcpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RegistryServer is the server API for the service registry.
type RegistryServer interface {
	Register(context.Context, *RegisterServiceRequest) (*RegisterServiceResponse, error)
	Deregister(context.Context, *DeregisterServiceRequest) (*Empty, error)
	GetService(context.Context, *GetServiceRequest) (*GetServiceResponse, error)
	ListService(context.Context, *Empty) (*ListServiceResponse, error)
	ListServiceByGroupName(context.Context, *ListServiceByGroupNameRequest) (*ListServiceResponse, error)
}

// UnimplementedRegistryServer may be embedded for forward compatibility.
type UnimplementedRegistryServer struct{}

func (UnimplementedRegistryServer) Register(context.Context, *RegisterServiceRequest) (*RegisterServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}

func (UnimplementedRegistryServer) Deregister(context.Context, *DeregisterServiceRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Deregister not implemented")
}

func (UnimplementedRegistryServer) GetService(context.Context, *GetServiceRequest) (*GetServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetService not implemented")
}

func (UnimplementedRegistryServer) ListService(context.Context, *Empty) (*ListServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListService not implemented")
}

func (UnimplementedRegistryServer) ListServiceByGroupName(context.Context, *ListServiceByGroupNameRequest) (*ListServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListServiceByGroupName not implemented")
}

// RegistryClient is the client API for the service registry.
type RegistryClient interface {
	Register(ctx context.Context, in *RegisterServiceRequest, opts ...grpc.CallOption) (*RegisterServiceResponse, error)
	Deregister(ctx context.Context, in *DeregisterServiceRequest, opts ...grpc.CallOption) (*Empty, error)
	GetService(ctx context.Context, in *GetServiceRequest, opts ...grpc.CallOption) (*GetServiceResponse, error)
	ListService(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListServiceResponse, error)
	ListServiceByGroupName(ctx context.Context, in *ListServiceByGroupNameRequest, opts ...grpc.CallOption) (*ListServiceResponse, error)
}

type registryClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryClient(cc grpc.ClientConnInterface) RegistryClient {
	return &registryClient{cc}
}

func (c *registryClient) Register(ctx context.Context, in *RegisterServiceRequest, opts ...grpc.CallOption) (*RegisterServiceResponse, error) {
	out := new(RegisterServiceResponse)
	if err := c.cc.Invoke(ctx, "/rpcpb.Registry/Register", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) Deregister(ctx context.Context, in *DeregisterServiceRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, "/rpcpb.Registry/Deregister", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) GetService(ctx context.Context, in *GetServiceRequest, opts ...grpc.CallOption) (*GetServiceResponse, error) {
	out := new(GetServiceResponse)
	if err := c.cc.Invoke(ctx, "/rpcpb.Registry/GetService", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) ListService(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListServiceResponse, error) {
	out := new(ListServiceResponse)
	if err := c.cc.Invoke(ctx, "/rpcpb.Registry/ListService", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *registryClient) ListServiceByGroupName(ctx context.Context, in *ListServiceByGroupNameRequest, opts ...grpc.CallOption) (*ListServiceResponse, error) {
	out := new(ListServiceResponse)
	if err := c.cc.Invoke(ctx, "/rpcpb.Registry/ListServiceByGroupName", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Registry_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterServiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Registry/Register"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).Register(ctx, req.(*RegisterServiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_Deregister_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeregisterServiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).Deregister(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Registry/Deregister"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).Deregister(ctx, req.(*DeregisterServiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_GetService_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetServiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).GetService(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Registry/GetService"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).GetService(ctx, req.(*GetServiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_ListService_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).ListService(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Registry/ListService"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).ListService(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Registry_ListServiceByGroupName_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListServiceByGroupNameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RegistryServer).ListServiceByGroupName(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Registry/ListServiceByGroupName"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RegistryServer).ListServiceByGroupName(ctx, req.(*ListServiceByGroupNameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Registry_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rpcpb.Registry",
	HandlerType: (*RegistryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Register", Handler: _Registry_Register_Handler},
		{MethodName: "Deregister", Handler: _Registry_Deregister_Handler},
		{MethodName: "GetService", Handler: _Registry_GetService_Handler},
		{MethodName: "ListService", Handler: _Registry_ListService_Handler},
		{MethodName: "ListServiceByGroupName", Handler: _Registry_ListServiceByGroupName_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "registry.proto",
}
