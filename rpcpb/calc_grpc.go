package rpcpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type CalcServer interface {
	Evaluate(context.Context, *MathExpressionRequest) (*MathResponse, error)
}

type UnimplementedCalcServer struct{}

func (UnimplementedCalcServer) Evaluate(context.Context, *MathExpressionRequest) (*MathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Evaluate not implemented")
}

type CalcClient interface {
	Evaluate(ctx context.Context, in *MathExpressionRequest, opts ...grpc.CallOption) (*MathResponse, error)
}

type calcClient struct {
	cc grpc.ClientConnInterface
}

func NewCalcClient(cc grpc.ClientConnInterface) CalcClient {
	return &calcClient{cc}
}

func (c *calcClient) Evaluate(ctx context.Context, in *MathExpressionRequest, opts ...grpc.CallOption) (*MathResponse, error) {
	out := new(MathResponse)
	if err := c.cc.Invoke(ctx, "/rpcpb.Calc/Evaluate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func _Calc_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MathExpressionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalcServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/rpcpb.Calc/Evaluate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalcServer).Evaluate(ctx, req.(*MathExpressionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Calc_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rpcpb.Calc",
	HandlerType: (*CalcServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Evaluate", Handler: _Calc_Evaluate_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "math.proto",
}
