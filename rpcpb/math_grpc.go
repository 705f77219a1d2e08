package rpcpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BinaryOpServer is implemented by every arithmetic worker (add/sub/mul/div).
// They share one request/response shape, so one interface covers all four.
type BinaryOpServer interface {
	Compute(context.Context, *BinaryOpRequest) (*MathResponse, error)
}

// UnimplementedBinaryOpServer may be embedded for forward compatibility.
type UnimplementedBinaryOpServer struct{}

func (UnimplementedBinaryOpServer) Compute(context.Context, *BinaryOpRequest) (*MathResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Compute not implemented")
}

// BinaryOpClient is the client side counterpart, shared by all four operators.
type BinaryOpClient interface {
	Compute(ctx context.Context, in *BinaryOpRequest, opts ...grpc.CallOption) (*MathResponse, error)
}

type binaryOpClient struct {
	cc     grpc.ClientConnInterface
	method string
}

func (c *binaryOpClient) Compute(ctx context.Context, in *BinaryOpRequest, opts ...grpc.CallOption) (*MathResponse, error) {
	out := new(MathResponse)
	if err := c.cc.Invoke(ctx, c.method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func newBinaryOpHandler(fullMethod string) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(BinaryOpRequest)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return srv.(BinaryOpServer).Compute(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.(BinaryOpServer).Compute(ctx, req.(*BinaryOpRequest))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newBinaryOpServiceDesc(serviceName, rpcName string) grpc.ServiceDesc {
	fullMethod := "/" + serviceName + "/" + rpcName
	return grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*BinaryOpServer)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: rpcName, Handler: newBinaryOpHandler(fullMethod)},
		},
		Streams:  []grpc.StreamDesc{},
		Metadata: "math.proto",
	}
}

var (
	AddServiceDesc = newBinaryOpServiceDesc("rpcpb.Add", "Add")
	SubServiceDesc = newBinaryOpServiceDesc("rpcpb.Sub", "Sub")
	MulServiceDesc = newBinaryOpServiceDesc("rpcpb.Mul", "Mul")
	DivServiceDesc = newBinaryOpServiceDesc("rpcpb.Div", "Div")
)

func NewAddClient(cc grpc.ClientConnInterface) BinaryOpClient {
	return &binaryOpClient{cc: cc, method: "/rpcpb.Add/Add"}
}

func NewSubClient(cc grpc.ClientConnInterface) BinaryOpClient {
	return &binaryOpClient{cc: cc, method: "/rpcpb.Sub/Sub"}
}

func NewMulClient(cc grpc.ClientConnInterface) BinaryOpClient {
	return &binaryOpClient{cc: cc, method: "/rpcpb.Mul/Mul"}
}

func NewDivClient(cc grpc.ClientConnInterface) BinaryOpClient {
	return &binaryOpClient{cc: cc, method: "/rpcpb.Div/Div"}
}
