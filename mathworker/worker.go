// Package mathworker implements the four arithmetic worker services:
// add, sub, mul, and div.
package mathworker

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/source-build/dist-services/rpcpb"
)

type computeFunc func(num1, num2 int64) (int64, error)

// Server implements rpcpb.BinaryOpServer for a single operator, chosen by
// which constructor built it.
type Server struct {
	rpcpb.UnimplementedBinaryOpServer
	compute computeFunc
}

func (s *Server) Compute(ctx context.Context, req *rpcpb.BinaryOpRequest) (*rpcpb.MathResponse, error) {
	result, err := s.compute(req.Num1, req.Num2)
	if err != nil {
		return nil, err
	}
	return &rpcpb.MathResponse{Result: result}, nil
}

func NewAdd() *Server {
	return &Server{compute: func(a, b int64) (int64, error) { return a + b, nil }}
}

func NewSub() *Server {
	return &Server{compute: func(a, b int64) (int64, error) { return a - b, nil }}
}

func NewMul() *Server {
	return &Server{compute: func(a, b int64) (int64, error) { return a * b, nil }}
}

// NewDiv rejects division by zero as an invalid argument.
func NewDiv() *Server {
	return &Server{compute: func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, status.Error(codes.InvalidArgument, "num2 cannot be 0")
		}
		return a / b, nil
	}}
}
