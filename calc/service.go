package calc

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/rpcpb"
)

// breakerResource is the Sentinel resource name every evaluation started by
// Evaluate is guarded under. Unparseable expressions return before the
// breaker is entered.
const breakerResource = "calc-evaluate"

// Server implements rpcpb.CalcServer.
type Server struct {
	rpcpb.UnimplementedCalcServer
	evaluator *Evaluator
	group     singleflight.Group
}

func NewServer(clients Clients) *Server {
	ensureBreakerLoaded()
	return &Server{evaluator: NewEvaluator(clients)}
}

// Evaluate parses and evaluates req.Expression. An unparseable expression
// is not an RPC error; it resolves to a zero result rather than surfacing
// a Status.
func (s *Server) Evaluate(ctx context.Context, req *rpcpb.MathExpressionRequest) (*rpcpb.MathResponse, error) {
	node, ok := Parse(req.Expression)
	if !ok {
		logging.Warning("calc", "unparseable expression, returning 0", "expression", req.Expression)
		return &rpcpb.MathResponse{Result: 0}, nil
	}

	// Concurrent identical expression text is deduplicated onto one live
	// evaluation rather than re-dispatched to the workers once per caller.
	// Arithmetic on literal operands is deterministic, so sharing the
	// result is safe.
	v, err, _ := s.group.Do(req.Expression, func() (interface{}, error) {
		var result int64
		err := withBreaker(breakerResource, func() error {
			r, err := s.evaluator.Eval(ctx, node)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
		return result, err
	})
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("calc failed with reason %s", err))
	}
	return &rpcpb.MathResponse{Result: v.(int64)}, nil
}
