package calc

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/source-build/dist-services/rpcpb"
)

// OpClient pairs an RPC client for one operator with the cooperative mutex
// guarding it: a weight-1 semaphore.Weighted, acquired with the caller's
// own context so cancellation during an in-flight dispatch actually
// unblocks a waiter. A plain sync.Mutex can't do that.
type OpClient struct {
	client rpcpb.BinaryOpClient
	sem    *semaphore.Weighted
}

func NewOpClient(client rpcpb.BinaryOpClient) *OpClient {
	return &OpClient{client: client, sem: semaphore.NewWeighted(1)}
}

func (c *OpClient) Compute(ctx context.Context, num1, num2 int64) (int64, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer c.sem.Release(1)

	resp, err := c.client.Compute(ctx, &rpcpb.BinaryOpRequest{Num1: num1, Num2: num2})
	if err != nil {
		return 0, err
	}
	return resp.Result, nil
}

// Clients bundles the four optional per-operator clients an Evaluator
// dispatches to. A nil slot is valid configuration: it surfaces as
// ClientNotSuppliedError at dispatch time rather than a startup failure,
// so the calculator can still serve expressions that don't need the
// missing operator.
type Clients struct {
	Add, Sub, Mul, Div *OpClient
}

func (c Clients) forOperator(op Operator) *OpClient {
	switch op {
	case Add:
		return c.Add
	case Sub:
		return c.Sub
	case Mul:
		return c.Mul
	case Div:
		return c.Div
	default:
		return nil
	}
}
