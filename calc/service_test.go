package calc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/source-build/dist-services/rpcpb"
)

func TestServerEvaluateSimple(t *testing.T) {
	s := NewServer(testClients())
	resp, err := s.Evaluate(context.Background(), &rpcpb.MathExpressionRequest{Expression: "+ 1 5"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if resp.Result != 6 {
		t.Fatalf("expected 6, got %d", resp.Result)
	}
}

func TestServerEvaluateUnparseableReturnsZero(t *testing.T) {
	s := NewServer(testClients())
	resp, err := s.Evaluate(context.Background(), &rpcpb.MathExpressionRequest{Expression: "not an expression"})
	if err != nil {
		t.Fatalf("expected lenient zero result, got error: %v", err)
	}
	if resp.Result != 0 {
		t.Fatalf("expected 0, got %d", resp.Result)
	}
}

func TestServerEvaluateMissingClientIsInternal(t *testing.T) {
	s := NewServer(Clients{})
	_, err := s.Evaluate(context.Background(), &rpcpb.MathExpressionRequest{Expression: "+ 1 5"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}
