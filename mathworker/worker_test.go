package mathworker

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/source-build/dist-services/rpcpb"
)

func TestAdd(t *testing.T) {
	s := NewAdd()
	resp, err := s.Compute(context.Background(), &rpcpb.BinaryOpRequest{Num1: 2, Num2: 3})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if resp.Result != 5 {
		t.Fatalf("expected 5, got %d", resp.Result)
	}
}

func TestSub(t *testing.T) {
	s := NewSub()
	resp, err := s.Compute(context.Background(), &rpcpb.BinaryOpRequest{Num1: 10, Num2: 4})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if resp.Result != 6 {
		t.Fatalf("expected 6, got %d", resp.Result)
	}
}

func TestMul(t *testing.T) {
	s := NewMul()
	resp, err := s.Compute(context.Background(), &rpcpb.BinaryOpRequest{Num1: 6, Num2: 7})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if resp.Result != 42 {
		t.Fatalf("expected 42, got %d", resp.Result)
	}
}

func TestDiv(t *testing.T) {
	s := NewDiv()
	resp, err := s.Compute(context.Background(), &rpcpb.BinaryOpRequest{Num1: 20, Num2: 4})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if resp.Result != 5 {
		t.Fatalf("expected 5, got %d", resp.Result)
	}
}

func TestDivByZeroIsInvalidArgument(t *testing.T) {
	s := NewDiv()
	_, err := s.Compute(context.Background(), &rpcpb.BinaryOpRequest{Num1: 20, Num2: 0})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
