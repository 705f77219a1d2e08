package calc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/source-build/dist-services/mathworker"
	"github.com/source-build/dist-services/rpcpb"
)

// TestCalcAddEndToEnd sends "+ 1 5" through a Calc server wired to a real
// (in-process, over TCP) add worker and expects 6 back.
func TestCalcAddEndToEnd(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	addServer := grpc.NewServer()
	addServer.RegisterService(&rpcpb.AddServiceDesc, mathworker.NewAdd())
	go addServer.Serve(lis)
	defer addServer.Stop()

	conn, err := grpc.Dial(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpcpb.CodecName)),
		grpc.WithBlock(),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	clients := Clients{Add: NewOpClient(rpcpb.NewAddClient(conn))}
	calcServer := NewServer(clients)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := calcServer.Evaluate(ctx, &rpcpb.MathExpressionRequest{Expression: "+ 1 5"})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if resp.Result != 6 {
		t.Fatalf("expected 6, got %d", resp.Result)
	}
}
