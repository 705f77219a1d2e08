package registry

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/source-build/dist-services/rpcpb"
)

// TestRegistryRPCRoundTrip exercises the hand-rolled ServiceDesc, codec and
// client together over a real TCP connection, the way nothing short of an
// actual gRPC dial can.
func TestRegistryRPCRoundTrip(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	grpcServer.RegisterService(&rpcpb.Registry_ServiceDesc, NewServer(NewStore()))
	go grpcServer.Serve(lis)
	defer grpcServer.Stop()

	conn, err := grpc.Dial(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpcpb.CodecName)),
		grpc.WithBlock(),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	client := rpcpb.NewRegistryClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Register(ctx, &rpcpb.RegisterServiceRequest{Group: "math", Name: "add", IP: "127.0.0.1", Port: 9000}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := client.GetService(ctx, &rpcpb.GetServiceRequest{Group: "math", Name: "add"})
	if err != nil {
		t.Fatalf("get service: %v", err)
	}
	if got.Port != 9000 {
		t.Fatalf("unexpected port: %d", got.Port)
	}

	if _, err := client.Deregister(ctx, &rpcpb.DeregisterServiceRequest{Group: "math", Name: "add"}); err != nil {
		t.Fatalf("deregister: %v", err)
	}

	if _, err := client.GetService(ctx, &rpcpb.GetServiceRequest{Group: "math", Name: "add"}); err == nil {
		t.Fatalf("expected not found after deregister")
	}
}
