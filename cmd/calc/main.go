// Command calc runs the calculator service: it resolves the four
// arithmetic workers through the registry, dials each, and serves Evaluate.
package main

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/source-build/dist-services/calc"
	"github.com/source-build/dist-services/config"
	"github.com/source-build/dist-services/lifecycle"
	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/registry"
	"github.com/source-build/dist-services/rpcpb"
)

func dialJSON(addr string) (*grpc.ClientConn, error) {
	return grpc.Dial(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpcpb.CodecName)),
	)
}

// resolve looks up name in the registry, retrying with backoff since a
// worker may not have finished registering yet when calc starts up, then
// dials its endpoint.
func resolve(ctx context.Context, rc rpcpb.RegistryClient, group, name string) (*grpc.ClientConn, error) {
	var ep *rpcpb.GetServiceResponse
	err := retry.Do(func() error {
		resp, err := rc.GetService(ctx, &rpcpb.GetServiceRequest{Group: group, Name: name})
		if err != nil {
			return err
		}
		ep = resp
		return nil
	}, retry.Attempts(5), retry.Delay(time.Second), retry.DelayType(retry.BackOffDelay))
	if err != nil {
		return nil, err
	}
	return dialJSON(net.JoinHostPort(ep.IP, strconv.Itoa(int(ep.Port))))
}

func main() {
	ctx := context.Background()
	worker := config.LoadWorker("MATH_CALC_HOST", "MATH_CALC_PORT", "127.0.0.1", "50056")

	regConn, err := dialJSON(worker.RegistryAddr)
	if err != nil {
		logging.Error("calc", "cannot dial registry", "err", err.Error())
		return
	}
	rc := rpcpb.NewRegistryClient(regConn)

	clients := calc.Clients{}
	if conn, err := resolve(ctx, rc, "math", "add"); err == nil {
		clients.Add = calc.NewOpClient(rpcpb.NewAddClient(conn))
	} else {
		logging.Warning("calc", "add worker unavailable at startup", "err", err.Error())
	}
	if conn, err := resolve(ctx, rc, "math", "sub"); err == nil {
		clients.Sub = calc.NewOpClient(rpcpb.NewSubClient(conn))
	} else {
		logging.Warning("calc", "sub worker unavailable at startup", "err", err.Error())
	}
	if conn, err := resolve(ctx, rc, "math", "mul"); err == nil {
		clients.Mul = calc.NewOpClient(rpcpb.NewMulClient(conn))
	} else {
		logging.Warning("calc", "mul worker unavailable at startup", "err", err.Error())
	}
	if conn, err := resolve(ctx, rc, "math", "div"); err == nil {
		clients.Div = calc.NewOpClient(rpcpb.NewDivClient(conn))
	} else {
		logging.Warning("calc", "div worker unavailable at startup", "err", err.Error())
	}

	server := calc.NewServer(clients)

	hooks := &lifecycle.RegistrationHooks{Options: registry.ClientOptions{
		RegistryAddr: worker.RegistryAddr,
		Group:        "math",
		Name:         "calc",
		IP:           worker.Host,
		Port:         config.ParsePort(worker.Port),
	}}

	svc := &lifecycle.Service{
		Name:  "math/calc",
		Addr:  worker.Addr(),
		Hooks: hooks,
		Register: func(s *grpc.Server) {
			s.RegisterService(&rpcpb.Calc_ServiceDesc, server)
		},
	}

	if err := svc.ServeWithShutdown(ctx); err != nil {
		logging.Error("calc", "server exited with error", "err", err.Error())
	}
}
