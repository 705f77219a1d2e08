// Command mul runs the multiplication worker: it registers itself with the
// service registry under group "math", name "mul", and serves Compute.
package main

import (
	"context"

	"google.golang.org/grpc"

	"github.com/source-build/dist-services/config"
	"github.com/source-build/dist-services/lifecycle"
	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/mathworker"
	"github.com/source-build/dist-services/registry"
	"github.com/source-build/dist-services/rpcpb"
)

func main() {
	worker := config.LoadWorker("MATH_MUL_HOST", "MATH_MUL_PORT", "127.0.0.1", "50054")
	server := mathworker.NewMul()

	hooks := &lifecycle.RegistrationHooks{Options: registry.ClientOptions{
		RegistryAddr: worker.RegistryAddr,
		Group:        "math",
		Name:         "mul",
		IP:           worker.Host,
		Port:         config.ParsePort(worker.Port),
	}}

	svc := &lifecycle.Service{
		Name:  "math/mul",
		Addr:  worker.Addr(),
		Hooks: hooks,
		Register: func(s *grpc.Server) {
			s.RegisterService(&rpcpb.MulServiceDesc, server)
		},
	}

	if err := svc.ServeWithShutdown(context.Background()); err != nil {
		logging.Error("math.mul", "server exited with error", "err", err.Error())
	}
}
