// Command add runs the addition worker: it registers itself with the
// service registry under group "math", name "add", and serves Compute.
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
	worker := config.LoadWorker("MATH_ADD_HOST", "MATH_ADD_PORT", "127.0.0.1", "50052")
	server := mathworker.NewAdd()

	hooks := &lifecycle.RegistrationHooks{Options: registry.ClientOptions{
		RegistryAddr: worker.RegistryAddr,
		Group:        "math",
		Name:         "add",
		IP:           worker.Host,
		Port:         config.ParsePort(worker.Port),
	}}

	svc := &lifecycle.Service{
		Name:  "math/add",
		Addr:  worker.Addr(),
		Hooks: hooks,
		Register: func(s *grpc.Server) {
			s.RegisterService(&rpcpb.AddServiceDesc, server)
		},
	}

	if err := svc.ServeWithShutdown(context.Background()); err != nil {
		logging.Error("math.add", "server exited with error", "err", err.Error())
	}
}
