// Command div runs the division worker: it registers itself with the
// service registry under group "math", name "div", and serves Compute.
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
	worker := config.LoadWorker("MATH_DIV_HOST", "MATH_DIV_PORT", "127.0.0.1", "50055")
	server := mathworker.NewDiv()

	hooks := &lifecycle.RegistrationHooks{Options: registry.ClientOptions{
		RegistryAddr: worker.RegistryAddr,
		Group:        "math",
		Name:         "div",
		IP:           worker.Host,
		Port:         config.ParsePort(worker.Port),
	}}

	svc := &lifecycle.Service{
		Name:  "math/div",
		Addr:  worker.Addr(),
		Hooks: hooks,
		Register: func(s *grpc.Server) {
			s.RegisterService(&rpcpb.DivServiceDesc, server)
		},
	}

	if err := svc.ServeWithShutdown(context.Background()); err != nil {
		logging.Error("math.div", "server exited with error", "err", err.Error())
	}
}
