// Command registry runs the service discovery process: the in-memory
// endpoint store, its RPC surface, and the heartbeat reaper.
package main

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/source-build/dist-services/config"
	"github.com/source-build/dist-services/lifecycle"
	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/registry"
	"github.com/source-build/dist-services/rpcpb"
)

const heartbeatInterval = 10 * time.Second

func main() {
	cfg := config.LoadRegistry()

	store := registry.NewStore()
	server := registry.NewServer(store)

	reaper := registry.NewReaper(store, heartbeatInterval)
	go reaper.Run()
	defer reaper.Stop()

	svc := &lifecycle.Service{
		Name: "platform/service_discovery",
		Addr: cfg.Addr(),
		Register: func(s *grpc.Server) {
			s.RegisterService(&rpcpb.Registry_ServiceDesc, server)
		},
	}

	if err := svc.ServeWithShutdown(context.Background()); err != nil {
		logging.Error("registry", "server exited with error", "err", err.Error())
	}
}
