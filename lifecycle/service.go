// Package lifecycle is the bind/serve/shutdown scaffold shared by all six
// service binaries: registry, the four math workers, and calc.
package lifecycle

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/source-build/dist-services/logging"
)

// Hooks runs before and after the gRPC server serves, e.g. registering with
// and deregistering from the service registry.
type Hooks interface {
	OnStart(ctx context.Context) error
	OnStop()
}

// Service binds Addr, runs Hooks.OnStart, serves until SIGINT/SIGTERM or the
// listener errors, then runs Hooks.OnStop.
type Service struct {
	Name     string
	Addr     string
	Hooks    Hooks
	Register func(*grpc.Server)
}

func (s *Service) Bind() (net.Listener, error) {
	return net.Listen("tcp", s.Addr)
}

// ServeWithShutdown runs the service to completion.
func (s *Service) ServeWithShutdown(ctx context.Context) error {
	lis, err := s.Bind()
	if err != nil {
		return fmt.Errorf("lifecycle: bind %s: %w", s.Addr, err)
	}

	if s.Hooks != nil {
		if err := s.Hooks.OnStart(ctx); err != nil {
			return fmt.Errorf("lifecycle: on_start: %w", err)
		}
	}

	grpcServer := grpc.NewServer()
	s.Register(grpcServer)

	serveErr := make(chan error, 1)
	go func() {
		logging.Info("lifecycle", fmt.Sprintf("serving %s", s.Name), "addr", lis.Addr().String())
		serveErr <- grpcServer.Serve(lis)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		logging.Info("lifecycle", fmt.Sprintf("%s shutting down", s.Name))
		grpcServer.GracefulStop()
	case err := <-serveErr:
		if err != nil {
			logging.Error("lifecycle", fmt.Sprintf("%s exited", s.Name), "err", err.Error())
		}
	}

	if s.Hooks != nil {
		s.Hooks.OnStop()
	}
	return nil
}
