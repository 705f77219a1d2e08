package registry

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/rpcpb"
)

// Server implements rpcpb.RegistryServer over a Store.
type Server struct {
	rpcpb.UnimplementedRegistryServer
	store    *Store
	validate *validator.Validate
}

func NewServer(store *Store) *Server {
	return &Server{store: store, validate: validator.New()}
}

func (s *Server) Register(ctx context.Context, req *rpcpb.RegisterServiceRequest) (*rpcpb.RegisterServiceResponse, error) {
	reqID := uuid.New().String()
	if err := s.validate.Struct(req); err != nil {
		logging.Warning("registry", "register rejected", "req_id", reqID, "err", err.Error())
		return nil, status.Error(codes.InvalidArgument, "group and name are required")
	}

	id := ID{Group: req.Group, Name: req.Name}
	ep := Endpoint{IP: req.IP, Port: req.Port}
	s.store.Put(id, ep)

	// Read back what was just written. Unreachable under the store's single
	// lock, but a mismatch here would mean the store itself is broken, so
	// it is treated as an internal error rather than assumed impossible.
	got, ok := s.store.Get(id)
	if !ok {
		logging.Error("registry", "post-insert read-back failed", "req_id", reqID, "group", req.Group, "name", req.Name)
		return nil, status.Error(codes.Internal, "failed to register service")
	}

	logging.Info("registry", "service registered", "req_id", reqID, "group", req.Group, "name", req.Name, "ip", got.IP, "port", got.Port)
	return &rpcpb.RegisterServiceResponse{IP: got.IP, Port: got.Port}, nil
}

func (s *Server) Deregister(ctx context.Context, req *rpcpb.DeregisterServiceRequest) (*rpcpb.Empty, error) {
	id := ID{Group: req.Group, Name: req.Name}
	s.store.Remove(id)
	logging.Info("registry", "service deregistered", "group", req.Group, "name", req.Name)
	return &rpcpb.Empty{}, nil
}

func (s *Server) GetService(ctx context.Context, req *rpcpb.GetServiceRequest) (*rpcpb.GetServiceResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "group and name parameter cannot be empty")
	}
	id := ID{Group: req.Group, Name: req.Name}
	ep, ok := s.store.Get(id)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "service %s:%s is not registered", req.Group, req.Name)
	}
	return &rpcpb.GetServiceResponse{Group: req.Group, Name: req.Name, IP: ep.IP, Port: ep.Port}, nil
}

func (s *Server) ListService(ctx context.Context, _ *rpcpb.Empty) (*rpcpb.ListServiceResponse, error) {
	entries := s.store.Snapshot()
	out := make([]*rpcpb.GetServiceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &rpcpb.GetServiceResponse{Group: e.ID.Group, Name: e.ID.Name, IP: e.Endpoint.IP, Port: e.Endpoint.Port})
	}
	return &rpcpb.ListServiceResponse{Services: out}, nil
}

// ListServiceByGroupName delegates to ListService and filters by group,
// rather than keeping a secondary index for this one query shape.
func (s *Server) ListServiceByGroupName(ctx context.Context, req *rpcpb.ListServiceByGroupNameRequest) (*rpcpb.ListServiceResponse, error) {
	if req.Group == "" {
		return nil, status.Error(codes.InvalidArgument, "group parameter cannot be empty")
	}
	all, err := s.ListService(ctx, &rpcpb.Empty{})
	if err != nil {
		return nil, err
	}
	var filtered []*rpcpb.GetServiceResponse
	for _, svc := range all.Services {
		if svc.Group == req.Group {
			filtered = append(filtered, svc)
		}
	}
	return &rpcpb.ListServiceResponse{Services: filtered}, nil
}
