// Package rpcpb holds the wire types and hand-maintained gRPC service
// descriptors for the registry, the arithmetic workers and the calculator.
// There is no .proto/protoc step here (see codec.go); the shapes below are
// authored directly, the way protoc-gen-go would have emitted them.
package rpcpb

// Empty stands in for google.protobuf.Empty on request/response slots that
// carry no data.
type Empty struct{}

// RegisterServiceRequest is sent by a service instance announcing itself,
// or refreshing its heartbeat: registering an already-known group/name
// simply overwrites the stored endpoint.
type RegisterServiceRequest struct {
	Group string `json:"group" validate:"required"`
	Name  string `json:"name" validate:"required"`
	IP    string `json:"ip"`
	Port  uint32 `json:"port"`
}

type RegisterServiceResponse struct {
	IP   string `json:"ip"`
	Port uint32 `json:"port"`
}

type DeregisterServiceRequest struct {
	Group string `json:"group"`
	Name  string `json:"name"`
}

type GetServiceRequest struct {
	Group string `json:"group" validate:"required"`
	Name  string `json:"name" validate:"required"`
}

type GetServiceResponse struct {
	Group string `json:"group"`
	Name  string `json:"name"`
	IP    string `json:"ip"`
	Port  uint32 `json:"port"`
}

type ListServiceResponse struct {
	Services []*GetServiceResponse `json:"services"`
}

type ListServiceByGroupNameRequest struct {
	Group string `json:"group" validate:"required"`
}

// BinaryOpRequest is the request shape shared by every arithmetic worker.
type BinaryOpRequest struct {
	Num1 int64 `json:"num1"`
	Num2 int64 `json:"num2"`
}

type MathResponse struct {
	Result int64 `json:"result"`
}

type MathExpressionRequest struct {
	Expression string `json:"expression"`
}
