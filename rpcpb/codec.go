package rpcpb

import (
	gojson "github.com/goccy/go-json"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype every client in this module must
// dial with (grpc.CallContentSubtype(CodecName)), since none of these
// services carry protobuf-generated marshalers.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec backs the wire format with goccy/go-json instead of protobuf
// binary encoding. It satisfies grpc/encoding.Codec.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
