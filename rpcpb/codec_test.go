package rpcpb

import "testing"

func TestJSONCodecRoundTrip(t *testing.T) {
	c := jsonCodec{}
	in := &BinaryOpRequest{Num1: 3, Num2: 4}

	data, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := new(BinaryOpRequest)
	if err := c.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Num1 != in.Num1 || out.Num2 != in.Num2 {
		t.Fatalf("round trip mismatch: got %+v, want %+v", out, in)
	}
}

func TestJSONCodecName(t *testing.T) {
	if (jsonCodec{}).Name() != CodecName {
		t.Fatalf("codec name mismatch")
	}
}
