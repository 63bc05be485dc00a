package studio

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/Alia5/zmkexport/studio/pb"
)

var marshalOptions = proto.MarshalOptions{Deterministic: true}

// MarshalRequest encodes req as a frame payload.
func MarshalRequest(req *pb.Request) ([]byte, error) {
	b, err := marshalOptions.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return b, nil
}

// UnmarshalRequest decodes a host to device frame payload.
func UnmarshalRequest(b []byte) (*pb.Request, error) {
	req := &pb.Request{}
	if err := proto.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// MarshalResponse encodes resp as a frame payload.
func MarshalResponse(resp *pb.Response) ([]byte, error) {
	b, err := marshalOptions.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return b, nil
}

// UnmarshalResponse decodes a device to host frame payload.
func UnmarshalResponse(b []byte) (*pb.Response, error) {
	resp := &pb.Response{}
	if err := proto.Unmarshal(b, resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return resp, nil
}
