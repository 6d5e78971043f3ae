// Package proto holds the generated EntrySync service bindings and the JSON
// codec that carries them ("application/grpc+json").
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative entrysync.proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype used by EntrySync clients.
const CodecName = "json"

var (
	marshalOptions = protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}
	unmarshalOptions = protojson.UnmarshalOptions{
		DiscardUnknown: true,
	}
)

// jsonCodec encodes messages with protojson using field names as declared in
// entrysync.proto. Unset optional fields are left out and decode back to nil.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(protobuf.Message)
	if !ok {
		return nil, fmt.Errorf("json codec: %T is not a proto message", v)
	}
	return marshalOptions.Marshal(m)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(protobuf.Message)
	if !ok {
		return fmt.Errorf("json codec: %T is not a proto message", v)
	}
	return unmarshalOptions.Unmarshal(data, m)
}

func (jsonCodec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
