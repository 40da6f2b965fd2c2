// Package proto holds the wire definitions for the gRPC surface.
// Generated code lands under gen/proto and is not committed.
package proto

//go:generate protoc --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative steelparse/v1/steelparse.proto
