// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: steelparse/v1/steelparse.proto

package steelparsepb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InventoryMappingService_ParseItems_FullMethodName       = "/steelparse.v1.InventoryMappingService/ParseItems"
	InventoryMappingService_ListUnvalidated_FullMethodName  = "/steelparse.v1.InventoryMappingService/ListUnvalidated"
	InventoryMappingService_ValidateMapping_FullMethodName  = "/steelparse.v1.InventoryMappingService/ValidateMapping"
	InventoryMappingService_RefreshExistence_FullMethodName = "/steelparse.v1.InventoryMappingService/RefreshExistence"
)

// InventoryMappingServiceClient is the client API for InventoryMappingService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InventoryMappingService is the outer surface for the mapping core:
// admin-driven parsing plus the human-validation workflow.
type InventoryMappingServiceClient interface {
	// ParseItems resolves a batch of raw items, order-preserving.
	ParseItems(ctx context.Context, in *ParseItemsRequest, opts ...grpc.CallOption) (*ParseItemsResponse, error)
	// ListUnvalidated returns mappings awaiting review, newest first.
	ListUnvalidated(ctx context.Context, in *ListUnvalidatedRequest, opts ...grpc.CallOption) (*ListUnvalidatedResponse, error)
	// ValidateMapping applies reviewer corrections and marks a mapping trusted.
	ValidateMapping(ctx context.Context, in *ValidateMappingRequest, opts ...grpc.CallOption) (*ValidateMappingResponse, error)
	// RefreshExistence recomputes one mapping's external-existence flag.
	RefreshExistence(ctx context.Context, in *RefreshExistenceRequest, opts ...grpc.CallOption) (*RefreshExistenceResponse, error)
}

type inventoryMappingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryMappingServiceClient(cc grpc.ClientConnInterface) InventoryMappingServiceClient {
	return &inventoryMappingServiceClient{cc}
}

func (c *inventoryMappingServiceClient) ParseItems(ctx context.Context, in *ParseItemsRequest, opts ...grpc.CallOption) (*ParseItemsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseItemsResponse)
	err := c.cc.Invoke(ctx, InventoryMappingService_ParseItems_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryMappingServiceClient) ListUnvalidated(ctx context.Context, in *ListUnvalidatedRequest, opts ...grpc.CallOption) (*ListUnvalidatedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUnvalidatedResponse)
	err := c.cc.Invoke(ctx, InventoryMappingService_ListUnvalidated_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryMappingServiceClient) ValidateMapping(ctx context.Context, in *ValidateMappingRequest, opts ...grpc.CallOption) (*ValidateMappingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateMappingResponse)
	err := c.cc.Invoke(ctx, InventoryMappingService_ValidateMapping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *inventoryMappingServiceClient) RefreshExistence(ctx context.Context, in *RefreshExistenceRequest, opts ...grpc.CallOption) (*RefreshExistenceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RefreshExistenceResponse)
	err := c.cc.Invoke(ctx, InventoryMappingService_RefreshExistence_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InventoryMappingServiceServer is the server API for InventoryMappingService service.
// All implementations must embed UnimplementedInventoryMappingServiceServer
// for forward compatibility.
//
// InventoryMappingService is the outer surface for the mapping core:
// admin-driven parsing plus the human-validation workflow.
type InventoryMappingServiceServer interface {
	// ParseItems resolves a batch of raw items, order-preserving.
	ParseItems(context.Context, *ParseItemsRequest) (*ParseItemsResponse, error)
	// ListUnvalidated returns mappings awaiting review, newest first.
	ListUnvalidated(context.Context, *ListUnvalidatedRequest) (*ListUnvalidatedResponse, error)
	// ValidateMapping applies reviewer corrections and marks a mapping trusted.
	ValidateMapping(context.Context, *ValidateMappingRequest) (*ValidateMappingResponse, error)
	// RefreshExistence recomputes one mapping's external-existence flag.
	RefreshExistence(context.Context, *RefreshExistenceRequest) (*RefreshExistenceResponse, error)
	mustEmbedUnimplementedInventoryMappingServiceServer()
}

// UnimplementedInventoryMappingServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInventoryMappingServiceServer struct{}

func (UnimplementedInventoryMappingServiceServer) ParseItems(context.Context, *ParseItemsRequest) (*ParseItemsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseItems not implemented")
}
func (UnimplementedInventoryMappingServiceServer) ListUnvalidated(context.Context, *ListUnvalidatedRequest) (*ListUnvalidatedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUnvalidated not implemented")
}
func (UnimplementedInventoryMappingServiceServer) ValidateMapping(context.Context, *ValidateMappingRequest) (*ValidateMappingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateMapping not implemented")
}
func (UnimplementedInventoryMappingServiceServer) RefreshExistence(context.Context, *RefreshExistenceRequest) (*RefreshExistenceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshExistence not implemented")
}
func (UnimplementedInventoryMappingServiceServer) mustEmbedUnimplementedInventoryMappingServiceServer() {
}
func (UnimplementedInventoryMappingServiceServer) testEmbeddedByValue() {}

// UnsafeInventoryMappingServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InventoryMappingServiceServer will
// result in compilation errors.
type UnsafeInventoryMappingServiceServer interface {
	mustEmbedUnimplementedInventoryMappingServiceServer()
}

func RegisterInventoryMappingServiceServer(s grpc.ServiceRegistrar, srv InventoryMappingServiceServer) {
	// If the following call pancis, it indicates UnimplementedInventoryMappingServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InventoryMappingService_ServiceDesc, srv)
}

func _InventoryMappingService_ParseItems_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseItemsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryMappingServiceServer).ParseItems(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryMappingService_ParseItems_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryMappingServiceServer).ParseItems(ctx, req.(*ParseItemsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryMappingService_ListUnvalidated_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUnvalidatedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryMappingServiceServer).ListUnvalidated(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryMappingService_ListUnvalidated_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryMappingServiceServer).ListUnvalidated(ctx, req.(*ListUnvalidatedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryMappingService_ValidateMapping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateMappingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryMappingServiceServer).ValidateMapping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryMappingService_ValidateMapping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryMappingServiceServer).ValidateMapping(ctx, req.(*ValidateMappingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InventoryMappingService_RefreshExistence_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshExistenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InventoryMappingServiceServer).RefreshExistence(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InventoryMappingService_RefreshExistence_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InventoryMappingServiceServer).RefreshExistence(ctx, req.(*RefreshExistenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InventoryMappingService_ServiceDesc is the grpc.ServiceDesc for InventoryMappingService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InventoryMappingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "steelparse.v1.InventoryMappingService",
	HandlerType: (*InventoryMappingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseItems",
			Handler:    _InventoryMappingService_ParseItems_Handler,
		},
		{
			MethodName: "ListUnvalidated",
			Handler:    _InventoryMappingService_ListUnvalidated_Handler,
		},
		{
			MethodName: "ValidateMapping",
			Handler:    _InventoryMappingService_ValidateMapping_Handler,
		},
		{
			MethodName: "RefreshExistence",
			Handler:    _InventoryMappingService_RefreshExistence_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "steelparse/v1/steelparse.proto",
}
