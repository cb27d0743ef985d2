// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: mutasi/v1/mutasi.proto

package mutasiv1

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
	MutasiService_CreateMutasi_FullMethodName       = "/mutasi.v1.MutasiService/CreateMutasi"
	MutasiService_GetMutasi_FullMethodName          = "/mutasi.v1.MutasiService/GetMutasi"
	MutasiService_ListMutasi_FullMethodName         = "/mutasi.v1.MutasiService/ListMutasi"
	MutasiService_UpdateMutasiStatus_FullMethodName = "/mutasi.v1.MutasiService/UpdateMutasiStatus"
	MutasiService_DeleteMutasi_FullMethodName       = "/mutasi.v1.MutasiService/DeleteMutasi"
)

// MutasiServiceClient is the client API for MutasiService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MutasiService manages the transfer-request workflow.
type MutasiServiceClient interface {
	CreateMutasi(ctx context.Context, in *CreateMutasiRequest, opts ...grpc.CallOption) (*CreateMutasiResponse, error)
	GetMutasi(ctx context.Context, in *GetMutasiRequest, opts ...grpc.CallOption) (*GetMutasiResponse, error)
	ListMutasi(ctx context.Context, in *ListMutasiRequest, opts ...grpc.CallOption) (*ListMutasiResponse, error)
	UpdateMutasiStatus(ctx context.Context, in *UpdateMutasiStatusRequest, opts ...grpc.CallOption) (*UpdateMutasiStatusResponse, error)
	DeleteMutasi(ctx context.Context, in *DeleteMutasiRequest, opts ...grpc.CallOption) (*DeleteMutasiResponse, error)
}

type mutasiServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMutasiServiceClient(cc grpc.ClientConnInterface) MutasiServiceClient {
	return &mutasiServiceClient{cc}
}

func (c *mutasiServiceClient) CreateMutasi(ctx context.Context, in *CreateMutasiRequest, opts ...grpc.CallOption) (*CreateMutasiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateMutasiResponse)
	err := c.cc.Invoke(ctx, MutasiService_CreateMutasi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mutasiServiceClient) GetMutasi(ctx context.Context, in *GetMutasiRequest, opts ...grpc.CallOption) (*GetMutasiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMutasiResponse)
	err := c.cc.Invoke(ctx, MutasiService_GetMutasi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mutasiServiceClient) ListMutasi(ctx context.Context, in *ListMutasiRequest, opts ...grpc.CallOption) (*ListMutasiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMutasiResponse)
	err := c.cc.Invoke(ctx, MutasiService_ListMutasi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mutasiServiceClient) UpdateMutasiStatus(ctx context.Context, in *UpdateMutasiStatusRequest, opts ...grpc.CallOption) (*UpdateMutasiStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateMutasiStatusResponse)
	err := c.cc.Invoke(ctx, MutasiService_UpdateMutasiStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mutasiServiceClient) DeleteMutasi(ctx context.Context, in *DeleteMutasiRequest, opts ...grpc.CallOption) (*DeleteMutasiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteMutasiResponse)
	err := c.cc.Invoke(ctx, MutasiService_DeleteMutasi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MutasiServiceServer is the server API for MutasiService service.
// All implementations must embed UnimplementedMutasiServiceServer
// for forward compatibility.
//
// MutasiService manages the transfer-request workflow.
type MutasiServiceServer interface {
	CreateMutasi(context.Context, *CreateMutasiRequest) (*CreateMutasiResponse, error)
	GetMutasi(context.Context, *GetMutasiRequest) (*GetMutasiResponse, error)
	ListMutasi(context.Context, *ListMutasiRequest) (*ListMutasiResponse, error)
	UpdateMutasiStatus(context.Context, *UpdateMutasiStatusRequest) (*UpdateMutasiStatusResponse, error)
	DeleteMutasi(context.Context, *DeleteMutasiRequest) (*DeleteMutasiResponse, error)
	mustEmbedUnimplementedMutasiServiceServer()
}

// UnimplementedMutasiServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMutasiServiceServer struct{}

func (UnimplementedMutasiServiceServer) CreateMutasi(context.Context, *CreateMutasiRequest) (*CreateMutasiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateMutasi not implemented")
}
func (UnimplementedMutasiServiceServer) GetMutasi(context.Context, *GetMutasiRequest) (*GetMutasiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMutasi not implemented")
}
func (UnimplementedMutasiServiceServer) ListMutasi(context.Context, *ListMutasiRequest) (*ListMutasiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMutasi not implemented")
}
func (UnimplementedMutasiServiceServer) UpdateMutasiStatus(context.Context, *UpdateMutasiStatusRequest) (*UpdateMutasiStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateMutasiStatus not implemented")
}
func (UnimplementedMutasiServiceServer) DeleteMutasi(context.Context, *DeleteMutasiRequest) (*DeleteMutasiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteMutasi not implemented")
}
func (UnimplementedMutasiServiceServer) mustEmbedUnimplementedMutasiServiceServer() {}
func (UnimplementedMutasiServiceServer) testEmbeddedByValue()                       {}

// UnsafeMutasiServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MutasiServiceServer will
// result in compilation errors.
type UnsafeMutasiServiceServer interface {
	mustEmbedUnimplementedMutasiServiceServer()
}

func RegisterMutasiServiceServer(s grpc.ServiceRegistrar, srv MutasiServiceServer) {
	// If the following call panics, it indicates UnimplementedMutasiServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MutasiService_ServiceDesc, srv)
}

func _MutasiService_CreateMutasi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMutasiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MutasiServiceServer).CreateMutasi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MutasiService_CreateMutasi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MutasiServiceServer).CreateMutasi(ctx, req.(*CreateMutasiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MutasiService_GetMutasi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMutasiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MutasiServiceServer).GetMutasi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MutasiService_GetMutasi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MutasiServiceServer).GetMutasi(ctx, req.(*GetMutasiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MutasiService_ListMutasi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMutasiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MutasiServiceServer).ListMutasi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MutasiService_ListMutasi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MutasiServiceServer).ListMutasi(ctx, req.(*ListMutasiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MutasiService_UpdateMutasiStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateMutasiStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MutasiServiceServer).UpdateMutasiStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MutasiService_UpdateMutasiStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MutasiServiceServer).UpdateMutasiStatus(ctx, req.(*UpdateMutasiStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MutasiService_DeleteMutasi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteMutasiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MutasiServiceServer).DeleteMutasi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MutasiService_DeleteMutasi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MutasiServiceServer).DeleteMutasi(ctx, req.(*DeleteMutasiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MutasiService_ServiceDesc is the grpc.ServiceDesc for MutasiService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MutasiService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mutasi.v1.MutasiService",
	HandlerType: (*MutasiServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateMutasi",
			Handler:    _MutasiService_CreateMutasi_Handler,
		},
		{
			MethodName: "GetMutasi",
			Handler:    _MutasiService_GetMutasi_Handler,
		},
		{
			MethodName: "ListMutasi",
			Handler:    _MutasiService_ListMutasi_Handler,
		},
		{
			MethodName: "UpdateMutasiStatus",
			Handler:    _MutasiService_UpdateMutasiStatus_Handler,
		},
		{
			MethodName: "DeleteMutasi",
			Handler:    _MutasiService_DeleteMutasi_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mutasi/v1/mutasi.proto",
}
