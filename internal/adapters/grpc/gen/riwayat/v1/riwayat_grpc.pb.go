// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: riwayat/v1/riwayat.proto

package riwayatv1

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
	RiwayatJabatanService_CreateRiwayat_FullMethodName        = "/riwayat.v1.RiwayatJabatanService/CreateRiwayat"
	RiwayatJabatanService_UpdateRiwayat_FullMethodName        = "/riwayat.v1.RiwayatJabatanService/UpdateRiwayat"
	RiwayatJabatanService_DeleteRiwayat_FullMethodName        = "/riwayat.v1.RiwayatJabatanService/DeleteRiwayat"
	RiwayatJabatanService_ListRiwayatByPegawai_FullMethodName = "/riwayat.v1.RiwayatJabatanService/ListRiwayatByPegawai"
	RiwayatJabatanService_GetCurrentJabatan_FullMethodName    = "/riwayat.v1.RiwayatJabatanService/GetCurrentJabatan"
)

// RiwayatJabatanServiceClient is the client API for RiwayatJabatanService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RiwayatJabatanService manages the job-position ledger of employees.
type RiwayatJabatanServiceClient interface {
	CreateRiwayat(ctx context.Context, in *CreateRiwayatRequest, opts ...grpc.CallOption) (*CreateRiwayatResponse, error)
	UpdateRiwayat(ctx context.Context, in *UpdateRiwayatRequest, opts ...grpc.CallOption) (*UpdateRiwayatResponse, error)
	DeleteRiwayat(ctx context.Context, in *DeleteRiwayatRequest, opts ...grpc.CallOption) (*DeleteRiwayatResponse, error)
	ListRiwayatByPegawai(ctx context.Context, in *ListRiwayatByPegawaiRequest, opts ...grpc.CallOption) (*ListRiwayatByPegawaiResponse, error)
	GetCurrentJabatan(ctx context.Context, in *GetCurrentJabatanRequest, opts ...grpc.CallOption) (*GetCurrentJabatanResponse, error)
}

type riwayatJabatanServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRiwayatJabatanServiceClient(cc grpc.ClientConnInterface) RiwayatJabatanServiceClient {
	return &riwayatJabatanServiceClient{cc}
}

func (c *riwayatJabatanServiceClient) CreateRiwayat(ctx context.Context, in *CreateRiwayatRequest, opts ...grpc.CallOption) (*CreateRiwayatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateRiwayatResponse)
	err := c.cc.Invoke(ctx, RiwayatJabatanService_CreateRiwayat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *riwayatJabatanServiceClient) UpdateRiwayat(ctx context.Context, in *UpdateRiwayatRequest, opts ...grpc.CallOption) (*UpdateRiwayatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateRiwayatResponse)
	err := c.cc.Invoke(ctx, RiwayatJabatanService_UpdateRiwayat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *riwayatJabatanServiceClient) DeleteRiwayat(ctx context.Context, in *DeleteRiwayatRequest, opts ...grpc.CallOption) (*DeleteRiwayatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteRiwayatResponse)
	err := c.cc.Invoke(ctx, RiwayatJabatanService_DeleteRiwayat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *riwayatJabatanServiceClient) ListRiwayatByPegawai(ctx context.Context, in *ListRiwayatByPegawaiRequest, opts ...grpc.CallOption) (*ListRiwayatByPegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRiwayatByPegawaiResponse)
	err := c.cc.Invoke(ctx, RiwayatJabatanService_ListRiwayatByPegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *riwayatJabatanServiceClient) GetCurrentJabatan(ctx context.Context, in *GetCurrentJabatanRequest, opts ...grpc.CallOption) (*GetCurrentJabatanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCurrentJabatanResponse)
	err := c.cc.Invoke(ctx, RiwayatJabatanService_GetCurrentJabatan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RiwayatJabatanServiceServer is the server API for RiwayatJabatanService service.
// All implementations must embed UnimplementedRiwayatJabatanServiceServer
// for forward compatibility.
//
// RiwayatJabatanService manages the job-position ledger of employees.
type RiwayatJabatanServiceServer interface {
	CreateRiwayat(context.Context, *CreateRiwayatRequest) (*CreateRiwayatResponse, error)
	UpdateRiwayat(context.Context, *UpdateRiwayatRequest) (*UpdateRiwayatResponse, error)
	DeleteRiwayat(context.Context, *DeleteRiwayatRequest) (*DeleteRiwayatResponse, error)
	ListRiwayatByPegawai(context.Context, *ListRiwayatByPegawaiRequest) (*ListRiwayatByPegawaiResponse, error)
	GetCurrentJabatan(context.Context, *GetCurrentJabatanRequest) (*GetCurrentJabatanResponse, error)
	mustEmbedUnimplementedRiwayatJabatanServiceServer()
}

// UnimplementedRiwayatJabatanServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRiwayatJabatanServiceServer struct{}

func (UnimplementedRiwayatJabatanServiceServer) CreateRiwayat(context.Context, *CreateRiwayatRequest) (*CreateRiwayatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRiwayat not implemented")
}
func (UnimplementedRiwayatJabatanServiceServer) UpdateRiwayat(context.Context, *UpdateRiwayatRequest) (*UpdateRiwayatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRiwayat not implemented")
}
func (UnimplementedRiwayatJabatanServiceServer) DeleteRiwayat(context.Context, *DeleteRiwayatRequest) (*DeleteRiwayatResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRiwayat not implemented")
}
func (UnimplementedRiwayatJabatanServiceServer) ListRiwayatByPegawai(context.Context, *ListRiwayatByPegawaiRequest) (*ListRiwayatByPegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRiwayatByPegawai not implemented")
}
func (UnimplementedRiwayatJabatanServiceServer) GetCurrentJabatan(context.Context, *GetCurrentJabatanRequest) (*GetCurrentJabatanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentJabatan not implemented")
}
func (UnimplementedRiwayatJabatanServiceServer) mustEmbedUnimplementedRiwayatJabatanServiceServer() {}
func (UnimplementedRiwayatJabatanServiceServer) testEmbeddedByValue()                               {}

// UnsafeRiwayatJabatanServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RiwayatJabatanServiceServer will
// result in compilation errors.
type UnsafeRiwayatJabatanServiceServer interface {
	mustEmbedUnimplementedRiwayatJabatanServiceServer()
}

func RegisterRiwayatJabatanServiceServer(s grpc.ServiceRegistrar, srv RiwayatJabatanServiceServer) {
	// If the following call panics, it indicates UnimplementedRiwayatJabatanServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RiwayatJabatanService_ServiceDesc, srv)
}

func _RiwayatJabatanService_CreateRiwayat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRiwayatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiwayatJabatanServiceServer).CreateRiwayat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RiwayatJabatanService_CreateRiwayat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiwayatJabatanServiceServer).CreateRiwayat(ctx, req.(*CreateRiwayatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RiwayatJabatanService_UpdateRiwayat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRiwayatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiwayatJabatanServiceServer).UpdateRiwayat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RiwayatJabatanService_UpdateRiwayat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiwayatJabatanServiceServer).UpdateRiwayat(ctx, req.(*UpdateRiwayatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RiwayatJabatanService_DeleteRiwayat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRiwayatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiwayatJabatanServiceServer).DeleteRiwayat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RiwayatJabatanService_DeleteRiwayat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiwayatJabatanServiceServer).DeleteRiwayat(ctx, req.(*DeleteRiwayatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RiwayatJabatanService_ListRiwayatByPegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRiwayatByPegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiwayatJabatanServiceServer).ListRiwayatByPegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RiwayatJabatanService_ListRiwayatByPegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiwayatJabatanServiceServer).ListRiwayatByPegawai(ctx, req.(*ListRiwayatByPegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RiwayatJabatanService_GetCurrentJabatan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentJabatanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiwayatJabatanServiceServer).GetCurrentJabatan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RiwayatJabatanService_GetCurrentJabatan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiwayatJabatanServiceServer).GetCurrentJabatan(ctx, req.(*GetCurrentJabatanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RiwayatJabatanService_ServiceDesc is the grpc.ServiceDesc for RiwayatJabatanService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RiwayatJabatanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "riwayat.v1.RiwayatJabatanService",
	HandlerType: (*RiwayatJabatanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRiwayat",
			Handler:    _RiwayatJabatanService_CreateRiwayat_Handler,
		},
		{
			MethodName: "UpdateRiwayat",
			Handler:    _RiwayatJabatanService_UpdateRiwayat_Handler,
		},
		{
			MethodName: "DeleteRiwayat",
			Handler:    _RiwayatJabatanService_DeleteRiwayat_Handler,
		},
		{
			MethodName: "ListRiwayatByPegawai",
			Handler:    _RiwayatJabatanService_ListRiwayatByPegawai_Handler,
		},
		{
			MethodName: "GetCurrentJabatan",
			Handler:    _RiwayatJabatanService_GetCurrentJabatan_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "riwayat/v1/riwayat.proto",
}
