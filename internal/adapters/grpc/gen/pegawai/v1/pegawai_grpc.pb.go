// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: pegawai/v1/pegawai.proto

package pegawaiv1

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
	PegawaiService_CreatePegawai_FullMethodName        = "/pegawai.v1.PegawaiService/CreatePegawai"
	PegawaiService_GetPegawai_FullMethodName           = "/pegawai.v1.PegawaiService/GetPegawai"
	PegawaiService_ListPegawai_FullMethodName          = "/pegawai.v1.PegawaiService/ListPegawai"
	PegawaiService_UpdatePegawai_FullMethodName        = "/pegawai.v1.PegawaiService/UpdatePegawai"
	PegawaiService_DeletePegawai_FullMethodName        = "/pegawai.v1.PegawaiService/DeletePegawai"
	PegawaiService_ListMendekatiPensiun_FullMethodName = "/pegawai.v1.PegawaiService/ListMendekatiPensiun"
)

// PegawaiServiceClient is the client API for PegawaiService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PegawaiService manages civil-servant employee records.
type PegawaiServiceClient interface {
	CreatePegawai(ctx context.Context, in *CreatePegawaiRequest, opts ...grpc.CallOption) (*CreatePegawaiResponse, error)
	GetPegawai(ctx context.Context, in *GetPegawaiRequest, opts ...grpc.CallOption) (*GetPegawaiResponse, error)
	ListPegawai(ctx context.Context, in *ListPegawaiRequest, opts ...grpc.CallOption) (*ListPegawaiResponse, error)
	UpdatePegawai(ctx context.Context, in *UpdatePegawaiRequest, opts ...grpc.CallOption) (*UpdatePegawaiResponse, error)
	DeletePegawai(ctx context.Context, in *DeletePegawaiRequest, opts ...grpc.CallOption) (*DeletePegawaiResponse, error)
	ListMendekatiPensiun(ctx context.Context, in *ListMendekatiPensiunRequest, opts ...grpc.CallOption) (*ListMendekatiPensiunResponse, error)
}

type pegawaiServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPegawaiServiceClient(cc grpc.ClientConnInterface) PegawaiServiceClient {
	return &pegawaiServiceClient{cc}
}

func (c *pegawaiServiceClient) CreatePegawai(ctx context.Context, in *CreatePegawaiRequest, opts ...grpc.CallOption) (*CreatePegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePegawaiResponse)
	err := c.cc.Invoke(ctx, PegawaiService_CreatePegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pegawaiServiceClient) GetPegawai(ctx context.Context, in *GetPegawaiRequest, opts ...grpc.CallOption) (*GetPegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPegawaiResponse)
	err := c.cc.Invoke(ctx, PegawaiService_GetPegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pegawaiServiceClient) ListPegawai(ctx context.Context, in *ListPegawaiRequest, opts ...grpc.CallOption) (*ListPegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPegawaiResponse)
	err := c.cc.Invoke(ctx, PegawaiService_ListPegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pegawaiServiceClient) UpdatePegawai(ctx context.Context, in *UpdatePegawaiRequest, opts ...grpc.CallOption) (*UpdatePegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdatePegawaiResponse)
	err := c.cc.Invoke(ctx, PegawaiService_UpdatePegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pegawaiServiceClient) DeletePegawai(ctx context.Context, in *DeletePegawaiRequest, opts ...grpc.CallOption) (*DeletePegawaiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeletePegawaiResponse)
	err := c.cc.Invoke(ctx, PegawaiService_DeletePegawai_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pegawaiServiceClient) ListMendekatiPensiun(ctx context.Context, in *ListMendekatiPensiunRequest, opts ...grpc.CallOption) (*ListMendekatiPensiunResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListMendekatiPensiunResponse)
	err := c.cc.Invoke(ctx, PegawaiService_ListMendekatiPensiun_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PegawaiServiceServer is the server API for PegawaiService service.
// All implementations must embed UnimplementedPegawaiServiceServer
// for forward compatibility.
//
// PegawaiService manages civil-servant employee records.
type PegawaiServiceServer interface {
	CreatePegawai(context.Context, *CreatePegawaiRequest) (*CreatePegawaiResponse, error)
	GetPegawai(context.Context, *GetPegawaiRequest) (*GetPegawaiResponse, error)
	ListPegawai(context.Context, *ListPegawaiRequest) (*ListPegawaiResponse, error)
	UpdatePegawai(context.Context, *UpdatePegawaiRequest) (*UpdatePegawaiResponse, error)
	DeletePegawai(context.Context, *DeletePegawaiRequest) (*DeletePegawaiResponse, error)
	ListMendekatiPensiun(context.Context, *ListMendekatiPensiunRequest) (*ListMendekatiPensiunResponse, error)
	mustEmbedUnimplementedPegawaiServiceServer()
}

// UnimplementedPegawaiServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPegawaiServiceServer struct{}

func (UnimplementedPegawaiServiceServer) CreatePegawai(context.Context, *CreatePegawaiRequest) (*CreatePegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePegawai not implemented")
}
func (UnimplementedPegawaiServiceServer) GetPegawai(context.Context, *GetPegawaiRequest) (*GetPegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPegawai not implemented")
}
func (UnimplementedPegawaiServiceServer) ListPegawai(context.Context, *ListPegawaiRequest) (*ListPegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPegawai not implemented")
}
func (UnimplementedPegawaiServiceServer) UpdatePegawai(context.Context, *UpdatePegawaiRequest) (*UpdatePegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePegawai not implemented")
}
func (UnimplementedPegawaiServiceServer) DeletePegawai(context.Context, *DeletePegawaiRequest) (*DeletePegawaiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeletePegawai not implemented")
}
func (UnimplementedPegawaiServiceServer) ListMendekatiPensiun(context.Context, *ListMendekatiPensiunRequest) (*ListMendekatiPensiunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMendekatiPensiun not implemented")
}
func (UnimplementedPegawaiServiceServer) mustEmbedUnimplementedPegawaiServiceServer() {}
func (UnimplementedPegawaiServiceServer) testEmbeddedByValue()                        {}

// UnsafePegawaiServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PegawaiServiceServer will
// result in compilation errors.
type UnsafePegawaiServiceServer interface {
	mustEmbedUnimplementedPegawaiServiceServer()
}

func RegisterPegawaiServiceServer(s grpc.ServiceRegistrar, srv PegawaiServiceServer) {
	// If the following call panics, it indicates UnimplementedPegawaiServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PegawaiService_ServiceDesc, srv)
}

func _PegawaiService_CreatePegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).CreatePegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_CreatePegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).CreatePegawai(ctx, req.(*CreatePegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PegawaiService_GetPegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).GetPegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_GetPegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).GetPegawai(ctx, req.(*GetPegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PegawaiService_ListPegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).ListPegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_ListPegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).ListPegawai(ctx, req.(*ListPegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PegawaiService_UpdatePegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).UpdatePegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_UpdatePegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).UpdatePegawai(ctx, req.(*UpdatePegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PegawaiService_DeletePegawai_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePegawaiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).DeletePegawai(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_DeletePegawai_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).DeletePegawai(ctx, req.(*DeletePegawaiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PegawaiService_ListMendekatiPensiun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMendekatiPensiunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PegawaiServiceServer).ListMendekatiPensiun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PegawaiService_ListMendekatiPensiun_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PegawaiServiceServer).ListMendekatiPensiun(ctx, req.(*ListMendekatiPensiunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PegawaiService_ServiceDesc is the grpc.ServiceDesc for PegawaiService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PegawaiService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pegawai.v1.PegawaiService",
	HandlerType: (*PegawaiServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePegawai",
			Handler:    _PegawaiService_CreatePegawai_Handler,
		},
		{
			MethodName: "GetPegawai",
			Handler:    _PegawaiService_GetPegawai_Handler,
		},
		{
			MethodName: "ListPegawai",
			Handler:    _PegawaiService_ListPegawai_Handler,
		},
		{
			MethodName: "UpdatePegawai",
			Handler:    _PegawaiService_UpdatePegawai_Handler,
		},
		{
			MethodName: "DeletePegawai",
			Handler:    _PegawaiService_DeletePegawai_Handler,
		},
		{
			MethodName: "ListMendekatiPensiun",
			Handler:    _PegawaiService_ListMendekatiPensiun_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pegawai/v1/pegawai.proto",
}
