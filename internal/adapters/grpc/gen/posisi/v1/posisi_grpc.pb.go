// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: posisi/v1/posisi.proto

package posisiv1

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
	PosisiTersediaService_CreatePosisi_FullMethodName     = "/posisi.v1.PosisiTersediaService/CreatePosisi"
	PosisiTersediaService_GetPosisi_FullMethodName        = "/posisi.v1.PosisiTersediaService/GetPosisi"
	PosisiTersediaService_ListPosisi_FullMethodName       = "/posisi.v1.PosisiTersediaService/ListPosisi"
	PosisiTersediaService_UpdatePosisi_FullMethodName     = "/posisi.v1.PosisiTersediaService/UpdatePosisi"
	PosisiTersediaService_DeactivatePosisi_FullMethodName = "/posisi.v1.PosisiTersediaService/DeactivatePosisi"
)

// PosisiTersediaServiceClient is the client API for PosisiTersediaService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PosisiTersediaService manages advertised open positions.
type PosisiTersediaServiceClient interface {
	CreatePosisi(ctx context.Context, in *CreatePosisiRequest, opts ...grpc.CallOption) (*CreatePosisiResponse, error)
	GetPosisi(ctx context.Context, in *GetPosisiRequest, opts ...grpc.CallOption) (*GetPosisiResponse, error)
	ListPosisi(ctx context.Context, in *ListPosisiRequest, opts ...grpc.CallOption) (*ListPosisiResponse, error)
	UpdatePosisi(ctx context.Context, in *UpdatePosisiRequest, opts ...grpc.CallOption) (*UpdatePosisiResponse, error)
	DeactivatePosisi(ctx context.Context, in *DeactivatePosisiRequest, opts ...grpc.CallOption) (*DeactivatePosisiResponse, error)
}

type posisiTersediaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPosisiTersediaServiceClient(cc grpc.ClientConnInterface) PosisiTersediaServiceClient {
	return &posisiTersediaServiceClient{cc}
}

func (c *posisiTersediaServiceClient) CreatePosisi(ctx context.Context, in *CreatePosisiRequest, opts ...grpc.CallOption) (*CreatePosisiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePosisiResponse)
	err := c.cc.Invoke(ctx, PosisiTersediaService_CreatePosisi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *posisiTersediaServiceClient) GetPosisi(ctx context.Context, in *GetPosisiRequest, opts ...grpc.CallOption) (*GetPosisiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPosisiResponse)
	err := c.cc.Invoke(ctx, PosisiTersediaService_GetPosisi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *posisiTersediaServiceClient) ListPosisi(ctx context.Context, in *ListPosisiRequest, opts ...grpc.CallOption) (*ListPosisiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPosisiResponse)
	err := c.cc.Invoke(ctx, PosisiTersediaService_ListPosisi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *posisiTersediaServiceClient) UpdatePosisi(ctx context.Context, in *UpdatePosisiRequest, opts ...grpc.CallOption) (*UpdatePosisiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdatePosisiResponse)
	err := c.cc.Invoke(ctx, PosisiTersediaService_UpdatePosisi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *posisiTersediaServiceClient) DeactivatePosisi(ctx context.Context, in *DeactivatePosisiRequest, opts ...grpc.CallOption) (*DeactivatePosisiResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeactivatePosisiResponse)
	err := c.cc.Invoke(ctx, PosisiTersediaService_DeactivatePosisi_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PosisiTersediaServiceServer is the server API for PosisiTersediaService service.
// All implementations must embed UnimplementedPosisiTersediaServiceServer
// for forward compatibility.
//
// PosisiTersediaService manages advertised open positions.
type PosisiTersediaServiceServer interface {
	CreatePosisi(context.Context, *CreatePosisiRequest) (*CreatePosisiResponse, error)
	GetPosisi(context.Context, *GetPosisiRequest) (*GetPosisiResponse, error)
	ListPosisi(context.Context, *ListPosisiRequest) (*ListPosisiResponse, error)
	UpdatePosisi(context.Context, *UpdatePosisiRequest) (*UpdatePosisiResponse, error)
	DeactivatePosisi(context.Context, *DeactivatePosisiRequest) (*DeactivatePosisiResponse, error)
	mustEmbedUnimplementedPosisiTersediaServiceServer()
}

// UnimplementedPosisiTersediaServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPosisiTersediaServiceServer struct{}

func (UnimplementedPosisiTersediaServiceServer) CreatePosisi(context.Context, *CreatePosisiRequest) (*CreatePosisiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePosisi not implemented")
}
func (UnimplementedPosisiTersediaServiceServer) GetPosisi(context.Context, *GetPosisiRequest) (*GetPosisiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPosisi not implemented")
}
func (UnimplementedPosisiTersediaServiceServer) ListPosisi(context.Context, *ListPosisiRequest) (*ListPosisiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPosisi not implemented")
}
func (UnimplementedPosisiTersediaServiceServer) UpdatePosisi(context.Context, *UpdatePosisiRequest) (*UpdatePosisiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdatePosisi not implemented")
}
func (UnimplementedPosisiTersediaServiceServer) DeactivatePosisi(context.Context, *DeactivatePosisiRequest) (*DeactivatePosisiResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeactivatePosisi not implemented")
}
func (UnimplementedPosisiTersediaServiceServer) mustEmbedUnimplementedPosisiTersediaServiceServer() {}
func (UnimplementedPosisiTersediaServiceServer) testEmbeddedByValue()                               {}

// UnsafePosisiTersediaServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PosisiTersediaServiceServer will
// result in compilation errors.
type UnsafePosisiTersediaServiceServer interface {
	mustEmbedUnimplementedPosisiTersediaServiceServer()
}

func RegisterPosisiTersediaServiceServer(s grpc.ServiceRegistrar, srv PosisiTersediaServiceServer) {
	// If the following call panics, it indicates UnimplementedPosisiTersediaServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PosisiTersediaService_ServiceDesc, srv)
}

func _PosisiTersediaService_CreatePosisi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePosisiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PosisiTersediaServiceServer).CreatePosisi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PosisiTersediaService_CreatePosisi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PosisiTersediaServiceServer).CreatePosisi(ctx, req.(*CreatePosisiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PosisiTersediaService_GetPosisi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPosisiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PosisiTersediaServiceServer).GetPosisi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PosisiTersediaService_GetPosisi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PosisiTersediaServiceServer).GetPosisi(ctx, req.(*GetPosisiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PosisiTersediaService_ListPosisi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPosisiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PosisiTersediaServiceServer).ListPosisi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PosisiTersediaService_ListPosisi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PosisiTersediaServiceServer).ListPosisi(ctx, req.(*ListPosisiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PosisiTersediaService_UpdatePosisi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdatePosisiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PosisiTersediaServiceServer).UpdatePosisi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PosisiTersediaService_UpdatePosisi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PosisiTersediaServiceServer).UpdatePosisi(ctx, req.(*UpdatePosisiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PosisiTersediaService_DeactivatePosisi_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeactivatePosisiRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PosisiTersediaServiceServer).DeactivatePosisi(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PosisiTersediaService_DeactivatePosisi_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PosisiTersediaServiceServer).DeactivatePosisi(ctx, req.(*DeactivatePosisiRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PosisiTersediaService_ServiceDesc is the grpc.ServiceDesc for PosisiTersediaService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PosisiTersediaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "posisi.v1.PosisiTersediaService",
	HandlerType: (*PosisiTersediaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePosisi",
			Handler:    _PosisiTersediaService_CreatePosisi_Handler,
		},
		{
			MethodName: "GetPosisi",
			Handler:    _PosisiTersediaService_GetPosisi_Handler,
		},
		{
			MethodName: "ListPosisi",
			Handler:    _PosisiTersediaService_ListPosisi_Handler,
		},
		{
			MethodName: "UpdatePosisi",
			Handler:    _PosisiTersediaService_UpdatePosisi_Handler,
		},
		{
			MethodName: "DeactivatePosisi",
			Handler:    _PosisiTersediaService_DeactivatePosisi_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "posisi/v1/posisi.proto",
}
