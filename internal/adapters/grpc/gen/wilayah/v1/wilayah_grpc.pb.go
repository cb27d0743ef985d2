// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: wilayah/v1/wilayah.proto

package wilayahv1

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
	WilayahService_ListProvinces_FullMethodName = "/wilayah.v1.WilayahService/ListProvinces"
	WilayahService_ListRegencies_FullMethodName = "/wilayah.v1.WilayahService/ListRegencies"
	WilayahService_ListDistricts_FullMethodName = "/wilayah.v1.WilayahService/ListDistricts"
	WilayahService_ListVillages_FullMethodName  = "/wilayah.v1.WilayahService/ListVillages"
)

// WilayahServiceClient is the client API for WilayahService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// WilayahService proxies the Indonesian administrative hierarchy.
type WilayahServiceClient interface {
	ListProvinces(ctx context.Context, in *ListProvincesRequest, opts ...grpc.CallOption) (*ListProvincesResponse, error)
	ListRegencies(ctx context.Context, in *ListRegenciesRequest, opts ...grpc.CallOption) (*ListRegenciesResponse, error)
	ListDistricts(ctx context.Context, in *ListDistrictsRequest, opts ...grpc.CallOption) (*ListDistrictsResponse, error)
	ListVillages(ctx context.Context, in *ListVillagesRequest, opts ...grpc.CallOption) (*ListVillagesResponse, error)
}

type wilayahServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWilayahServiceClient(cc grpc.ClientConnInterface) WilayahServiceClient {
	return &wilayahServiceClient{cc}
}

func (c *wilayahServiceClient) ListProvinces(ctx context.Context, in *ListProvincesRequest, opts ...grpc.CallOption) (*ListProvincesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProvincesResponse)
	err := c.cc.Invoke(ctx, WilayahService_ListProvinces_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wilayahServiceClient) ListRegencies(ctx context.Context, in *ListRegenciesRequest, opts ...grpc.CallOption) (*ListRegenciesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRegenciesResponse)
	err := c.cc.Invoke(ctx, WilayahService_ListRegencies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wilayahServiceClient) ListDistricts(ctx context.Context, in *ListDistrictsRequest, opts ...grpc.CallOption) (*ListDistrictsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDistrictsResponse)
	err := c.cc.Invoke(ctx, WilayahService_ListDistricts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wilayahServiceClient) ListVillages(ctx context.Context, in *ListVillagesRequest, opts ...grpc.CallOption) (*ListVillagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVillagesResponse)
	err := c.cc.Invoke(ctx, WilayahService_ListVillages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WilayahServiceServer is the server API for WilayahService service.
// All implementations must embed UnimplementedWilayahServiceServer
// for forward compatibility.
//
// WilayahService proxies the Indonesian administrative hierarchy.
type WilayahServiceServer interface {
	ListProvinces(context.Context, *ListProvincesRequest) (*ListProvincesResponse, error)
	ListRegencies(context.Context, *ListRegenciesRequest) (*ListRegenciesResponse, error)
	ListDistricts(context.Context, *ListDistrictsRequest) (*ListDistrictsResponse, error)
	ListVillages(context.Context, *ListVillagesRequest) (*ListVillagesResponse, error)
	mustEmbedUnimplementedWilayahServiceServer()
}

// UnimplementedWilayahServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedWilayahServiceServer struct{}

func (UnimplementedWilayahServiceServer) ListProvinces(context.Context, *ListProvincesRequest) (*ListProvincesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProvinces not implemented")
}
func (UnimplementedWilayahServiceServer) ListRegencies(context.Context, *ListRegenciesRequest) (*ListRegenciesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListRegencies not implemented")
}
func (UnimplementedWilayahServiceServer) ListDistricts(context.Context, *ListDistrictsRequest) (*ListDistrictsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDistricts not implemented")
}
func (UnimplementedWilayahServiceServer) ListVillages(context.Context, *ListVillagesRequest) (*ListVillagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVillages not implemented")
}
func (UnimplementedWilayahServiceServer) mustEmbedUnimplementedWilayahServiceServer() {}
func (UnimplementedWilayahServiceServer) testEmbeddedByValue()                        {}

// UnsafeWilayahServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to WilayahServiceServer will
// result in compilation errors.
type UnsafeWilayahServiceServer interface {
	mustEmbedUnimplementedWilayahServiceServer()
}

func RegisterWilayahServiceServer(s grpc.ServiceRegistrar, srv WilayahServiceServer) {
	// If the following call panics, it indicates UnimplementedWilayahServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&WilayahService_ServiceDesc, srv)
}

func _WilayahService_ListProvinces_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProvincesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WilayahServiceServer).ListProvinces(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WilayahService_ListProvinces_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WilayahServiceServer).ListProvinces(ctx, req.(*ListProvincesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WilayahService_ListRegencies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRegenciesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WilayahServiceServer).ListRegencies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WilayahService_ListRegencies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WilayahServiceServer).ListRegencies(ctx, req.(*ListRegenciesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WilayahService_ListDistricts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDistrictsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WilayahServiceServer).ListDistricts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WilayahService_ListDistricts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WilayahServiceServer).ListDistricts(ctx, req.(*ListDistrictsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WilayahService_ListVillages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVillagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WilayahServiceServer).ListVillages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: WilayahService_ListVillages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WilayahServiceServer).ListVillages(ctx, req.(*ListVillagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// WilayahService_ServiceDesc is the grpc.ServiceDesc for WilayahService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var WilayahService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "wilayah.v1.WilayahService",
	HandlerType: (*WilayahServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListProvinces",
			Handler:    _WilayahService_ListProvinces_Handler,
		},
		{
			MethodName: "ListRegencies",
			Handler:    _WilayahService_ListRegencies_Handler,
		},
		{
			MethodName: "ListDistricts",
			Handler:    _WilayahService_ListDistricts_Handler,
		},
		{
			MethodName: "ListVillages",
			Handler:    _WilayahService_ListVillages_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wilayah/v1/wilayah.proto",
}
