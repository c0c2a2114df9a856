// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: mealtrace/v1/mealtrace.proto

package mealtracev1

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
	MealtraceService_SyncMailbox_FullMethodName     = "/mealtrace.v1.MealtraceService/SyncMailbox"
	MealtraceService_ListOrders_FullMethodName      = "/mealtrace.v1.MealtraceService/ListOrders"
	MealtraceService_GetHealthReport_FullMethodName = "/mealtrace.v1.MealtraceService/GetHealthReport"
	MealtraceService_ExportOrders_FullMethodName    = "/mealtrace.v1.MealtraceService/ExportOrders"
)

// MealtraceServiceClient is the client API for MealtraceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type MealtraceServiceClient interface {
	// SyncMailbox pulls order mail for a user and runs it through the
	// extraction pipeline. Returns per-outcome counts.
	SyncMailbox(ctx context.Context, in *SyncMailboxRequest, opts ...grpc.CallOption) (*SyncMailboxResponse, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
	GetHealthReport(ctx context.Context, in *GetHealthReportRequest, opts ...grpc.CallOption) (*GetHealthReportResponse, error)
	ExportOrders(ctx context.Context, in *ExportOrdersRequest, opts ...grpc.CallOption) (*ExportOrdersResponse, error)
}

type mealtraceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMealtraceServiceClient(cc grpc.ClientConnInterface) MealtraceServiceClient {
	return &mealtraceServiceClient{cc}
}

func (c *mealtraceServiceClient) SyncMailbox(ctx context.Context, in *SyncMailboxRequest, opts ...grpc.CallOption) (*SyncMailboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncMailboxResponse)
	err := c.cc.Invoke(ctx, MealtraceService_SyncMailbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mealtraceServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListOrdersResponse)
	err := c.cc.Invoke(ctx, MealtraceService_ListOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mealtraceServiceClient) GetHealthReport(ctx context.Context, in *GetHealthReportRequest, opts ...grpc.CallOption) (*GetHealthReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetHealthReportResponse)
	err := c.cc.Invoke(ctx, MealtraceService_GetHealthReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mealtraceServiceClient) ExportOrders(ctx context.Context, in *ExportOrdersRequest, opts ...grpc.CallOption) (*ExportOrdersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportOrdersResponse)
	err := c.cc.Invoke(ctx, MealtraceService_ExportOrders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MealtraceServiceServer is the server API for MealtraceService service.
// All implementations must embed UnimplementedMealtraceServiceServer
// for forward compatibility.
type MealtraceServiceServer interface {
	// SyncMailbox pulls order mail for a user and runs it through the
	// extraction pipeline. Returns per-outcome counts.
	SyncMailbox(context.Context, *SyncMailboxRequest) (*SyncMailboxResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	GetHealthReport(context.Context, *GetHealthReportRequest) (*GetHealthReportResponse, error)
	ExportOrders(context.Context, *ExportOrdersRequest) (*ExportOrdersResponse, error)
	mustEmbedUnimplementedMealtraceServiceServer()
}

// UnimplementedMealtraceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMealtraceServiceServer struct{}

func (UnimplementedMealtraceServiceServer) SyncMailbox(context.Context, *SyncMailboxRequest) (*SyncMailboxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncMailbox not implemented")
}
func (UnimplementedMealtraceServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOrders not implemented")
}
func (UnimplementedMealtraceServiceServer) GetHealthReport(context.Context, *GetHealthReportRequest) (*GetHealthReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHealthReport not implemented")
}
func (UnimplementedMealtraceServiceServer) ExportOrders(context.Context, *ExportOrdersRequest) (*ExportOrdersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportOrders not implemented")
}
func (UnimplementedMealtraceServiceServer) mustEmbedUnimplementedMealtraceServiceServer() {}
func (UnimplementedMealtraceServiceServer) testEmbeddedByValue()                          {}

// UnsafeMealtraceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MealtraceServiceServer will
// result in compilation errors.
type UnsafeMealtraceServiceServer interface {
	mustEmbedUnimplementedMealtraceServiceServer()
}

func RegisterMealtraceServiceServer(s grpc.ServiceRegistrar, srv MealtraceServiceServer) {
	// If the following call pancis, it indicates UnimplementedMealtraceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MealtraceService_ServiceDesc, srv)
}

func _MealtraceService_SyncMailbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncMailboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MealtraceServiceServer).SyncMailbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MealtraceService_SyncMailbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MealtraceServiceServer).SyncMailbox(ctx, req.(*SyncMailboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MealtraceService_ListOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MealtraceServiceServer).ListOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MealtraceService_ListOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MealtraceServiceServer).ListOrders(ctx, req.(*ListOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MealtraceService_GetHealthReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHealthReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MealtraceServiceServer).GetHealthReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MealtraceService_GetHealthReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MealtraceServiceServer).GetHealthReport(ctx, req.(*GetHealthReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MealtraceService_ExportOrders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MealtraceServiceServer).ExportOrders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MealtraceService_ExportOrders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MealtraceServiceServer).ExportOrders(ctx, req.(*ExportOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MealtraceService_ServiceDesc is the grpc.ServiceDesc for MealtraceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MealtraceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mealtrace.v1.MealtraceService",
	HandlerType: (*MealtraceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SyncMailbox",
			Handler:    _MealtraceService_SyncMailbox_Handler,
		},
		{
			MethodName: "ListOrders",
			Handler:    _MealtraceService_ListOrders_Handler,
		},
		{
			MethodName: "GetHealthReport",
			Handler:    _MealtraceService_GetHealthReport_Handler,
		},
		{
			MethodName: "ExportOrders",
			Handler:    _MealtraceService_ExportOrders_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mealtrace/v1/mealtrace.proto",
}
