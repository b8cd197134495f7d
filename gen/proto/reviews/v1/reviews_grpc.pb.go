// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: reviews/v1/reviews.proto

package reviewsv1

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
	ReviewsService_ListPendingReviews_FullMethodName = "/reviews.v1.ReviewsService/ListPendingReviews"
	ReviewsService_GetReview_FullMethodName          = "/reviews.v1.ReviewsService/GetReview"
	ReviewsService_AssignReview_FullMethodName       = "/reviews.v1.ReviewsService/AssignReview"
	ReviewsService_CompleteReview_FullMethodName     = "/reviews.v1.ReviewsService/CompleteReview"
	ReviewsService_SkipReview_FullMethodName         = "/reviews.v1.ReviewsService/SkipReview"
)

// ReviewsServiceClient is the client API for ReviewsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ReviewsServiceClient interface {
	ListPendingReviews(ctx context.Context, in *ListPendingReviewsRequest, opts ...grpc.CallOption) (*ListPendingReviewsResponse, error)
	GetReview(ctx context.Context, in *GetReviewRequest, opts ...grpc.CallOption) (*GetReviewResponse, error)
	AssignReview(ctx context.Context, in *AssignReviewRequest, opts ...grpc.CallOption) (*AssignReviewResponse, error)
	CompleteReview(ctx context.Context, in *CompleteReviewRequest, opts ...grpc.CallOption) (*CompleteReviewResponse, error)
	SkipReview(ctx context.Context, in *SkipReviewRequest, opts ...grpc.CallOption) (*SkipReviewResponse, error)
}

type reviewsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReviewsServiceClient(cc grpc.ClientConnInterface) ReviewsServiceClient {
	return &reviewsServiceClient{cc}
}

func (c *reviewsServiceClient) ListPendingReviews(ctx context.Context, in *ListPendingReviewsRequest, opts ...grpc.CallOption) (*ListPendingReviewsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPendingReviewsResponse)
	err := c.cc.Invoke(ctx, ReviewsService_ListPendingReviews_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewsServiceClient) GetReview(ctx context.Context, in *GetReviewRequest, opts ...grpc.CallOption) (*GetReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReviewResponse)
	err := c.cc.Invoke(ctx, ReviewsService_GetReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewsServiceClient) AssignReview(ctx context.Context, in *AssignReviewRequest, opts ...grpc.CallOption) (*AssignReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssignReviewResponse)
	err := c.cc.Invoke(ctx, ReviewsService_AssignReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewsServiceClient) CompleteReview(ctx context.Context, in *CompleteReviewRequest, opts ...grpc.CallOption) (*CompleteReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteReviewResponse)
	err := c.cc.Invoke(ctx, ReviewsService_CompleteReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reviewsServiceClient) SkipReview(ctx context.Context, in *SkipReviewRequest, opts ...grpc.CallOption) (*SkipReviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SkipReviewResponse)
	err := c.cc.Invoke(ctx, ReviewsService_SkipReview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewsServiceServer is the server API for ReviewsService service.
// All implementations must embed UnimplementedReviewsServiceServer
// for forward compatibility.
type ReviewsServiceServer interface {
	ListPendingReviews(context.Context, *ListPendingReviewsRequest) (*ListPendingReviewsResponse, error)
	GetReview(context.Context, *GetReviewRequest) (*GetReviewResponse, error)
	AssignReview(context.Context, *AssignReviewRequest) (*AssignReviewResponse, error)
	CompleteReview(context.Context, *CompleteReviewRequest) (*CompleteReviewResponse, error)
	SkipReview(context.Context, *SkipReviewRequest) (*SkipReviewResponse, error)
	mustEmbedUnimplementedReviewsServiceServer()
}

// UnimplementedReviewsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReviewsServiceServer struct{}

func (UnimplementedReviewsServiceServer) ListPendingReviews(context.Context, *ListPendingReviewsRequest) (*ListPendingReviewsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPendingReviews not implemented")
}
func (UnimplementedReviewsServiceServer) GetReview(context.Context, *GetReviewRequest) (*GetReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReview not implemented")
}
func (UnimplementedReviewsServiceServer) AssignReview(context.Context, *AssignReviewRequest) (*AssignReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AssignReview not implemented")
}
func (UnimplementedReviewsServiceServer) CompleteReview(context.Context, *CompleteReviewRequest) (*CompleteReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CompleteReview not implemented")
}
func (UnimplementedReviewsServiceServer) SkipReview(context.Context, *SkipReviewRequest) (*SkipReviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SkipReview not implemented")
}
func (UnimplementedReviewsServiceServer) mustEmbedUnimplementedReviewsServiceServer() {}
func (UnimplementedReviewsServiceServer) testEmbeddedByValue()                        {}

// UnsafeReviewsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReviewsServiceServer will
// result in compilation errors.
type UnsafeReviewsServiceServer interface {
	mustEmbedUnimplementedReviewsServiceServer()
}

func RegisterReviewsServiceServer(s grpc.ServiceRegistrar, srv ReviewsServiceServer) {
	// If the following call panics, it indicates UnimplementedReviewsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReviewsService_ServiceDesc, srv)
}

func _ReviewsService_ListPendingReviews_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPendingReviewsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewsServiceServer).ListPendingReviews(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewsService_ListPendingReviews_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewsServiceServer).ListPendingReviews(ctx, req.(*ListPendingReviewsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewsService_GetReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewsServiceServer).GetReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewsService_GetReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewsServiceServer).GetReview(ctx, req.(*GetReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewsService_AssignReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssignReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewsServiceServer).AssignReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewsService_AssignReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewsServiceServer).AssignReview(ctx, req.(*AssignReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewsService_CompleteReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewsServiceServer).CompleteReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewsService_CompleteReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewsServiceServer).CompleteReview(ctx, req.(*CompleteReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReviewsService_SkipReview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SkipReviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReviewsServiceServer).SkipReview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReviewsService_SkipReview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReviewsServiceServer).SkipReview(ctx, req.(*SkipReviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReviewsService_ServiceDesc is the grpc.ServiceDesc for ReviewsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReviewsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "reviews.v1.ReviewsService",
	HandlerType: (*ReviewsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPendingReviews",
			Handler:    _ReviewsService_ListPendingReviews_Handler,
		},
		{
			MethodName: "GetReview",
			Handler:    _ReviewsService_GetReview_Handler,
		},
		{
			MethodName: "AssignReview",
			Handler:    _ReviewsService_AssignReview_Handler,
		},
		{
			MethodName: "CompleteReview",
			Handler:    _ReviewsService_CompleteReview_Handler,
		},
		{
			MethodName: "SkipReview",
			Handler:    _ReviewsService_SkipReview_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "reviews/v1/reviews.proto",
}
