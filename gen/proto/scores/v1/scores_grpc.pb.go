// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: scores/v1/scores.proto

package scoresv1

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
	ScoresService_ComputeScore_FullMethodName    = "/scores.v1.ScoresService/ComputeScore"
	ScoresService_GetActiveScore_FullMethodName  = "/scores.v1.ScoresService/GetActiveScore"
	ScoresService_ExpireScore_FullMethodName     = "/scores.v1.ScoresService/ExpireScore"
	ScoresService_GetScoreHistory_FullMethodName = "/scores.v1.ScoresService/GetScoreHistory"
)

// ScoresServiceClient is the client API for ScoresService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ScoresServiceClient interface {
	// ComputeScore recomputes the subject's score from its processed documents.
	ComputeScore(ctx context.Context, in *ComputeScoreRequest, opts ...grpc.CallOption) (*ComputeScoreResponse, error)
	GetActiveScore(ctx context.Context, in *GetActiveScoreRequest, opts ...grpc.CallOption) (*GetActiveScoreResponse, error)
	ExpireScore(ctx context.Context, in *ExpireScoreRequest, opts ...grpc.CallOption) (*ExpireScoreResponse, error)
	GetScoreHistory(ctx context.Context, in *GetScoreHistoryRequest, opts ...grpc.CallOption) (*GetScoreHistoryResponse, error)
}

type scoresServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScoresServiceClient(cc grpc.ClientConnInterface) ScoresServiceClient {
	return &scoresServiceClient{cc}
}

func (c *scoresServiceClient) ComputeScore(ctx context.Context, in *ComputeScoreRequest, opts ...grpc.CallOption) (*ComputeScoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ComputeScoreResponse)
	err := c.cc.Invoke(ctx, ScoresService_ComputeScore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresServiceClient) GetActiveScore(ctx context.Context, in *GetActiveScoreRequest, opts ...grpc.CallOption) (*GetActiveScoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetActiveScoreResponse)
	err := c.cc.Invoke(ctx, ScoresService_GetActiveScore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresServiceClient) ExpireScore(ctx context.Context, in *ExpireScoreRequest, opts ...grpc.CallOption) (*ExpireScoreResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExpireScoreResponse)
	err := c.cc.Invoke(ctx, ScoresService_ExpireScore_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresServiceClient) GetScoreHistory(ctx context.Context, in *GetScoreHistoryRequest, opts ...grpc.CallOption) (*GetScoreHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetScoreHistoryResponse)
	err := c.cc.Invoke(ctx, ScoresService_GetScoreHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScoresServiceServer is the server API for ScoresService service.
// All implementations must embed UnimplementedScoresServiceServer
// for forward compatibility.
type ScoresServiceServer interface {
	// ComputeScore recomputes the subject's score from its processed documents.
	ComputeScore(context.Context, *ComputeScoreRequest) (*ComputeScoreResponse, error)
	GetActiveScore(context.Context, *GetActiveScoreRequest) (*GetActiveScoreResponse, error)
	ExpireScore(context.Context, *ExpireScoreRequest) (*ExpireScoreResponse, error)
	GetScoreHistory(context.Context, *GetScoreHistoryRequest) (*GetScoreHistoryResponse, error)
	mustEmbedUnimplementedScoresServiceServer()
}

// UnimplementedScoresServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScoresServiceServer struct{}

func (UnimplementedScoresServiceServer) ComputeScore(context.Context, *ComputeScoreRequest) (*ComputeScoreResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ComputeScore not implemented")
}
func (UnimplementedScoresServiceServer) GetActiveScore(context.Context, *GetActiveScoreRequest) (*GetActiveScoreResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveScore not implemented")
}
func (UnimplementedScoresServiceServer) ExpireScore(context.Context, *ExpireScoreRequest) (*ExpireScoreResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExpireScore not implemented")
}
func (UnimplementedScoresServiceServer) GetScoreHistory(context.Context, *GetScoreHistoryRequest) (*GetScoreHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetScoreHistory not implemented")
}
func (UnimplementedScoresServiceServer) mustEmbedUnimplementedScoresServiceServer() {}
func (UnimplementedScoresServiceServer) testEmbeddedByValue()                       {}

// UnsafeScoresServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScoresServiceServer will
// result in compilation errors.
type UnsafeScoresServiceServer interface {
	mustEmbedUnimplementedScoresServiceServer()
}

func RegisterScoresServiceServer(s grpc.ServiceRegistrar, srv ScoresServiceServer) {
	// If the following call panics, it indicates UnimplementedScoresServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScoresService_ServiceDesc, srv)
}

func _ScoresService_ComputeScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresServiceServer).ComputeScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresService_ComputeScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresServiceServer).ComputeScore(ctx, req.(*ComputeScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresService_GetActiveScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresServiceServer).GetActiveScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresService_GetActiveScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresServiceServer).GetActiveScore(ctx, req.(*GetActiveScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresService_ExpireScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExpireScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresServiceServer).ExpireScore(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresService_ExpireScore_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresServiceServer).ExpireScore(ctx, req.(*ExpireScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresService_GetScoreHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScoreHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresServiceServer).GetScoreHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresService_GetScoreHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresServiceServer).GetScoreHistory(ctx, req.(*GetScoreHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScoresService_ServiceDesc is the grpc.ServiceDesc for ScoresService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScoresService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "scores.v1.ScoresService",
	HandlerType: (*ScoresServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ComputeScore",
			Handler:    _ScoresService_ComputeScore_Handler,
		},
		{
			MethodName: "GetActiveScore",
			Handler:    _ScoresService_GetActiveScore_Handler,
		},
		{
			MethodName: "ExpireScore",
			Handler:    _ScoresService_ExpireScore_Handler,
		},
		{
			MethodName: "GetScoreHistory",
			Handler:    _ScoresService_GetScoreHistory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scores/v1/scores.proto",
}
