// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: albumkeeper.proto

package proto

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
	AlbumKeeperService_Ping_FullMethodName                   = "/albumkeeper.service.AlbumKeeperService/Ping"
	AlbumKeeperService_CreateMedia_FullMethodName            = "/albumkeeper.service.AlbumKeeperService/CreateMedia"
	AlbumKeeperService_ListAlbumMedia_FullMethodName         = "/albumkeeper.service.AlbumKeeperService/ListAlbumMedia"
	AlbumKeeperService_WatchAlbum_FullMethodName             = "/albumkeeper.service.AlbumKeeperService/WatchAlbum"
	AlbumKeeperService_IssueUploadCredentials_FullMethodName = "/albumkeeper.service.AlbumKeeperService/IssueUploadCredentials"
	AlbumKeeperService_SignImageURL_FullMethodName           = "/albumkeeper.service.AlbumKeeperService/SignImageURL"
	AlbumKeeperService_SignVideoToken_FullMethodName         = "/albumkeeper.service.AlbumKeeperService/SignVideoToken"
	AlbumKeeperService_DeleteMedia_FullMethodName            = "/albumkeeper.service.AlbumKeeperService/DeleteMedia"
)

// AlbumKeeperServiceClient is the client API for AlbumKeeperService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AlbumKeeperServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	CreateMedia(ctx context.Context, in *CreateMediaRequest, opts ...grpc.CallOption) (*CreateMediaResponse, error)
	ListAlbumMedia(ctx context.Context, in *ListAlbumMediaRequest, opts ...grpc.CallOption) (*ListAlbumMediaResponse, error)
	WatchAlbum(ctx context.Context, in *WatchAlbumRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchAlbumResponse], error)
	IssueUploadCredentials(ctx context.Context, in *IssueUploadCredentialsRequest, opts ...grpc.CallOption) (*IssueUploadCredentialsResponse, error)
	SignImageURL(ctx context.Context, in *SignImageURLRequest, opts ...grpc.CallOption) (*SignImageURLResponse, error)
	SignVideoToken(ctx context.Context, in *SignVideoTokenRequest, opts ...grpc.CallOption) (*SignVideoTokenResponse, error)
	DeleteMedia(ctx context.Context, in *DeleteMediaRequest, opts ...grpc.CallOption) (*DeleteMediaResponse, error)
}

type albumKeeperServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAlbumKeeperServiceClient(cc grpc.ClientConnInterface) AlbumKeeperServiceClient {
	return &albumKeeperServiceClient{cc}
}

func (c *albumKeeperServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PingResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_Ping_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) CreateMedia(ctx context.Context, in *CreateMediaRequest, opts ...grpc.CallOption) (*CreateMediaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateMediaResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_CreateMedia_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) ListAlbumMedia(ctx context.Context, in *ListAlbumMediaRequest, opts ...grpc.CallOption) (*ListAlbumMediaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAlbumMediaResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_ListAlbumMedia_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) WatchAlbum(ctx context.Context, in *WatchAlbumRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[WatchAlbumResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AlbumKeeperService_ServiceDesc.Streams[0], AlbumKeeperService_WatchAlbum_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchAlbumRequest, WatchAlbumResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AlbumKeeperService_WatchAlbumClient = grpc.ServerStreamingClient[WatchAlbumResponse]

func (c *albumKeeperServiceClient) IssueUploadCredentials(ctx context.Context, in *IssueUploadCredentialsRequest, opts ...grpc.CallOption) (*IssueUploadCredentialsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IssueUploadCredentialsResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_IssueUploadCredentials_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) SignImageURL(ctx context.Context, in *SignImageURLRequest, opts ...grpc.CallOption) (*SignImageURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SignImageURLResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_SignImageURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) SignVideoToken(ctx context.Context, in *SignVideoTokenRequest, opts ...grpc.CallOption) (*SignVideoTokenResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SignVideoTokenResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_SignVideoToken_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *albumKeeperServiceClient) DeleteMedia(ctx context.Context, in *DeleteMediaRequest, opts ...grpc.CallOption) (*DeleteMediaResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteMediaResponse)
	err := c.cc.Invoke(ctx, AlbumKeeperService_DeleteMedia_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AlbumKeeperServiceServer is the server API for AlbumKeeperService service.
// All implementations must embed UnimplementedAlbumKeeperServiceServer
// for forward compatibility.
type AlbumKeeperServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	CreateMedia(context.Context, *CreateMediaRequest) (*CreateMediaResponse, error)
	ListAlbumMedia(context.Context, *ListAlbumMediaRequest) (*ListAlbumMediaResponse, error)
	WatchAlbum(*WatchAlbumRequest, grpc.ServerStreamingServer[WatchAlbumResponse]) error
	IssueUploadCredentials(context.Context, *IssueUploadCredentialsRequest) (*IssueUploadCredentialsResponse, error)
	SignImageURL(context.Context, *SignImageURLRequest) (*SignImageURLResponse, error)
	SignVideoToken(context.Context, *SignVideoTokenRequest) (*SignVideoTokenResponse, error)
	DeleteMedia(context.Context, *DeleteMediaRequest) (*DeleteMediaResponse, error)
	mustEmbedUnimplementedAlbumKeeperServiceServer()
}

// UnimplementedAlbumKeeperServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAlbumKeeperServiceServer struct{}

func (UnimplementedAlbumKeeperServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) CreateMedia(context.Context, *CreateMediaRequest) (*CreateMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateMedia not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) ListAlbumMedia(context.Context, *ListAlbumMediaRequest) (*ListAlbumMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAlbumMedia not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) WatchAlbum(*WatchAlbumRequest, grpc.ServerStreamingServer[WatchAlbumResponse]) error {
	return status.Errorf(codes.Unimplemented, "method WatchAlbum not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) IssueUploadCredentials(context.Context, *IssueUploadCredentialsRequest) (*IssueUploadCredentialsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IssueUploadCredentials not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) SignImageURL(context.Context, *SignImageURLRequest) (*SignImageURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SignImageURL not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) SignVideoToken(context.Context, *SignVideoTokenRequest) (*SignVideoTokenResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SignVideoToken not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) DeleteMedia(context.Context, *DeleteMediaRequest) (*DeleteMediaResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteMedia not implemented")
}
func (UnimplementedAlbumKeeperServiceServer) mustEmbedUnimplementedAlbumKeeperServiceServer() {}
func (UnimplementedAlbumKeeperServiceServer) testEmbeddedByValue()                            {}

// UnsafeAlbumKeeperServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AlbumKeeperServiceServer will
// result in compilation errors.
type UnsafeAlbumKeeperServiceServer interface {
	mustEmbedUnimplementedAlbumKeeperServiceServer()
}

func RegisterAlbumKeeperServiceServer(s grpc.ServiceRegistrar, srv AlbumKeeperServiceServer) {
	// If the following call pancis, it indicates UnimplementedAlbumKeeperServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AlbumKeeperService_ServiceDesc, srv)
}

func _AlbumKeeperService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_CreateMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).CreateMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_CreateMedia_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).CreateMedia(ctx, req.(*CreateMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_ListAlbumMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAlbumMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).ListAlbumMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_ListAlbumMedia_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).ListAlbumMedia(ctx, req.(*ListAlbumMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_WatchAlbum_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchAlbumRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AlbumKeeperServiceServer).WatchAlbum(m, &grpc.GenericServerStream[WatchAlbumRequest, WatchAlbumResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AlbumKeeperService_WatchAlbumServer = grpc.ServerStreamingServer[WatchAlbumResponse]

func _AlbumKeeperService_IssueUploadCredentials_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IssueUploadCredentialsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).IssueUploadCredentials(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_IssueUploadCredentials_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).IssueUploadCredentials(ctx, req.(*IssueUploadCredentialsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_SignImageURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SignImageURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).SignImageURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_SignImageURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).SignImageURL(ctx, req.(*SignImageURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_SignVideoToken_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SignVideoTokenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).SignVideoToken(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_SignVideoToken_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).SignVideoToken(ctx, req.(*SignVideoTokenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AlbumKeeperService_DeleteMedia_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteMediaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlbumKeeperServiceServer).DeleteMedia(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AlbumKeeperService_DeleteMedia_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlbumKeeperServiceServer).DeleteMedia(ctx, req.(*DeleteMediaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AlbumKeeperService_ServiceDesc is the grpc.ServiceDesc for AlbumKeeperService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AlbumKeeperService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "albumkeeper.service.AlbumKeeperService",
	HandlerType: (*AlbumKeeperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _AlbumKeeperService_Ping_Handler,
		},
		{
			MethodName: "CreateMedia",
			Handler:    _AlbumKeeperService_CreateMedia_Handler,
		},
		{
			MethodName: "ListAlbumMedia",
			Handler:    _AlbumKeeperService_ListAlbumMedia_Handler,
		},
		{
			MethodName: "IssueUploadCredentials",
			Handler:    _AlbumKeeperService_IssueUploadCredentials_Handler,
		},
		{
			MethodName: "SignImageURL",
			Handler:    _AlbumKeeperService_SignImageURL_Handler,
		},
		{
			MethodName: "SignVideoToken",
			Handler:    _AlbumKeeperService_SignVideoToken_Handler,
		},
		{
			MethodName: "DeleteMedia",
			Handler:    _AlbumKeeperService_DeleteMedia_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchAlbum",
			Handler:       _AlbumKeeperService_WatchAlbum_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "albumkeeper.proto",
}
