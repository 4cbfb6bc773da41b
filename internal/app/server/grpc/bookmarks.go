package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	Bookmarks_Toggle_FullMethodName    = "/fridgebook.v1.Bookmarks/Toggle"
	Bookmarks_List_FullMethodName      = "/fridgebook.v1.Bookmarks/List"
	Bookmarks_GetRecipe_FullMethodName = "/fridgebook.v1.Bookmarks/GetRecipe"
	Bookmarks_Stats_FullMethodName     = "/fridgebook.v1.Bookmarks/Stats"
)

// BookmarksServer is the server API for the fridgebook.v1.Bookmarks service.
type BookmarksServer interface {
	Toggle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	List(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetRecipe(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Stats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func RegisterBookmarksServer(s grpc.ServiceRegistrar, srv BookmarksServer) {
	s.RegisterService(&Bookmarks_ServiceDesc, srv)
}

func _Bookmarks_Toggle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarksServer).Toggle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Bookmarks_Toggle_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BookmarksServer).Toggle(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Bookmarks_List_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarksServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Bookmarks_List_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BookmarksServer).List(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Bookmarks_GetRecipe_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarksServer).GetRecipe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Bookmarks_GetRecipe_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BookmarksServer).GetRecipe(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Bookmarks_Stats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarksServer).Stats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Bookmarks_Stats_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BookmarksServer).Stats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Bookmarks_ServiceDesc is the grpc.ServiceDesc for the Bookmarks service.
// Requests and replies are protobuf well-known types, see messages.go.
var Bookmarks_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fridgebook.v1.Bookmarks",
	HandlerType: (*BookmarksServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Toggle",
			Handler:    _Bookmarks_Toggle_Handler,
		},
		{
			MethodName: "List",
			Handler:    _Bookmarks_List_Handler,
		},
		{
			MethodName: "GetRecipe",
			Handler:    _Bookmarks_GetRecipe_Handler,
		},
		{
			MethodName: "Stats",
			Handler:    _Bookmarks_Stats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fridgebook/v1/bookmarks",
}

// BookmarksClient is the client API for the fridgebook.v1.Bookmarks service.
type BookmarksClient interface {
	Toggle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetRecipe(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Stats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type bookmarksClient struct {
	cc grpc.ClientConnInterface
}

func NewBookmarksClient(cc grpc.ClientConnInterface) BookmarksClient {
	return &bookmarksClient{cc}
}

func (c *bookmarksClient) Toggle(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Bookmarks_Toggle_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookmarksClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Bookmarks_List_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookmarksClient) GetRecipe(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Bookmarks_GetRecipe_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bookmarksClient) Stats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Bookmarks_Stats_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
