package intercepters

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func TestSubnetIPInterceptor(t *testing.T) {
	handler := func(ctx context.Context, req any) (any, error) {
		ip, _ := ctx.Value(RealIPKey).(string)
		return ip, nil
	}

	tests := []struct {
		name   string
		ctx    context.Context
		wantIP string
	}{
		{
			name:   "with x-real-ip metadata",
			ctx:    metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-real-ip", "192.168.1.100")),
			wantIP: "192.168.1.100",
		},
		{
			name:   "with empty x-real-ip metadata",
			ctx:    metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-real-ip", "")),
			wantIP: "",
		},
		{
			name:   "without metadata",
			ctx:    context.Background(),
			wantIP: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := SubnetIPInterceptor(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/fridgebook.v1.Bookmarks/Stats"}, handler)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantIP, resp)
		})
	}
}

func TestWithTrustedSubnet(t *testing.T) {
	const guarded = "/fridgebook.v1.Bookmarks/Stats"

	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	peerCtx := func(ip string) context.Context {
		return peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP(ip), Port: 5000}})
	}

	tests := []struct {
		name   string
		subnet string
		method string
		ctx    context.Context
		want   codes.Code
	}{
		{name: "unguarded method", subnet: "", method: "/fridgebook.v1.Bookmarks/List", ctx: context.Background(), want: codes.OK},
		{name: "real ip inside", subnet: "10.0.0.0/8", method: guarded, ctx: context.WithValue(context.Background(), RealIPKey, "10.1.2.3"), want: codes.OK},
		{name: "real ip outside", subnet: "10.0.0.0/8", method: guarded, ctx: context.WithValue(context.Background(), RealIPKey, "192.168.0.1"), want: codes.PermissionDenied},
		{name: "peer fallback", subnet: "127.0.0.0/8", method: guarded, ctx: peerCtx("127.0.0.1"), want: codes.OK},
		{name: "no address", subnet: "127.0.0.0/8", method: guarded, ctx: context.Background(), want: codes.PermissionDenied},
		{name: "no subnet", subnet: "", method: guarded, ctx: peerCtx("127.0.0.1"), want: codes.PermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interceptor := WithTrustedSubnet(tt.subnet, guarded)
			_, err := interceptor(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: tt.method}, handler)
			assert.Equal(t, tt.want, status.Code(err))
		})
	}
}
