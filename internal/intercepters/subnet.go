package intercepters

import (
	"context"
	"net/netip"
	"slices"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type contextKey string

const RealIPKey contextKey = "real-ip"

// SubnetIPInterceptor copies the x-real-ip metadata into the context.
func SubnetIPInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if ips := md.Get("x-real-ip"); len(ips) > 0 {
			ctx = context.WithValue(ctx, RealIPKey, ips[0])
		}
	}
	return handler(ctx, req)
}

// callerIP reads the address stored by SubnetIPInterceptor, falling back
// to the transport peer.
func callerIP(ctx context.Context) (netip.Addr, bool) {
	raw, _ := ctx.Value(RealIPKey).(string)
	if raw == "" {
		p, ok := peer.FromContext(ctx)
		if !ok || p.Addr == nil {
			return netip.Addr{}, false
		}
		ap, err := netip.ParseAddrPort(p.Addr.String())
		if err != nil {
			return netip.Addr{}, false
		}
		return ap.Addr().Unmap(), true
	}

	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

// WithTrustedSubnet rejects calls to the given full method names unless the
// caller is inside subnet. Other methods are not checked.
func WithTrustedSubnet(subnet string, methods ...string) grpc.UnaryServerInterceptor {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(subnet))
	trusted := err == nil

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !slices.Contains(methods, info.FullMethod) {
			return handler(ctx, req)
		}

		addr, ok := callerIP(ctx)
		if !trusted || !ok || !prefix.Contains(addr) {
			return nil, status.Error(codes.PermissionDenied, "caller is not in the trusted subnet")
		}
		return handler(ctx, req)
	}
}
