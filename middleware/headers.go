// Package middleware injects the transport-layer metadata every Spark
// Connect RPC carries: session pinning, bearer auth, and user agent. The
// core never reads or writes this metadata directly — it is attached once,
// here, at dial time (see channel.Builder.dialOptions).
package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	sessionHeader   = "x-spark-session-id"
	authHeader      = "authorization"
	userAgentHeader = "user-agent"
)

func attach(ctx context.Context, sessionID, token, userAgent string) context.Context {
	pairs := []string{sessionHeader, sessionID, userAgentHeader, userAgent}
	if token != "" {
		pairs = append(pairs, authHeader, "Bearer "+token)
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// UnaryInterceptor stamps every unary RPC (AnalyzePlan, ReleaseExecute,
// Config, Interrupt) with session and auth metadata before invoking it.
func UnaryInterceptor(sessionID, token, userAgent string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(attach(ctx, sessionID, token, userAgent), method, req, reply, cc, opts...)
	}
}

// StreamInterceptor does the same for the server-streaming RPCs
// (ExecutePlan, ReattachExecute).
func StreamInterceptor(sessionID, token, userAgent string) grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(attach(ctx, sessionID, token, userAgent), desc, cc, method, opts...)
	}
}
