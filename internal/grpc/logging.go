package grpcserver

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// newUnaryLoggingInterceptor attaches a request logger to the context and logs each call's
// method, status code and duration.
func newUnaryLoggingInterceptor(base zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		l := base.With().Str("method", info.FullMethod).Logger()
		resp, err := handler(l.WithContext(ctx), req)

		code := status.Code(err)
		var ev *zerolog.Event
		switch code {
		case codes.OK:
			ev = l.Info()
		case codes.Internal, codes.Unknown, codes.DataLoss:
			ev = l.Error().Err(err)
		case codes.Unavailable:
			ev = l.Warn().Err(err)
		default:
			ev = l.Debug().Err(err)
		}
		ev.Str("code", code.String()).Dur("duration", time.Since(start)).Msg("rpc")
		return resp, err
	}
}
