package server

import (
	"context"
	"path"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/superma0035/zapdine/pkg/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// records latency and logs every unary call
func observeUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		method := path.Base(info.FullMethod)
		code := status.Code(err)
		metrics.RPCDuration.WithLabelValues(method, code.String()).Observe(elapsed.Seconds())

		ev := log.Debug()
		if err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Str("method", method).
			Str("code", code.String()).
			Dur("duration", elapsed).
			Msg("rpc")
		return resp, err
	}
}
