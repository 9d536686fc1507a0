package server

import (
	pb "github.com/superma0035/zapdine/api/v1"
	"github.com/superma0035/zapdine/pkg/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewGRPCServer registers the table session service and the standard health
// service on a new gRPC server.
func NewGRPCServer(srv *Server, verifier *auth.Verifier) (*grpc.Server, *health.Server) {
	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			observeUnary(),
			auth.UnaryServerInterceptor(verifier),
		),
	)
	pb.RegisterTableSessionServiceServer(gs, srv)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus(pb.TableSessionService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	return gs, hs
}
