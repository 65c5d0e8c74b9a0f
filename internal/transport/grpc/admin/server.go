// Package admin runs the side gRPC port: the standard health service,
// reflection, and request logging.
package admin

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	probe "github.com/light-bringer/storeadmin-service/internal/pkg/health"
)

// ServiceName is the health entry reported next to the overall "" entry.
const ServiceName = "storeadmin.v1.StoreAdmin"

// Server wraps a grpc.Server whose health status follows a Checker.
type Server struct {
	grpc    *grpc.Server
	health  *health.Server
	checker probe.Checker
	logger  *slog.Logger
}

// NewServer creates the server. Every entry starts NOT_SERVING until the
// first successful probe.
func NewServer(checker probe.Checker, logger *slog.Logger) *Server {
	s := &Server{
		health:  health.NewServer(),
		checker: checker,
		logger:  logger,
	}
	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(s.logUnary))

	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Probe runs the checker once and publishes the result.
func (s *Server) Probe(ctx context.Context) {
	if err := s.checker.Check(ctx); err != nil {
		s.logger.WarnContext(ctx, "database probe failed", "error", err)
		s.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	s.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Watch probes every interval until ctx is done.
func (s *Server) Watch(ctx context.Context, interval time.Duration) {
	s.Probe(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Probe(ctx)
		}
	}
}

// Stop marks every entry NOT_SERVING and drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

func (s *Server) setStatus(st healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

func (s *Server) logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	level := slog.LevelDebug
	if code != codes.OK {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "grpc request",
		"method", info.FullMethod,
		"code", code.String(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return resp, err
}
