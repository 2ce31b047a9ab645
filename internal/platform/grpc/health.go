// Package grpc hosts the optional gRPC health endpoint and its readiness probe.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/louisbranch/practice.space/internal/platform/timeouts"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthServer mirrors the HTTP health endpoint over the standard gRPC health
// protocol.
type HealthServer struct {
	server *gogrpc.Server
	health *health.Server
	logger *zap.Logger
}

// NewHealthServer builds a gRPC server exposing grpc.health.v1 for service.
// The status starts as NOT_SERVING until SetServing is called.
func NewHealthServer(service string, logger *zap.Logger) *HealthServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	if service != "" {
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	}
	return &HealthServer{server: server, health: healthServer, logger: logger}
}

// SetServing flips the reported status for service and the overall server.
func (s *HealthServer) SetServing(service string, serving bool) {
	if s == nil {
		return
	}
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, status)
	if service != "" {
		s.health.SetServingStatus("", status)
	}
}

// Serve accepts connections on listener until ctx ends.
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("health server is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.Serve(listener)
	}()
	s.logger.Info("grpc health listening", zap.String("addr", listener.Addr().String()))

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.server.GracefulStop()
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve grpc health: %w", err)
	}
}

// Dial opens an insecure client connection to a local health endpoint.
func Dial(addr string) (*gogrpc.ClientConn, error) {
	conn, err := gogrpc.NewClient(addr,
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial grpc health %s: %w", addr, err)
	}
	return conn, nil
}

// WaitForHealth blocks until the gRPC health check reports SERVING or the context ends.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logger *zap.Logger) error {
	if conn == nil {
		return fmt.Errorf("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	backoff := 100 * time.Millisecond
	for {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.HealthProbe)
		response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err == nil && response.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING {
			logger.Debug("grpc health serving", zap.String("service", service))
			return nil
		}
		if err != nil {
			logger.Debug("waiting for grpc health", zap.Error(err))
		} else {
			logger.Debug("waiting for grpc health", zap.Stringer("status", response.GetStatus()))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, time.Second)
	}
}
