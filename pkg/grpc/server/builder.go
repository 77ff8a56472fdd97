// Package server wraps grpc.Server with health reporting, interceptor
// chaining and graceful shutdown for the dashboard service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	health "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const defaultPort = 50051

type Option func(*config)

type config struct {
	port         int
	logger       *zap.Logger
	reflection   bool
	logCalls     bool
	interceptors []grpc.UnaryServerInterceptor
}

// WithPort sets the TCP port. Zero picks a free one; Addr reports it.
func WithPort(port int) Option {
	return func(c *config) { c.port = port }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithReflection exposes the server reflection service for grpcurl.
func WithReflection(enabled bool) Option {
	return func(c *config) { c.reflection = enabled }
}

// WithUnaryInterceptors appends interceptors to the chain. They run in the
// order given and ahead of the call logger, so anything they put on the
// context (a request id, for one) is visible when the call is logged.
func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(c *config) { c.interceptors = append(c.interceptors, interceptors...) }
}

// WithLogging logs every unary call at the end of the chain.
func WithLogging(enabled bool) Option {
	return func(c *config) { c.logCalls = enabled }
}

// Server is a listening gRPC server whose health service tracks each
// registered dashboard service.
type Server struct {
	grpc   *grpc.Server
	lis    net.Listener
	health *health.Server
	logger *zap.Logger
}

func New(opts ...Option) (*Server, error) {
	cfg := config{port: defaultPort}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.port < 0 || cfg.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", cfg.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", cfg.port, err)
	}

	chain := append([]grpc.UnaryServerInterceptor(nil), cfg.interceptors...)
	if cfg.logCalls {
		chain = append(chain, LoggingInterceptor(cfg.logger))
	}

	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	if cfg.reflection {
		reflection.Register(gs)
	}

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{
		grpc:   gs,
		lis:    lis,
		health: hs,
		logger: cfg.logger.Named("grpc-server"),
	}, nil
}

// Register installs a service and reports it SERVING under serviceName.
func (s *Server) Register(serviceName string, register func(grpc.ServiceRegistrar)) {
	register(s.grpc)
	s.SetServiceHealth(serviceName, healthpb.HealthCheckResponse_SERVING)
}

// SetServiceHealth changes what health checks report for serviceName.
func (s *Server) SetServiceHealth(serviceName string, status healthpb.HealthCheckResponse_ServingStatus) {
	s.health.SetServingStatus(serviceName, status)
	s.logger.Info("service health changed",
		zap.String("service", serviceName),
		zap.Stringer("status", status))
}

// Start serves in the background and returns immediately.
func (s *Server) Start() {
	addr := s.lis.Addr().String()
	go func() {
		if err := s.grpc.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			s.logger.Error("gRPC server failed", zap.Error(err))
		}
	}()
	s.logger.Info("gRPC server started", zap.String("addr", addr))
}

// Shutdown reports every service NOT_SERVING and drains in-flight calls.
// When ctx ends first the remaining calls are cut off and ctx.Err is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.logger.Info("gRPC server stopped")
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		s.logger.Warn("gRPC server stopped before draining", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
