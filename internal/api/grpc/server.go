package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"arweaveCost/internal/api/grpc/estimator"
	"arweaveCost/internal/api/grpc/interceptors"
	"arweaveCost/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: ESTIMATOR_GRPC_HOST, ESTIMATOR_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает адрес "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	addr   string
}

// NewServer создаёт gRPC-сервер, регистрирует EstimatorService и стандартный health-сервис.
// Логирующий интерцептор пишет метод, latency_ms и grpc_code (аналог HTTP middleware).
func NewServer(addr string, uc ports.IEstimatorUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	estimator.RegisterEstimatorServiceServer(s, estimator.New(uc, log))

	hs := health.NewServer()
	hs.SetServingStatus(estimator.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return &Server{grpc: s, health: hs, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом листенере (в тестах — bufconn).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful), по истечении ctx — жёстко.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
