package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// CalculatorServer реализация gRPC сервиса калькулятора
type CalculatorServer struct {
	calculator.UnimplementedCalculatorServer
	logger *zap.Logger
}

// NewCalculatorServer создает новый gRPC сервис калькулятора
func NewCalculatorServer(logger *zap.Logger) *CalculatorServer {
	return &CalculatorServer{logger: logger}
}

// Calculate вычисляет выражение. Ошибка вычисления возвращается в теле ответа
// со статусом OK, статусы gRPC остаются для транспортных ошибок.
func (s *CalculatorServer) Calculate(ctx context.Context, req *models.CalculateRequest) (*models.CalculateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	result, err := calculate.Calculate(req.Expression)
	if err != nil {
		var calcErr *calculate.CalcError
		if !errors.As(err, &calcErr) {
			s.logger.Error("ошибка вычисления", zap.String("expression", req.Expression), zap.Error(err))
			return nil, status.Error(codes.Internal, "internal error")
		}
		return &models.CalculateResponse{
			Error: calcErr.Message,
			Kind:  calcErr.Kind.String(),
		}, nil
	}

	return models.NewResultResponse(calculate.FormatResult(result), result), nil
}

// Server gRPC сервер калькулятора
type Server struct {
	addr       string
	logger     *zap.Logger
	grpcServer *grpc.Server
}

// NewServer создает gRPC сервер и регистрирует в нём сервис калькулятора
func NewServer(addr string, logger *zap.Logger) *Server {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(LoggingInterceptor(logger)))
	calculator.RegisterCalculatorServer(grpcServer, NewCalculatorServer(logger))

	// Включаем рефлексию для отладки
	reflection.Register(grpcServer)

	return &Server{
		addr:       addr,
		logger:     logger,
		grpcServer: grpcServer,
	}
}

// Serve обслуживает запросы на уже открытом листенере
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC сервер запущен", zap.String("addr", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

// ListenAndServe открывает порт и обслуживает запросы
func (s *Server) ListenAndServe() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.addr, err)
	}
	return s.Serve(lis)
}

// Shutdown останавливает сервер. Если ctx истекает раньше, чем завершатся
// активные вызовы, соединения закрываются принудительно.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("остановка gRPC сервера")

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		s.grpcServer.Stop()
		return ctx.Err()
	}
}

// LoggingInterceptor логирует каждый unary вызов
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger.Info("grpc request",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
