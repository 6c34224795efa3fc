package calculator

import (
	"context"

	"github.com/GGmuzem/web-calculator/pkg/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName полное имя gRPC сервиса
const ServiceName = "calculator.Calculator"

// CalculateMethod полное имя метода Calculate
const CalculateMethod = "/" + ServiceName + "/Calculate"

// Интерфейс для CalculatorClient
type CalculatorClient interface {
	Calculate(ctx context.Context, in *models.CalculateRequest, opts ...grpc.CallOption) (*models.CalculateResponse, error)
}

// Интерфейс для CalculatorServer
type CalculatorServer interface {
	Calculate(ctx context.Context, in *models.CalculateRequest) (*models.CalculateResponse, error)
}

// Базовая реализация CalculatorServer
type UnimplementedCalculatorServer struct{}

// Стаб для Calculate
func (UnimplementedCalculatorServer) Calculate(ctx context.Context, in *models.CalculateRequest) (*models.CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Calculate not implemented")
}

// RegisterCalculatorServer регистрирует сервер Calculator в gRPC
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&calculatorServiceDesc, srv)
}

var calculatorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Calculate",
			Handler:    calculateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calculator.proto",
}

// Обработчик Calculate
func calculateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(models.CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Calculate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalculateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Calculate(ctx, req.(*models.CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NewCalculatorClient создает нового клиента для сервиса Calculator.
// Сообщения кодируются в JSON, см. codec.go.
func NewCalculatorClient(cc grpc.ClientConnInterface) CalculatorClient {
	return &calculatorClient{cc}
}

// Реализация клиента
type calculatorClient struct {
	cc grpc.ClientConnInterface
}

// Calculate вызывает Calculate у сервера
func (c *calculatorClient) Calculate(ctx context.Context, in *models.CalculateRequest, opts ...grpc.CallOption) (*models.CalculateResponse, error) {
	out := new(models.CalculateResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, CalculateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
