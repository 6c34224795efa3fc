package client

import (
	"context"
	"fmt"
	"time"

	"github.com/GGmuzem/web-calculator/internal/calculate"
	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient клиент gRPC сервиса калькулятора
type GRPCClient struct {
	client  calculator.CalculatorClient
	conn    *grpc.ClientConn
	timeout time.Duration
	logger  *zap.Logger
}

// Outcome результат вычисления одного выражения
type Outcome struct {
	Expression string
	Response   *models.CalculateResponse
	Err        error
}

// Text строка для вывода: результат, текст ошибки вычисления или транспортная ошибка
func (o Outcome) Text() string {
	switch {
	case o.Err != nil:
		return o.Err.Error()
	case o.Response.Failed():
		return calculate.ErrorPrefix + o.Response.Error
	default:
		return o.Response.Result
	}
}

// NewGRPCClient создает новый gRPC клиент.
// Дополнительные опции позволяют, например, подменить dialer в тестах.
func NewGRPCClient(serverAddr string, timeout time.Duration, logger *zap.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	// Создаем соединение без TLS
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.Dial(serverAddr, opts...)
	if err != nil {
		return nil, fmt.Errorf("error dialing %s: %w", serverAddr, err)
	}

	return &GRPCClient{
		client:  calculator.NewCalculatorClient(conn),
		conn:    conn,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close закрывает соединение с сервером
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Calculate отправляет выражение на сервер
func (c *GRPCClient) Calculate(ctx context.Context, expression string) (*models.CalculateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Calculate(ctx, &models.CalculateRequest{Expression: expression})
	if err != nil {
		c.logger.Debug("ошибка вызова Calculate", zap.String("expression", expression), zap.Error(err))
		return nil, err
	}
	return resp, nil
}

// CalculateAll вычисляет выражения параллельно, не больше parallel вызовов одновременно.
// Результаты возвращаются в порядке выражений. Транспортные ошибки не прерывают
// остальные вызовы, они попадают в Outcome.Err.
func (c *GRPCClient) CalculateAll(ctx context.Context, expressions []string, parallel int) []Outcome {
	outcomes := make([]Outcome, len(expressions))

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, expression := range expressions {
		i, expression := i, expression
		g.Go(func() error {
			resp, err := c.Calculate(ctx, expression)
			outcomes[i] = Outcome{Expression: expression, Response: resp, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
