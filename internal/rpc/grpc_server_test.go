package rpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/GGmuzem/web-calculator/pkg/calculator"
	"github.com/GGmuzem/web-calculator/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func value(v float64) *float64 {
	return &v
}

func startBufServer(t *testing.T) calculator.CalculatorClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := NewServer("bufnet", zap.NewNop())
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return calculator.NewCalculatorClient(conn)
}

func TestCalculateOverGRPC(t *testing.T) {
	client := startBufServer(t)

	tests := []struct {
		expression string
		expected   models.CalculateResponse
	}{
		{"2+3", models.CalculateResponse{Result: "5", Value: value(5)}},
		{"10/3", models.CalculateResponse{Result: "3", Value: value(3)}},
		{" 2 * 3 ", models.CalculateResponse{Result: "6", Value: value(6)}},
		{"10-3", models.CalculateResponse{Result: "7", Value: value(7)}},
		{"3-3", models.CalculateResponse{Result: "0", Value: value(0)}},
		{"1e308*10", models.CalculateResponse{Result: "inf"}},
		{"nan+1", models.CalculateResponse{Result: "nan"}},
		{"", models.CalculateResponse{Error: "empty expression", Kind: "empty_expression"}},
		{"2+3+4", models.CalculateResponse{Error: "only one operator is allowed", Kind: "multiple_operators"}},
		{"+5", models.CalculateResponse{Error: "invalid expression format", Kind: "invalid_format"}},
		{"a+b", models.CalculateResponse{Error: "operands must be numbers", Kind: "invalid_operands"}},
		{"10/0", models.CalculateResponse{Error: "division by zero", Kind: "division_by_zero"}},
	}

	for _, test := range tests {
		t.Run(test.expression, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			resp, err := client.Calculate(ctx, &models.CalculateRequest{Expression: test.expression})
			require.NoError(t, err)
			assert.Equal(t, test.expected, *resp)
		})
	}
}

func TestCalculateCancelledContext(t *testing.T) {
	srv := NewCalculatorServer(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := srv.Calculate(ctx, &models.CalculateRequest{Expression: "1+1"})
	assert.Equal(t, codes.Canceled, status.Code(err))
}

func TestShutdownWithoutCalls(t *testing.T) {
	srv := NewServer("bufnet", zap.NewNop())
	lis := bufconn.Listen(1024)

	done := make(chan error, 1)
	go func() { done <- srv.Serve(lis) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))
	assert.NoError(t, <-done)
}
