package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/GGmuzem/web-calculator/internal/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := rpc.NewServer("bufnet", zap.NewNop())
	go func() { _ = srv.Serve(lis) }()

	c, err := NewGRPCClient("bufnet", 5*time.Second, zap.NewNop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})

	return c
}

func TestGRPCClientCalculate(t *testing.T) {
	c := newTestClient(t)

	resp, err := c.Calculate(context.Background(), "2 + 3")
	require.NoError(t, err)
	assert.False(t, resp.Failed())
	assert.Equal(t, "5", resp.Result)

	resp, err = c.Calculate(context.Background(), "10/0")
	require.NoError(t, err)
	assert.True(t, resp.Failed())
	assert.Equal(t, "division by zero", resp.Error)
	assert.Equal(t, "division_by_zero", resp.Kind)
}

func TestGRPCClientClose(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.Close())
	assert.Error(t, c.Close())
}

func TestGRPCClientCalculateAll(t *testing.T) {
	c := newTestClient(t)

	expressions := []string{"2+3", "10/3", "2*3", "10-3", "", "2+3+4", "+5", "a+b", "10/0", "1e308*10"}
	outcomes := c.CalculateAll(context.Background(), expressions, 3)

	require.Len(t, outcomes, len(expressions))
	expected := []string{
		"5", "3", "6", "7",
		"Error: empty expression",
		"Error: only one operator is allowed",
		"Error: invalid expression format",
		"Error: operands must be numbers",
		"Error: division by zero",
		"inf",
	}
	for i, outcome := range outcomes {
		require.NoError(t, outcome.Err, outcome.Expression)
		assert.Equal(t, expressions[i], outcome.Expression)
		assert.Equal(t, expected[i], outcome.Text(), outcome.Expression)
	}
}

func TestGRPCClientUnavailable(t *testing.T) {
	lis := bufconn.Listen(1024)
	lis.Close()

	c, err := NewGRPCClient("bufnet", 200*time.Millisecond, zap.NewNop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	defer c.Close()

	outcomes := c.CalculateAll(context.Background(), []string{"1+1"}, 0)
	require.Len(t, outcomes, 1)
	assert.Error(t, outcomes[0].Err)
	assert.Nil(t, outcomes[0].Response)
}
