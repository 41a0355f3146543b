package dict

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
)

func TestBreakerDialerOpensAfterRepeatedFailures(t *testing.T) {
	dialErr := errors.New("connection refused")
	failing := func(ctx context.Context, addr string) (net.Conn, error) {
		return nil, dialErr
	}

	dial := NewBreakerDialer(failing, 1, 0, time.Minute)
	ctx := context.Background()

	// First failures pass through untouched.
	for i := 0; i < 3; i++ {
		_, err := dial(ctx, "dead.example:2628")
		require.ErrorIs(t, err, dialErr)
	}

	// The breaker is now open: dials fail fast without reaching the dialer.
	_, err := dial(ctx, "dead.example:2628")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestBreakerDialerIsolatesServers(t *testing.T) {
	dialErr := errors.New("connection refused")
	dialed := make(map[string]int)
	failing := func(ctx context.Context, addr string) (net.Conn, error) {
		dialed[addr]++
		return nil, dialErr
	}

	dial := NewBreakerDialer(failing, 1, 0, time.Minute)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		dial(ctx, "dead.example:2628")
	}
	require.Equal(t, 3, dialed["dead.example:2628"], "open breaker must stop dialing")

	// A different server has its own breaker.
	_, err := dial(ctx, "alive.example:2628")
	require.ErrorIs(t, err, dialErr)
	require.Equal(t, 1, dialed["alive.example:2628"])
}
