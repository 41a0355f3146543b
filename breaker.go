package dict

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
)

// NewBreakerDialer wraps a Dialer with one circuit breaker per server
// address: once dialing a server keeps failing, further dials to it fail
// fast until the timeout elapses. This is failure isolation only; no dial
// is ever retried.
func NewBreakerDialer(dial Dialer, maxRequests uint32, interval, timeout time.Duration) Dialer {
	if dial == nil {
		dial = defaultDialer
	}

	var mu sync.Mutex
	breakers := make(map[string]*gobreaker.CircuitBreaker[net.Conn])

	breakerFor := func(addr string) *gobreaker.CircuitBreaker[net.Conn] {
		mu.Lock()
		defer mu.Unlock()

		cb, ok := breakers[addr]
		if !ok {
			cb = gobreaker.NewCircuitBreaker[net.Conn](gobreaker.Settings{
				Name:        addr,
				MaxRequests: maxRequests,
				Interval:    interval,
				Timeout:     timeout,
				ReadyToTrip: func(counts gobreaker.Counts) bool {
					failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
					return counts.Requests >= 3 && failureRatio >= 0.6
				},
			})
			breakers[addr] = cb
		}
		return cb
	}

	return func(ctx context.Context, addr string) (net.Conn, error) {
		return breakerFor(addr).Execute(func() (net.Conn, error) {
			return dial(ctx, addr)
		})
	}
}
