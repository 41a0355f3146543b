package dict

import (
	"bufio"
	"context"
	"net"
	"testing"
	"time"

	"github.com/pior/dict/internal/testutils"
	"github.com/stretchr/testify/require"
)

const testGreeting = "220 dictd.example.org <auth.mime> <abc123.xyz@dictd.example.org>\r\n"

// newTestSession builds a session over a scripted connection. The greeting
// is prepended; pass the remaining server lines with CRLF terminators.
func newTestSession(t testing.TB, serverLines ...string) (*Session, *testutils.ConnectionMock) {
	t.Helper()

	mock := testutils.NewConnectionMock(append([]string{testGreeting}, serverLines...)...)
	sess, err := NewSession(context.Background(), mock)
	require.NoError(t, err, "greeting should parse")
	return sess, mock
}

// createListener starts a fake dictd for tests that exercise real dialing.
// The handler owns the accepted connection.
func createListener(t testing.TB, handler func(conn *bufio.ReadWriter)) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "failed to start test server")

	t.Cleanup(func() {
		listener.Close()
	})

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}

			go func(c net.Conn) {
				defer c.Close()
				if handler != nil {
					rw := bufio.NewReadWriter(bufio.NewReader(c), bufio.NewWriter(c))
					handler(rw)
					rw.Flush()
				}
			}(conn)
		}
	}()

	// Give the server time to start
	time.Sleep(10 * time.Millisecond)

	return listener.Addr().String()
}
