package testutils

import (
	"bytes"
	"net"
	"strings"
	"time"
)

// ConnectionMock is a scripted net.Conn for session tests: reads are served
// from pre-configured server lines, writes are captured for inspection.
type ConnectionMock struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
	writes   int
	closed   bool
}

// NewConnectionMock creates a mock connection serving the given server
// lines. Lines are joined as-is; include the CRLF terminators.
func NewConnectionMock(serverLines ...string) *ConnectionMock {
	return &ConnectionMock{
		readBuf:  bytes.NewBufferString(strings.Join(serverLines, "")),
		writeBuf: &bytes.Buffer{},
	}
}

func (m *ConnectionMock) Read(b []byte) (n int, err error) {
	return m.readBuf.Read(b)
}

func (m *ConnectionMock) Write(b []byte) (n int, err error) {
	m.writes++
	return m.writeBuf.Write(b)
}

// WriteCount returns how many Write calls the client made.
func (m *ConnectionMock) WriteCount() int {
	return m.writes
}

func (m *ConnectionMock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *ConnectionMock) Closed() bool {
	return m.closed
}

// Written returns the raw request bytes the client wrote.
func (m *ConnectionMock) Written() string {
	return m.writeBuf.String()
}

func (m *ConnectionMock) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (m *ConnectionMock) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 2628}
}

func (m *ConnectionMock) SetDeadline(t time.Time) error      { return nil }
func (m *ConnectionMock) SetReadDeadline(t time.Time) error  { return nil }
func (m *ConnectionMock) SetWriteDeadline(t time.Time) error { return nil }
