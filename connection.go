package dict

import (
	"bufio"
	"context"
	"errors"
	"net"
	"time"
)

var ErrConnectionClosed = errors.New("dict: connection closed")

// DefaultPort is the IANA-assigned port for the DICT protocol.
const DefaultPort = "2628"

// Connection is the transport under a Session: a connected, ordered byte
// stream with line-based reads and raw writes. It is exclusively owned by
// one Session and is not safe for concurrent use.
type Connection struct {
	addr   string
	conn   net.Conn
	reader *bufio.Reader
	closed bool
}

// NewConnection wraps an established network connection.
func NewConnection(conn net.Conn) *Connection {
	return &Connection{
		addr:   conn.RemoteAddr().String(),
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

// Reader returns the buffered reader over the incoming stream.
func (c *Connection) Reader() *bufio.Reader {
	return c.reader
}

// Write sends raw bytes to the server.
func (c *Connection) Write(p []byte) (int, error) {
	if c.closed {
		return 0, ErrConnectionClosed
	}
	return c.conn.Write(p)
}

// applyDeadline sets the connection deadline from the context, clearing it
// when the context has none.
func (c *Connection) applyDeadline(ctx context.Context) {
	if c.closed {
		return
	}
	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}
}

// Addr returns the remote address.
func (c *Connection) Addr() string {
	return c.addr
}

// IsClosed reports whether Close has been called.
func (c *Connection) IsClosed() bool {
	return c.closed
}

// Close closes the connection. It is idempotent.
func (c *Connection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
