package dict

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"net"
	"strings"

	"github.com/pior/dict/protocol"
)

// Dialer opens the underlying network connection for a session.
// See NewBreakerDialer for a circuit-breaking wrapper.
type Dialer func(ctx context.Context, addr string) (net.Conn, error)

func defaultDialer(ctx context.Context, addr string) (net.Conn, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", addr)
}

// Session drives one DICT protocol connection through its lifecycle:
// greeting, optional authentication, lookups, QUIT. Outside a pipelining
// scope every operation is synchronous: the request is written and its
// response fully consumed before the operation returns.
//
// A Session is not safe for concurrent use; callers needing overlap must
// open separate sessions.
type Session struct {
	conn *Connection

	// out is the active output sink: the connection in direct mode, the
	// staging buffer inside a pipelining scope.
	out io.Writer

	pipelining bool
	queue      []func() (any, error)

	greeting *protocol.Greeting
}

// Dial connects to a DICT server and consumes the greeting banner.
// An address without a port gets the default DICT port.
func Dial(ctx context.Context, addr string) (*Session, error) {
	return DialWith(ctx, nil, addr)
}

// DialWith connects like Dial using a custom Dialer.
func DialWith(ctx context.Context, dial Dialer, addr string) (*Session, error) {
	if dial == nil {
		dial = defaultDialer
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, DefaultPort)
	}

	conn, err := dial(ctx, addr)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, conn)
}

// NewSession builds a session over an established connection and consumes
// the greeting banner. On a malformed greeting the connection is closed.
func NewSession(ctx context.Context, conn net.Conn) (*Session, error) {
	c := NewConnection(conn)
	c.applyDeadline(ctx)

	line, err := protocol.ReadLine(c.Reader())
	if err != nil {
		c.Close()
		return nil, err
	}
	greeting, err := protocol.ParseGreeting(line)
	if err != nil {
		c.Close()
		return nil, err
	}

	return &Session{conn: c, out: c, greeting: greeting}, nil
}

// Banner returns the free text of the server greeting.
func (s *Session) Banner() string {
	return s.greeting.Text
}

// Capabilities returns the feature tokens advertised at connect time.
func (s *Session) Capabilities() []string {
	return s.greeting.Capabilities
}

// MessageID returns the one-time challenge issued at connect time, with its
// angle brackets, as consumed by Authenticate.
func (s *Session) MessageID() string {
	return s.greeting.MessageID
}

// send writes one request line to the active output sink.
func (s *Session) send(ctx context.Context, command string, args ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.pipelining {
		s.conn.applyDeadline(ctx)
	}
	return protocol.WriteRequest(s.out, command, args...)
}

// run invokes the response handler now, or enqueues it when pipelining.
// Inside a pipelining scope the result is always nil; the real value is
// delivered through the scope's result list.
func (s *Session) run(handler func() (any, error)) (any, error) {
	if s.pipelining {
		s.queue = append(s.queue, handler)
		return nil, nil
	}
	return handler()
}

// readStart reads a status line and requires the given start code.
func (s *Session) readStart(code int) (*protocol.Response, error) {
	resp, err := protocol.ReadStatus(s.conn.Reader())
	if err != nil {
		return nil, err
	}
	if resp.Code != code {
		return nil, &protocol.Error{Kind: protocol.KindMalformedReply, Line: resp.Raw}
	}
	return resp, nil
}

// readListing consumes a listing response: start code, key/value body,
// final 250.
func (s *Session) readListing(startCode int) ([]MetaData, error) {
	if _, err := s.readStart(startCode); err != nil {
		return nil, err
	}
	lines, err := protocol.ReadBodyChecked(s.conn.Reader(), protocol.StatusOK)
	if err != nil {
		return nil, err
	}
	return parseListing(lines), nil
}

// readText consumes a free-text response: start code, body, final 250.
func (s *Session) readText(startCode int) (string, error) {
	if _, err := s.readStart(startCode); err != nil {
		return "", err
	}
	lines, err := protocol.ReadBodyChecked(s.conn.Reader(), protocol.StatusOK)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Databases lists the databases the server offers. An empty server-side
// catalog surfaces as a NoDatabases error, never as an empty list.
func (s *Session) Databases(ctx context.Context) ([]MetaData, error) {
	if err := s.send(ctx, protocol.CmdShowDB); err != nil {
		return nil, err
	}
	res, err := s.run(func() (any, error) {
		items, err := s.readListing(protocol.StatusDatabasesFollow)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil || res == nil {
		return nil, err
	}
	return res.([]MetaData), nil
}

// Strategies lists the match strategies the server offers. An empty catalog
// surfaces as a NoStrategies error, never as an empty list.
func (s *Session) Strategies(ctx context.Context) ([]MetaData, error) {
	if err := s.send(ctx, protocol.CmdShowStrat); err != nil {
		return nil, err
	}
	res, err := s.run(func() (any, error) {
		items, err := s.readListing(protocol.StatusStrategiesFollow)
		if err != nil {
			return nil, err
		}
		return items, nil
	})
	if err != nil || res == nil {
		return nil, err
	}
	return res.([]MetaData), nil
}

// Info returns the source/copyright text of one database.
func (s *Session) Info(ctx context.Context, database string) (string, error) {
	if err := s.send(ctx, protocol.CmdShowInfo, database); err != nil {
		return "", err
	}
	return s.runText(protocol.StatusDatabaseInfo)
}

// Help returns the server's command help text.
func (s *Session) Help(ctx context.Context) (string, error) {
	if err := s.send(ctx, protocol.CmdHelp); err != nil {
		return "", err
	}
	return s.runText(protocol.StatusHelpText)
}

// Server returns the server's self-description.
func (s *Session) Server(ctx context.Context) (string, error) {
	if err := s.send(ctx, protocol.CmdShowServer); err != nil {
		return "", err
	}
	return s.runText(protocol.StatusServerInfo)
}

func (s *Session) runText(startCode int) (string, error) {
	res, err := s.run(func() (any, error) {
		text, err := s.readText(startCode)
		if err != nil {
			return nil, err
		}
		return text, nil
	})
	if err != nil || res == nil {
		return "", err
	}
	return res.(string), nil
}

// Client identifies the calling program to the server. The identification
// text is quoted on the wire.
func (s *Session) Client(ctx context.Context, id string) error {
	if err := s.send(ctx, protocol.CmdClient, protocol.Quote(id)); err != nil {
		return err
	}
	_, err := s.run(func() (any, error) {
		return nil, protocol.ReadChecked(s.conn.Reader(), protocol.StatusOK)
	})
	return err
}

// SetClient is an assignment-style alias of Client for callers configuring
// a session; the context has no deadline.
func (s *Session) SetClient(id string) error {
	return s.Client(context.Background(), id)
}

// Status returns the raw text of the server's STATUS reply. The code of the
// reply is not checked.
func (s *Session) Status(ctx context.Context) (string, error) {
	if err := s.send(ctx, protocol.CmdStatus); err != nil {
		return "", err
	}
	res, err := s.run(func() (any, error) {
		resp, err := protocol.ReadStatus(s.conn.Reader())
		if err != nil {
			return nil, err
		}
		return resp.Text, nil
	})
	if err != nil || res == nil {
		return "", err
	}
	return res.(string), nil
}

// Authenticate performs AUTH with the digest scheme of RFC 2229 section
// 3.11: the MD5 of the greeting message id concatenated with the shared
// secret, sent as lowercase hex. The message id is consumed exactly once,
// at connect time. Authentication failures classify to the Auth error kind.
func (s *Session) Authenticate(ctx context.Context, user, secret string) error {
	sum := md5.Sum([]byte(s.greeting.MessageID + secret))
	digest := hex.EncodeToString(sum[:])

	if err := s.send(ctx, protocol.CmdAuth, user, digest); err != nil {
		return err
	}
	_, err := s.run(func() (any, error) {
		resp, err := protocol.ReadStatus(s.conn.Reader())
		if err != nil {
			return nil, err
		}
		if resp.Code != protocol.StatusAuthOK {
			return nil, &protocol.Error{Kind: protocol.KindMalformedReply, Line: resp.Raw}
		}
		return nil, nil
	})
	return err
}

// Match finds words matching the given word in a database using a strategy.
// The word is quoted on the wire; "*" searches all databases, "." uses the
// server's default strategy. Empty results surface as a NoMatch error.
func (s *Session) Match(ctx context.Context, word, strategy, database string) (Matches, error) {
	if err := s.send(ctx, protocol.CmdMatch, database, strategy, protocol.Quote(word)); err != nil {
		return nil, err
	}
	res, err := s.run(func() (any, error) {
		if _, err := s.readStart(protocol.StatusMatchesFound); err != nil {
			return nil, err
		}
		lines, err := protocol.ReadBodyChecked(s.conn.Reader(), protocol.StatusOK)
		if err != nil {
			return nil, err
		}
		return parseMatches(lines), nil
	})
	if err != nil || res == nil {
		return nil, err
	}
	return res.(Matches), nil
}

// Define retrieves the definitions of a word from a database; "*" searches
// all databases, "!" stops at the first database with a hit. The word is
// quoted on the wire. Empty results surface as a NoMatch error.
func (s *Session) Define(ctx context.Context, word, database string) ([]Definition, error) {
	if err := s.send(ctx, protocol.CmdDefine, database, protocol.Quote(word)); err != nil {
		return nil, err
	}
	res, err := s.run(func() (any, error) {
		defs, err := s.readDefinitions()
		if err != nil {
			return nil, err
		}
		return defs, nil
	})
	if err != nil || res == nil {
		return nil, err
	}
	return res.([]Definition), nil
}

// readDefinitions consumes a DEFINE response: the 150 start line, then one
// header + body per entry until the final 250.
func (s *Session) readDefinitions() ([]Definition, error) {
	if _, err := s.readStart(protocol.StatusDefinitionsFound); err != nil {
		return nil, err
	}

	var defs []Definition
	for {
		resp, err := protocol.ReadStatus(s.conn.Reader())
		if err != nil {
			return nil, err
		}
		if resp.Code == protocol.StatusOK {
			return defs, nil
		}

		// Entry header: word, database name, database description.
		words := protocol.Tokenize(resp.Text)
		if len(words) < 3 {
			return nil, &protocol.Error{Kind: protocol.KindMalformedReply, Line: resp.Raw}
		}
		body, err := protocol.ReadBody(s.conn.Reader())
		if err != nil {
			return nil, err
		}
		defs = append(defs, Definition{
			Word:        words[0],
			Database:    words[1],
			Description: words[2],
			Body:        body,
		})
	}
}

// Quit sends QUIT, checks the 221 acknowledgment, and closes the transport
// whether or not the acknowledgment was well-formed. Quit always talks to
// the connection directly; it is not meaningful inside a pipelining scope.
func (s *Session) Quit(ctx context.Context) error {
	defer s.conn.Close()

	if err := ctx.Err(); err != nil {
		return err
	}
	s.conn.applyDeadline(ctx)

	if err := protocol.WriteRequest(s.conn, protocol.CmdQuit); err != nil {
		return err
	}
	return protocol.ReadChecked(s.conn.Reader(), protocol.StatusClosing)
}

// Close releases the transport without the QUIT exchange. It is idempotent.
func (s *Session) Close() error {
	return s.conn.Close()
}
