package dict

import (
	"bytes"
	"context"
	"errors"
)

var ErrNestedPipeline = errors.New("dict: pipelining scopes do not nest")

// Pipeline batches every request issued inside fn into a single transport
// write. Request lines are staged in an in-memory buffer while their
// response handlers are queued; when fn returns, the staged bytes are
// written to the connection in one operation and the handlers are replayed
// in request order, each consuming its own response from the stream. The
// non-nil result of each handler is appended, in order, to the returned
// list.
//
// The output sink and queue are restored on every exit path, normal or
// failing. Replay stops at the first handler failure; results gathered
// before the failure are returned alongside the error, and the caller
// should treat the scope as failed rather than partially succeeded.
//
// Correct pairing of batched requests with sequentially consumed responses
// relies on the server answering in strict FIFO order over one connection,
// which the protocol guarantees.
func (s *Session) Pipeline(ctx context.Context, fn func() error) (results []any, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pipelining {
		return nil, ErrNestedPipeline
	}

	staging := &bytes.Buffer{}
	s.out = staging
	s.pipelining = true
	s.queue = nil

	defer func() {
		s.out = s.conn
		s.pipelining = false
		s.queue = nil
	}()

	if err := fn(); err != nil {
		return nil, err
	}

	s.conn.applyDeadline(ctx)
	if staging.Len() > 0 {
		if _, err := s.conn.Write(staging.Bytes()); err != nil {
			return nil, err
		}
	}

	for _, handle := range s.queue {
		res, err := handle()
		if err != nil {
			return results, err
		}
		if res != nil {
			results = append(results, res)
		}
	}
	return results, nil
}
