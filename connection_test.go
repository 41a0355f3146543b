package dict

import (
	"context"
	"testing"
	"time"

	"github.com/pior/dict/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestConnectionWriteAfterClose(t *testing.T) {
	mock := testutils.NewConnectionMock()
	conn := NewConnection(mock)

	require.NoError(t, conn.Close())

	_, err := conn.Write([]byte("DEFINE * \"word\"\r\n"))
	require.ErrorIs(t, err, ErrConnectionClosed)
}

func TestConnectionCloseIdempotent(t *testing.T) {
	mock := testutils.NewConnectionMock()
	conn := NewConnection(mock)

	require.False(t, conn.IsClosed())
	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())
	require.True(t, conn.IsClosed())
	require.True(t, mock.Closed())
}

func TestConnectionDeadlineAfterClose(t *testing.T) {
	mock := testutils.NewConnectionMock()
	conn := NewConnection(mock)
	require.NoError(t, conn.Close())

	// Must not touch the closed connection.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	conn.applyDeadline(ctx)
}
