package transport_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wildfiremedia/engine/transport/dummy"
)

func TestClientRead(t *testing.T) {
	t.Run("bytes across blocks", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("ab"), []byte("c"))

		for _, want := range []byte("abc") {
			b, err := client.ReadByte()
			require.NoError(t, err)
			require.Equal(t, want, b)
		}

		_, err := client.ReadByte()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("read up to n", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("hello"), []byte("world"))

		piece, err := client.Read(3)
		require.NoError(t, err)
		require.Equal(t, "hel", string(piece))

		// the rest of the current block, even though more is asked for
		piece, err = client.Read(100)
		require.NoError(t, err)
		require.Equal(t, "lo", string(piece))

		piece, err = client.Read(100)
		require.NoError(t, err)
		require.Equal(t, "world", string(piece))

		_, err = client.Read(1)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestClientReadLine(t *testing.T) {
	t.Run("crlf terminated", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("hello\r\nworld\r\n"))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "hello", string(line))

		line, err = client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "world", string(line))
	})

	t.Run("terminator split across blocks", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("hel"), []byte("lo\r"), []byte("\nrest\r\n"))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "hello", string(line))

		line, err = client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "rest", string(line))
	})

	t.Run("bare lf is not a terminator", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("hel\nlo\r\n"))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "hello", string(line))
	})

	t.Run("control bytes are dropped", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("a\tb\x00c\rd\r\n"))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "abcd", string(line))
	})

	t.Run("stream end without terminator", func(t *testing.T) {
		client, _ := dummy.NewClient([]byte("partial"))

		line, err := client.ReadLine()
		require.NoError(t, err)
		require.Equal(t, "partial", string(line))

		line, err = client.ReadLine()
		require.NoError(t, err)
		require.Empty(t, line)
	})
}

func TestClientWrite(t *testing.T) {
	t.Run("write batches until flush", func(t *testing.T) {
		client, conn := dummy.NewClient()
		require.NoError(t, client.Write([]byte("hello, ")))
		require.NoError(t, client.Write([]byte("world")))
		require.Empty(t, conn.Written())

		require.NoError(t, client.Flush())
		require.Equal(t, "hello, world", string(conn.Written()))

		// an empty buffer flush must not touch the conn
		require.NoError(t, client.Flush())
		require.Equal(t, "hello, world", string(conn.Written()))
	})
}

func TestClientClose(t *testing.T) {
	client, conn := dummy.NewClient()
	require.False(t, client.Closed())
	require.NoError(t, client.Close())
	require.True(t, client.Closed())
	require.True(t, conn.IsClosed())
}
