package http1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wildfiremedia/engine/http"
	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/transport/dummy"
)

func serialize(t *testing.T, response *http.Response) string {
	client, conn := dummy.NewClient()
	serializer := NewSerializer(make([]byte, 0, 128))
	require.NoError(t, serializer.Write(response, client))

	return string(conn.Written())
}

func TestSerializer(t *testing.T) {
	t.Run("default response", func(t *testing.T) {
		wanted := "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"
		require.Equal(t, wanted, serialize(t, http.NewResponse()))
	})

	t.Run("code, headers and body", func(t *testing.T) {
		response := http.NewResponse().
			Code(status.NotFound).
			Header("Server", "engine").
			String("not found")
		wanted := "HTTP/1.1 404 Not Found\r\nServer: engine\r\nContent-Length: 9\r\n\r\nnot found"
		require.Equal(t, wanted, serialize(t, response))
	})

	t.Run("custom reason", func(t *testing.T) {
		response := http.NewResponse().Code(status.Teapot).Reason("Have Some Tea")
		wanted := "HTTP/1.1 418 Have Some Tea\r\nContent-Length: 0\r\n\r\n"
		require.Equal(t, wanted, serialize(t, response))
	})

	t.Run("framing headers are not the responder's", func(t *testing.T) {
		response := http.NewResponse().
			Header("Content-Length", "100500").
			Header("Transfer-Encoding", "gzip").
			String("hi")
		wanted := "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi"
		require.Equal(t, wanted, serialize(t, response))
	})

	t.Run("streamed body goes out chunked", func(t *testing.T) {
		response := http.NewResponse().Stream(strings.NewReader("hello, world"))
		raw := serialize(t, response)
		require.Contains(t, raw, "Transfer-Encoding: chunked\r\n\r\n")

		// whatever the stream produced must survive a parse of the very
		// same message
		client, _ := dummy.NewClient([]byte(raw))
		parsed, err := ParseResponse(client, headersPrealloc)
		require.NoError(t, err)
		require.Equal(t, "hello, world", string(parsed.Reveal().Body.Buffered()))
	})

	t.Run("buffer is reused between responses", func(t *testing.T) {
		client, conn := dummy.NewClient()
		serializer := NewSerializer(make([]byte, 0, 128))
		require.NoError(t, serializer.Write(http.NewResponse().String("first"), client))
		require.NoError(t, serializer.Write(http.NewResponse().String("second"), client))

		wanted := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nfirst" +
			"HTTP/1.1 200 OK\r\nContent-Length: 6\r\n\r\nsecond"
		require.Equal(t, wanted, string(conn.Written()))
	})
}
