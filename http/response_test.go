package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wildfiremedia/engine/http/status"
	"github.com/wildfiremedia/engine/transport"
)

func TestResponseBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Reason)
		require.Zero(t, fields.Headers.Len())
		require.False(t, fields.Body.IsStream())
		require.Empty(t, fields.Body.Buffered())
	})

	t.Run("header replaces on repeat", func(t *testing.T) {
		fields := NewResponse().
			Header("Server", "one").
			Header("server", "two").
			Reveal()
		require.Equal(t, "two", fields.Headers.Value("Server"))
	})

	t.Run("string body", func(t *testing.T) {
		fields := NewResponse().String("hello").Reveal()
		require.Equal(t, "hello", string(fields.Body.Buffered()))
	})

	t.Run("stream body", func(t *testing.T) {
		fields := NewResponse().Stream(strings.NewReader("hello")).Reveal()
		require.True(t, fields.Body.IsStream())
		require.NotNil(t, fields.Body.Stream())
	})

	t.Run("json body", func(t *testing.T) {
		response := NewResponse().JSON(map[string]int{"answer": 42})
		fields := response.Reveal()
		require.Equal(t, `{"answer":42}`, string(fields.Body.Buffered()))
		require.Equal(t, "application/json", fields.Headers.Value("content-type"))
	})

	t.Run("hook", func(t *testing.T) {
		require.Nil(t, NewResponse().Reveal().Hook)
		require.NotNil(t, NewResponse().Hook(func(transport.Client) {}).Reveal().Hook)
	})
}
