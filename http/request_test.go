package http

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wildfiremedia/engine/http/method"
	"github.com/wildfiremedia/engine/http/proto"
	"github.com/wildfiremedia/engine/kv"
)

func request(protocol proto.Protocol, headers Headers) *Request {
	return NewRequest(method.GET, "/", protocol, headers, nil, nil)
}

func TestKeepAlive(t *testing.T) {
	t.Run("http/1.1 defaults to keep-alive", func(t *testing.T) {
		require.True(t, request(proto.HTTP11, kv.New()).KeepAlive())
	})

	t.Run("http/1.0 defaults to close", func(t *testing.T) {
		require.False(t, request(proto.HTTP10, kv.New()).KeepAlive())
	})

	t.Run("explicit close wins", func(t *testing.T) {
		headers := kv.New().Set("Connection", "close")
		require.False(t, request(proto.HTTP11, headers).KeepAlive())
	})

	t.Run("explicit keep-alive wins", func(t *testing.T) {
		headers := kv.New().Set("Connection", "keep-alive")
		require.True(t, request(proto.HTTP10, headers).KeepAlive())
	})

	t.Run("token match is case-insensitive", func(t *testing.T) {
		headers := kv.New().Set("Connection", "Close")
		require.False(t, request(proto.HTTP11, headers).KeepAlive())
	})

	t.Run("token must be a list member, not a substring", func(t *testing.T) {
		headers := kv.New().Set("Connection", "keep-alive, upgrade")
		require.True(t, request(proto.HTTP10, headers).KeepAlive())

		headers = kv.New().Set("Connection", "discloseful")
		require.True(t, request(proto.HTTP11, headers).KeepAlive())
	})
}
