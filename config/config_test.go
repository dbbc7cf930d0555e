package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Positive(t, cfg.NET.ReadBufferSize)
	require.Positive(t, cfg.NET.ReadTimeout)
	require.Positive(t, cfg.HTTP.HeadersPrealloc)
	require.Positive(t, cfg.HTTP.ResponseBuffSize)
}
