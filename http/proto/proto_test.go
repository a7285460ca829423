package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		require.Equal(t, "HTTP/1.1", HTTP11.String())
		require.Equal(t, "HTTP/1.0", HTTP10.String())
		require.Equal(t, "HTTP/0.9", HTTP09.String())
		require.Equal(t, "HTTP/1.10", Version{Major: 1, Minor: 10}.String())
		require.Equal(t, "HTTP/0.255", Version{Minor: 255}.String())
	})

	t.Run("keep-alive", func(t *testing.T) {
		require.True(t, HTTP11.KeepAlive())
		require.False(t, HTTP10.KeepAlive())
		require.False(t, HTTP09.KeepAlive())
	})
}
