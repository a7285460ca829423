package transport

import (
	"net"
	"testing"
	"time"

	"github.com/indigo-web/h1stream/config"
	"github.com/stretchr/testify/require"
)

func TestTCP(t *testing.T) {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 10 * time.Millisecond

	tcp := NewTCP()
	require.NoError(t, tcp.Bind("127.0.0.1:0"))
	defer tcp.Close()

	received := make(chan string, 1)
	stopped := make(chan error, 1)
	go func() {
		stopped <- tcp.Listen(cfg, func(conn net.Conn) {
			client := NewClient(conn, time.Second, make([]byte, 64))
			data, err := client.Read()
			if err != nil {
				received <- err.Error()
				return
			}

			received <- string(data)
			_, _ = client.Write([]byte("pong"))
		})
	}()

	conn, err := net.Dial("tcp", tcp.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("ping"))
	require.NoError(t, err)
	require.Equal(t, "ping", <-received)

	buff := make([]byte, 4)
	_, err = conn.Read(buff)
	require.NoError(t, err)
	require.Equal(t, "pong", string(buff))

	tcp.Stop()
	require.NoError(t, <-stopped)
	tcp.Wait()
}

func TestClient(t *testing.T) {
	t.Run("read timeout", func(t *testing.T) {
		server, peer := net.Pipe()
		defer peer.Close()

		client := NewClient(server, 10*time.Millisecond, make([]byte, 16))
		_, err := client.Read()
		require.Error(t, err)

		netErr, ok := err.(net.Error)
		require.True(t, ok)
		require.True(t, netErr.Timeout())
		require.NoError(t, client.Close())
	})

	t.Run("read reuses the buffer", func(t *testing.T) {
		server, peer := net.Pipe()
		defer peer.Close()

		client := NewClient(server, time.Second, make([]byte, 16))
		require.Equal(t, peer.LocalAddr(), client.Remote())

		go func() {
			_, _ = peer.Write([]byte("first"))
			_, _ = peer.Write([]byte("2nd"))
		}()

		first, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "first", string(first))

		second, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "2nd", string(second))
		require.Equal(t, "2ndst", string(first))
	})
}
