package transport

import (
	"net"
	"time"

	"github.com/indigo-web/h1stream/internal/timer"
)

// Client is a single connection as seen by the connection layer. Read returns a piece of
// freshly received data, which is valid only until the next Read call.
type Client interface {
	Read() ([]byte, error)
	Write([]byte) (int, error)
	Remote() net.Addr
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read reads data into the internal buffer and returns a piece of it back. Timeouts are also
// handled automatically, though the deadline is as coarse as the timer is.
func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(timer.Now().Add(c.timeout)); err != nil {
		return nil, err
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

// Write writes data into the underlying connection.
func (c *client) Write(b []byte) (int, error) {
	return c.conn.Write(b)
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
