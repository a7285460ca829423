package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/h1stream/transport"
)

var _ transport.Client = new(Client)

// Client returns the data it was initialised with, a piece per read. Once the pieces are
// over, it either starts over again or returns io.EOF, if set to shoot once. It also tracks
// all the written data, making it thereby a universal mock suitable for most of the tests.
type Client struct {
	closed     bool
	once       bool
	journaling bool
	pointer    int
	err        error
	written    []byte
	data       [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		pointer:    0,
		journaling: true,
	}
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if c.err != nil {
			return nil, c.err
		}

		if c.once {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// Once makes the client return io.EOF after all the pieces were read.
func (c *Client) Once() *Client {
	c.once = true
	return c
}

// FailWith makes the client return the error after all the pieces were read.
func (c *Client) FailWith(err error) *Client {
	c.err = err
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}

func (c *Client) Closed() bool {
	return c.closed
}
