package transport

import (
	"net"

	"github.com/indigo-web/h1stream/config"
)

type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
