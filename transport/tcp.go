package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/h1stream/config"
)

var _ Transport = new(TCP)

// listener must support deadlines, as otherwise the accept loop couldn't be interrupted.
type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return newTCP(nil)
}

func newTCP(l listener) *TCP {
	return &TCP{
		l:    l,
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) error {
	l, err := bindTCP(addr)
	if err != nil {
		return err
	}

	t.l = l
	return nil
}

// Addr returns the address the listener is actually bound to, which is useful when binding
// to the port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen accepts connections until Stop is called, serving each one by the callback in a
// separate goroutine. Connections are closed automatically as the callback returns.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			cb(conn)
			_ = conn.Close()
			t.wg.Done()
		}(conn)
	}

	return nil
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

func (t *TCP) Wait() {
	t.wg.Wait()
}
