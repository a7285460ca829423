package transport

import (
	"net"
	"sync/atomic"

	"github.com/indigo-web/h1stream/config"
)

// Supervisor runs multiple transports at once. If any of them fails, the rest are stopped
// as well.
type Supervisor struct {
	stopped *atomic.Bool
	ts      []boundTransport
	stopch  chan struct{}
	done    chan struct{}
}

func NewSupervisor() *Supervisor {
	return &Supervisor{
		stopped: new(atomic.Bool),
		stopch:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Add binds the transport to the address. If binding fails, all the previously added
// transports are closed.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	if err := transport.Bind(addr); err != nil {
		s.close()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Addrs returns addresses of all the bound transports in the order they were added.
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(s.ts))
	for _, t := range s.ts {
		addrs = append(addrs, t.t.Addr())
	}

	return addrs
}

// Run blocks until either any transport fails or Stop is called. In both cases, it waits
// until all the connections are done. It must be called at most once.
func (s *Supervisor) Run(cfg config.NET) error {
	defer close(s.done)

	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport) {
			errch <- t.t.Listen(cfg, t.cb)
		}(t)
	}

	select {
	case err := <-errch:
		s.stop()
		drain(errch, len(s.ts)-1)

		return err
	case <-s.stopch:
		s.stop()
		drain(errch, len(s.ts))
		s.stopch <- struct{}{}

		return nil
	}
}

// Stop makes Run return and blocks until it does. If Run is already returning on its own,
// Stop just waits for it.
func (s *Supervisor) Stop() {
	select {
	case s.stopch <- struct{}{}:
		<-s.stopch
	case <-s.done:
	}
}

func (s *Supervisor) stop() {
	if s.stopped.Load() {
		return
	}

	s.stopped.Store(true)

	for _, t := range s.ts {
		t.t.Stop()
	}

	for _, t := range s.ts {
		t.t.Wait()
		t.t.Close()
	}
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for i := 0; i < n; i++ {
		<-ch
	}
}
