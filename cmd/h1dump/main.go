package main

import (
	"crypto/tls"
	"errors"
	"flag"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/h1stream/config"
	"github.com/indigo-web/h1stream/http"
	"github.com/indigo-web/h1stream/internal/address"
	"github.com/indigo-web/h1stream/transport"
	"github.com/indigo-web/h1stream/transport/http1"
)

type options struct {
	listen   string
	tls      bool
	cert     string
	key      string
	autocert string
	cacheDir string
}

// h1dump parses HTTP/1.x requests and prints each of them as a line of JSON. Requests are
// read from stdin, unless addresses to listen on are given.
func main() {
	var opts options
	flag.StringVar(&opts.listen, "listen", "", "comma-separated addresses to accept connections on, e.g. :8080,localhost:8443")
	flag.BoolVar(&opts.tls, "tls", false, "serve TLS with a self-signed certificate, unless -cert and -key are set")
	flag.StringVar(&opts.cert, "cert", "", "certificate file to serve TLS with")
	flag.StringVar(&opts.key, "key", "", "private key file of the certificate")
	flag.StringVar(&opts.autocert, "autocert", "", "comma-separated domains to obtain certificates for from Let's Encrypt")
	flag.StringVar(&opts.cacheDir, "cache", transport.CacheDir(), "directory to cache obtained certificates in")
	flag.Parse()

	cfg := config.Default()
	dump := newDumper(os.Stdout)

	if len(opts.listen) == 0 {
		client := newReaderClient(os.Stdin, io.Discard, cfg.NET.ReadBufferSize)
		if err := http1.Serve(cfg, client, dump); err != nil {
			log.Fatalf("h1dump: %s", err)
		}

		return
	}

	if err := serve(cfg, opts, dump); err != nil {
		log.Fatalf("h1dump: %s", err)
	}
}

func serve(cfg *config.Config, opts options, handler http1.Handler) error {
	addrs := address.Split(opts.listen)
	if len(addrs) == 0 {
		return errors.New("no addresses to listen on")
	}

	newTransport, err := transportFactory(opts, addrs)
	if err != nil {
		return err
	}

	sup := transport.NewSupervisor()
	for _, addr := range addrs {
		if err = sup.Add(addr, newTransport(), connHandler(cfg, handler)); err != nil {
			return err
		}
	}

	for _, addr := range sup.Addrs() {
		log.Printf("h1dump: listening on %s", addr)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Print("h1dump: interrupted, waiting for connections to be done")
		sup.Stop()
	}()

	return sup.Run(cfg.NET)
}

func transportFactory(opts options, addrs []string) (func() transport.Transport, error) {
	switch {
	case len(opts.autocert) > 0:
		domains := strings.Split(opts.autocert, ",")
		return func() transport.Transport {
			return transport.NewAutoTLS(opts.cacheDir, domains...)
		}, nil
	case len(opts.cert) > 0 || len(opts.key) > 0:
		cert, err := tls.LoadX509KeyPair(opts.cert, opts.key)
		if err != nil {
			return nil, err
		}

		return func() transport.Transport {
			return transport.NewTLS([]tls.Certificate{cert})
		}, nil
	case opts.tls:
		hosts := []string{"localhost", "127.0.0.1", "::1"}
		for _, addr := range addrs {
			if host, _, err := net.SplitHostPort(addr); err == nil && !address.IsLocalhost(host) {
				hosts = append(hosts, host)
			}
		}

		cert, err := transport.SelfSigned(hosts...)
		if err != nil {
			return nil, err
		}

		return func() transport.Transport {
			return transport.NewTLS([]tls.Certificate{cert})
		}, nil
	default:
		return func() transport.Transport {
			return transport.NewTCP()
		}, nil
	}
}

func connHandler(cfg *config.Config, handler http1.Handler) func(net.Conn) {
	return func(conn net.Conn) {
		id := uniuri.NewLen(8)
		log.Printf("[%s] connected: %s", id, conn.RemoteAddr())

		client := transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize))
		if err := http1.Serve(cfg, client, handler); err != nil {
			log.Printf("[%s] closing: %s", id, err)
			return
		}

		log.Printf("[%s] closed", id)
	}
}

// newDumper returns a handler writing requests to w. Connections are served concurrently,
// so the writes are serialized.
func newDumper(w io.Writer) http1.Handler {
	var mu sync.Mutex

	return func(request *http.Request) error {
		mu.Lock()
		defer mu.Unlock()

		return request.Dump(w)
	}
}

// readerClient exposes a plain stream, like stdin, as a client.
type readerClient struct {
	r    io.Reader
	w    io.Writer
	buff []byte
}

func newReaderClient(r io.Reader, w io.Writer, buffSize int) *readerClient {
	return &readerClient{
		r:    r,
		w:    w,
		buff: make([]byte, buffSize),
	}
}

func (r *readerClient) Read() ([]byte, error) {
	n, err := r.r.Read(r.buff)
	if n > 0 && errors.Is(err, io.EOF) {
		err = nil
	}

	return r.buff[:n], err
}

func (r *readerClient) Write(b []byte) (int, error) {
	return r.w.Write(b)
}

func (*readerClient) Remote() net.Addr {
	return nil
}

func (*readerClient) Close() error {
	return nil
}
