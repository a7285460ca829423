package transport

import (
	"crypto/tls"
	"net"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/crypto/acme"
	"golang.org/x/crypto/acme/autocert"
)

var _ Transport = new(TLS)

// TLS is the TCP transport with connections wrapped into TLS. The handshake is done lazily,
// at the first read or write.
type TLS struct {
	cfg *tls.Config
	*TCP
}

// NewTLS returns a transport serving the given certificates.
func NewTLS(certs []tls.Certificate) *TLS {
	return newTLS(&tls.Config{
		Certificates: certs,
	})
}

// NewAutoTLS returns a transport obtaining certificates from Let's Encrypt on demand. If no
// domains are given, any requested host is served. Certificates are cached in the directory,
// unless it's empty.
func NewAutoTLS(cacheDir string, domains ...string) *TLS {
	m := &autocert.Manager{
		Prompt: autocert.AcceptTOS,
	}

	if len(domains) > 0 {
		m.HostPolicy = autocert.HostWhitelist(domains...)
	}

	if len(cacheDir) > 0 {
		m.Cache = autocert.DirCache(cacheDir)
	}

	return newTLS(&tls.Config{
		GetCertificate: m.GetCertificate,
		// the tls-alpn-01 challenge is answered during the handshake, so no plain HTTP
		// listener is required
		NextProtos: []string{acme.ALPNProto},
	})
}

func newTLS(cfg *tls.Config) *TLS {
	cfg.MinVersion = tls.VersionTLS12
	cfg.NextProtos = append([]string{"http/1.1"}, cfg.NextProtos...)

	return &TLS{
		cfg: cfg,
		TCP: NewTCP(),
	}
}

func (t *TLS) Bind(addr string) error {
	tcp, err := bindTCP(addr)
	if err != nil {
		return err
	}

	t.TCP = newTCP(tlsAdapter{
		TCPListener: tcp,
		tls:         tls.NewListener(tcp, t.cfg),
	})

	return nil
}

type tlsAdapter struct {
	*net.TCPListener
	tls net.Listener
}

func (t tlsAdapter) Accept() (net.Conn, error) {
	return t.tls.Accept()
}

// CacheDir returns the directory autocert certificates are conventionally cached in.
func CacheDir() string {
	const base = "golang-autocert"
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches", base)
	case "windows":
		for _, ev := range []string{"APPDATA", "CSIDL_APPDATA", "TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return filepath.Join(v, base)
			}
		}

		return filepath.Join(homeDir(), base)
	}

	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, base)
	}

	return filepath.Join(homeDir(), ".cache", base)
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}

	if h := os.Getenv("HOME"); h != "" {
		return h
	}

	return "/"
}
