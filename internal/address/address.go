package address

import (
	"strings"
)

const DefaultHost = "0.0.0.0"

// Normalize completes the address with the default host, if only the port is presented.
func Normalize(addr string) string {
	if len(stripPort(addr)) == 0 {
		return DefaultHost + addr
	}

	return addr
}

// Split splits a comma-separated list of addresses, normalizing each of them. Empty
// entries are skipped.
func Split(addrs string) (normalized []string) {
	for _, addr := range strings.Split(addrs, ",") {
		if addr = strings.TrimSpace(addr); len(addr) > 0 {
			normalized = append(normalized, Normalize(addr))
		}
	}

	return normalized
}

// IsLocalhost reports whether the address refers to the loopback by name.
func IsLocalhost(addr string) bool {
	return strings.EqualFold(stripPort(addr), "localhost")
}

func stripPort(addr string) string {
	colon := strings.LastIndexByte(addr, ':')
	if colon != -1 {
		return addr[:colon]
	}

	return addr
}
