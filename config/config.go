package config

import "time"

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}

	URIRequestLineSize struct {
		Default, Maximal int
	}
)

type (
	URI struct {
		// RequestLineSize limits how much data may be buffered while the request line isn't
		// complete yet. The Default value is the initial capacity of the read buffer.
		RequestLineSize URIRequestLineSize
	}

	Headers struct {
		// Number is responsible for headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
		// Space limits the amount of memory occupied by request headers, once they are copied
		// out of the read buffer.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal size of a body, that can be processed. Requests
		// declaring a bigger Content-Length are rejected before the body is read.
		MaxSize int64
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout controls the maximal lifetime of IDLE connections. If no data was
		// received in this period of time, it'll be closed.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}
)

// Config holds settings used across the connection layer, mainly restrictions, limitations
// and pre-allocations. The parsing core itself is configuration-free.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	URI     URI
	Headers Headers
	Body    Body
	NET     NET
}

// Default returns default config. Those are initially well-balanced, however maximal defaults
// are pretty permitting.
func Default() *Config {
	return &Config{
		URI: URI{
			RequestLineSize: URIRequestLineSize{
				Default: 2 * 1024,
				// allow at most 16kb of request line, which is effectively pretty much tolerant,
				// considering most web-entities limit it to 4-8kb.
				Maximal: 16 * 1024,
			},
		},
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				Maximal: 50,
			},
			Space: HeadersSpace{
				Default: 1 * 1024,  // 1kb for headers must be fairly enough in most cases.
				Maximal: 16 * 1024, // However, there also might be extremely long cookies.
			},
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
