package requestgen

import (
	"strconv"
	"strings"

	"github.com/indigo-web/h1stream/kv"
)

// Headers returns n headers, the last one being Host.
func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		hdrs.Add("some-random-header-name-nobody-cares-about"+strconv.Itoa(i), strings.Repeat("b", 100))
	}

	return hdrs.Add("Host", "localhost")
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for _, pair := range hdrs.Expose() {
		buff = append(buff, pair.Key+": "+pair.Value+"\r\n"...)
	}

	return buff
}

// Generate returns a complete GET request with the headers. The uri must not start
// with a slash.
func Generate(uri string, hdrs *kv.Storage) (request []byte) {
	request = append(request, "GET /"+uri+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)

	return append(request, '\r', '\n')
}
