package http1

import (
	"bytes"

	"github.com/indigo-web/h1stream/http/span"
	"github.com/indigo-web/h1stream/http/status"
)

// parseURL classifies the URL token data[begin:end]. Only the absolute path form is
// supported. The extension is picked from the last path segment only, so /a.b/c has none.
// Whether the path is actually a directory is up to whoever serves the request.
func parseURL(data []byte, begin, end int, u *URL) error {
	if begin >= end || data[begin] != '/' {
		return status.ErrBadURL
	}

	u.Raw = span.New(begin, end)
	pathEnd := end
	u.Query = span.New(end, end)

	if q := bytes.IndexByte(data[begin:end], '?'); q != -1 {
		pathEnd = begin + q
		u.Query = span.New(pathEnd+1, end)
	}

	u.Path = span.New(begin, pathEnd)
	u.Ext = span.New(pathEnd, pathEnd)

	for i := pathEnd - 1; i > begin; i-- {
		switch data[i] {
		case '.':
			u.Ext = span.New(i+1, pathEnd)
			return nil
		case '/':
			return nil
		}
	}

	return nil
}
