package http1

import (
	"math"

	"github.com/indigo-web/h1stream/http"
	"github.com/indigo-web/h1stream/http/status"
)

// contentLength extracts the body length from the headers. Repeated Content-Length headers
// are tolerated only if they all agree.
func contentLength(headers http.Headers) (length int64, err error) {
	values := headers.Values("content-length")
	if len(values) == 0 {
		return 0, nil
	}

	length, err = parseContentLength(values[0])
	if err != nil {
		return 0, err
	}

	for _, value := range values[1:] {
		another, err := parseContentLength(value)
		if err != nil || another != length {
			return 0, status.ErrBadContentLength
		}
	}

	return length, nil
}

// parseContentLength parses a decimal value. Header values may end with whitespaces, as
// they aren't trimmed by the parser.
func parseContentLength(value string) (length int64, err error) {
	end := len(value)
	for end > 0 && (value[end-1] == ' ' || value[end-1] == '\t') {
		end--
	}

	if end == 0 {
		return 0, status.ErrBadContentLength
	}

	for _, char := range []byte(value[:end]) {
		if char < '0' || char > '9' {
			return 0, status.ErrBadContentLength
		}

		digit := int64(char - '0')
		if length > (math.MaxInt64-digit)/10 {
			return 0, status.ErrBadContentLength
		}

		length = length*10 + digit
	}

	return length, nil
}
