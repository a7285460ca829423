package status

type (
	Code   uint16
	Status string
)

// HTTP status codes that the connection layer may respond with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest                  Code = 400 // RFC 9110, 15.5.1
	RequestTimeout              Code = 408 // RFC 9110, 15.5.9
	RequestEntityTooLarge       Code = 413 // RFC 9110, 15.5.14
	RequestURITooLong           Code = 414 // RFC 9110, 15.5.15
	RequestHeaderFieldsTooLarge Code = 431 // RFC 6585, 5

	InternalServerError     Code = 500 // RFC 9110, 15.6.1
	NotImplemented          Code = 501 // RFC 9110, 15.6.2
	HTTPVersionNotSupported Code = 505 // RFC 9110, 15.6.6
)

// KnownCodes lists every code Text has a reason phrase for.
var KnownCodes = []Code{
	OK, BadRequest, RequestTimeout, RequestEntityTooLarge, RequestURITooLong,
	RequestHeaderFieldsTooLarge, InternalServerError, NotImplemented, HTTPVersionNotSupported,
}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case RequestTimeout:
		return "Request Timeout"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request URI Too Long"
	case RequestHeaderFieldsTooLarge:
		return "Request Header Fields Too Large"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return ""
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	var buff [5]byte
	i := len(buff)
	for n := code; ; n /= 10 {
		i--
		buff[i] = byte('0' + n%10)
		if n < 10 {
			break
		}
	}

	return string(buff[i:])
}
