package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CodeOf returns the code carried by the error, or InternalServerError if there's no
// HTTPError in its chain.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}

// Parser errors. Every one of them means the request is malformed, therefore all of them
// share the same code.
var (
	ErrBadRequest           = NewError(BadRequest, "bad request")
	ErrMethodNotImplemented = NewError(BadRequest, "request method is not supported")
	ErrUnsupportedProtocol  = NewError(BadRequest, "protocol is not supported")
	ErrBadURL               = NewError(BadRequest, "request URL must be an absolute path")
	ErrBadLineEnding        = NewError(BadRequest, "CR must be followed by LF")
	ErrBadHeader            = NewError(BadRequest, "malformed header line")
)

// Connection errors.
var (
	ErrBadContentLength     = NewError(BadRequest, "invalid Content-Length value")
	ErrURITooLong           = NewError(RequestURITooLong, "request line is too long")
	ErrHeaderFieldsTooLarge = NewError(RequestHeaderFieldsTooLarge, "too large headers section")
	ErrTooManyHeaders       = NewError(RequestHeaderFieldsTooLarge, "too many headers")
	ErrBodyTooLarge         = NewError(RequestEntityTooLarge, "request body is too large")
	ErrUnsupportedEncoding  = NewError(NotImplemented, "transfer codings are not supported")
)
