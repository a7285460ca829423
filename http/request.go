package http

import (
	"io"
	"net"
	"strings"

	"github.com/indigo-web/h1stream/http/method"
	"github.com/indigo-web/h1stream/http/proto"
	"github.com/indigo-web/h1stream/kv"
	"github.com/indigo-web/utils/strcomp"
	json "github.com/json-iterator/go"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents HTTP request. Unlike the parser state, it owns all of its data, so
// it stays valid after the read buffer was reused. However, the connection layer reuses
// the Request itself, so it's valid only until the next request is read.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Version is the protocol version met in the request line.
	Version proto.Version
	// RawURL is the URL token exactly as it was received.
	RawURL string
	// Path is the absolute path, not decoded.
	Path string
	// Query is the raw query string without the leading question mark.
	Query string
	// Ext is the extension of the last path segment, which may also be a directory
	// containing a dot. Telling them apart is up to the request handler.
	Ext string
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	Headers Headers
	// ContentLength is the declared length of the body. Zero if no Content-Length
	// header was presented.
	ContentLength int64
	// Body is the whole request body.
	Body []byte
	// Remote holds the remote address. Please note that this is generally not a good parameter to identify
	// a user, because there might be proxies in the middle.
	Remote net.Addr
}

func NewRequest(headers Headers, remote net.Addr) *Request {
	return &Request{
		Method:  method.Unknown,
		Version: proto.HTTP11,
		Headers: headers,
		Remote:  remote,
	}
}

// KeepAlive tells whether the connection may serve further requests after this one.
func (r *Request) KeepAlive() bool {
	connection, found := r.Headers.Get("connection")
	if !found {
		return r.Version.KeepAlive()
	}

	if r.Version.KeepAlive() {
		return !strcomp.EqualFold(connection, "close")
	}

	return strcomp.EqualFold(connection, "keep-alive")
}

// JSON convoys the request's body to a json unmarshaller.
func (r *Request) JSON(model any) error {
	if len(r.Body) == 0 {
		return io.EOF
	}

	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

type dumpedRequest struct {
	Method        string     `json:"method"`
	Version       string     `json:"version"`
	URL           string     `json:"url"`
	Path          string     `json:"path"`
	Query         string     `json:"query,omitempty"`
	Ext           string     `json:"ext,omitempty"`
	Headers       [][]string `json:"headers"`
	ContentLength int64      `json:"content_length"`
	Body          string     `json:"body,omitempty"`
	JSON          any        `json:"json,omitempty"`
}

// Dump writes the request as a single line of JSON. A JSON body is embedded as is, under
// the "json" key. Any other body, as well as a malformed JSON one, goes as a string.
func (r *Request) Dump(w io.Writer) error {
	pairs := r.Headers.Expose()
	headers := make([][]string, 0, len(pairs))
	for _, pair := range pairs {
		headers = append(headers, []string{pair.Key, pair.Value})
	}

	dumped := dumpedRequest{
		Method:        r.Method.String(),
		Version:       r.Version.String(),
		URL:           r.RawURL,
		Path:          r.Path,
		Query:         r.Query,
		Ext:           r.Ext,
		Headers:       headers,
		ContentLength: r.ContentLength,
	}

	var body any
	if r.isJSON() && r.JSON(&body) == nil {
		dumped.JSON = body
	} else {
		dumped.Body = string(r.Body)
	}

	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(dumped)
	stream.WriteRaw("\n")
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}

func (r *Request) isJSON() bool {
	contentType := r.Headers.Value("content-type")
	if semicolon := strings.IndexByte(contentType, ';'); semicolon != -1 {
		contentType = contentType[:semicolon]
	}

	return strcomp.EqualFold(strings.TrimSpace(contentType), "application/json")
}

// Reset clears the request, so it can be reused for the next one.
func (r *Request) Reset() {
	r.Method = method.Unknown
	r.Version = proto.HTTP11
	r.RawURL, r.Path, r.Query, r.Ext = "", "", "", ""
	r.Headers.Clear()
	r.ContentLength = 0
	r.Body = r.Body[:0]
}
