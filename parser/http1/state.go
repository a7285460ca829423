package http1

import (
	"github.com/indigo-web/h1stream/http/method"
	"github.com/indigo-web/h1stream/http/proto"
	"github.com/indigo-web/h1stream/http/span"
	"github.com/indigo-web/h1stream/parser"
)

// Phase is the common signature of every parsing phase: the request line, a single header
// line and the body. The data is the whole valid content of the read buffer, so len(data)
// is the end of the valid data. Parsing resumes at State.Cursor.
type Phase func(data []byte, s *State) (parser.Result, error)

var (
	_ Phase = ParseRequestLine
	_ Phase = ParseHeaderLine
	_ Phase = ReadIdentityBody
)

// URL holds the recognized parts of the request URL. All of them are spans into the
// read buffer.
type URL struct {
	// Raw is the whole URL token as it was met in the request line.
	Raw span.Span
	// Path is the absolute path, excluding the query string.
	Path span.Span
	// Query is the query string without the leading '?'. If there's no query, it's an
	// empty span positioned at the token's end.
	Query span.Span
	// Ext is whatever follows the last dot in the last path segment. It's empty if
	// there's no dot there.
	Ext span.Span
}

// State is the parsing state of a single connection. It's shared by all the phases and
// survives between calls, so parsing may stop at any byte and resume later on the same
// buffer extended by newly received data.
//
// Every span refers to the buffer passed into the phases. Spans are invalidated as soon
// as the buffer's content is moved or overwritten, which must therefore never happen
// while a request is being parsed. The header slot (HeaderName and HeaderValue) is even
// more short-lived: it's overwritten by every ParseHeaderLine call, so the caller must
// copy it out before parsing the next line.
type State struct {
	// Cursor is the offset where the next call resumes. It never decreases except when
	// explicitly rebased via Shift.
	Cursor  int
	Method  method.Method
	Version proto.Version
	URL     URL

	HeaderName  span.Span
	HeaderValue span.Span
	NumHeaders  int

	// ContentLength must be set by the caller after the headers are parsed, before
	// reading the body.
	ContentLength int64
	BodyReceived  int64
	// Body is the piece of body consumed by the latest ReadIdentityBody call.
	Body span.Span

	state       parserState
	isBlankLine bool
	methodBegin int
	urlBegin    int
	lineBegin   int
	colon       int
	valueBegin  int
	valueEnd    int
}

func NewState() *State {
	return &State{state: eRequestLineBegin}
}

// Reset prepares the state for the next request. The cursor is kept, as the next request
// (if pipelined) starts exactly where the previous one ended.
func (s *State) Reset() {
	*s = State{
		Cursor: s.Cursor,
		state:  eRequestLineBegin,
	}
}

// Shift rebases the cursor after the caller dropped the first n bytes of the buffer. It's
// allowed only between requests (right after Reset), as no spans are live then.
func (s *State) Shift(n int) {
	if s.state != eRequestLineBegin {
		panic("BUG: shifting the buffer in the middle of a request")
	}

	if n > s.Cursor {
		panic("BUG: shifting beyond the cursor")
	}

	s.Cursor -= n
}

// Header resolves the latest parsed header line.
func (s *State) Header(data []byte) (name, value []byte) {
	return s.HeaderName.Bytes(data), s.HeaderValue.Bytes(data)
}

// AtRequestLine reports whether nothing of the current request was consumed yet.
func (s *State) AtRequestLine() bool {
	return s.state == eRequestLineBegin
}

func (s *State) reject(at int, err error) (parser.Result, error) {
	s.Cursor = at
	return parser.InvalidRequest, err
}
