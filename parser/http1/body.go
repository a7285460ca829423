package http1

import (
	"github.com/indigo-web/h1stream/http/span"
	"github.com/indigo-web/h1stream/parser"
)

// ReadIdentityBody consumes the body bytes available in the data. The consumed piece is
// exposed via State.Body. Bytes beyond the ContentLength aren't consumed, so they stay
// available for the next pipelined request. The error is always nil, the function returns
// one just to fit the Phase signature.
func ReadIdentityBody(data []byte, s *State) (parser.Result, error) {
	if s.ContentLength <= 0 {
		s.Body = span.New(s.Cursor, s.Cursor)
		return parser.OK, nil
	}

	n := int64(len(data) - s.Cursor)
	if left := s.ContentLength - s.BodyReceived; n > left {
		n = left
	}

	s.Body = span.New(s.Cursor, s.Cursor+int(n))
	s.BodyReceived += n
	s.Cursor += int(n)

	if s.BodyReceived >= s.ContentLength {
		return parser.OK, nil
	}

	return parser.Again, nil
}
