package http1

import (
	"github.com/indigo-web/h1stream/http/span"
	"github.com/indigo-web/h1stream/http/status"
	"github.com/indigo-web/h1stream/parser"
)

// ParseHeaderLine parses a single `Name: Value CRLF` line, or the empty line terminating
// the headers section, in which case parser.CRLFLine is returned. On parser.OK the parsed
// header is available via State.HeaderName and State.HeaderValue until the next call.
//
// Spaces and tabs at the line beginning are skipped. A bare LF terminates a header value,
// but never the headers section.
func ParseHeaderLine(data []byte, s *State) (parser.Result, error) {
	for i := s.Cursor; i < len(data); i++ {
		char := data[i]

		switch s.state {
		case eHeaderLineBegin:
			switch {
			case isHeaderNameChar(char):
				s.lineBegin = i
				s.isBlankLine = false
				s.state = eHeaderName
			case char == '\r':
				s.isBlankLine = true
				s.state = eHeaderCR
			case isBlank(char):
			default:
				return s.reject(i, status.ErrBadHeader)
			}
		case eHeaderName:
			switch {
			case isHeaderNameChar(char):
			case char == ':':
				s.colon = i
				s.state = eHeaderColon
			default:
				return s.reject(i, status.ErrBadHeader)
			}
		case eHeaderColon, eSpBeforeValue:
			switch char {
			case ' ', '\t':
				s.state = eSpBeforeValue
			case '\r', '\n':
				return s.reject(i, status.ErrBadHeader)
			default:
				s.valueBegin = i
				s.state = eHeaderValue
			}
		case eHeaderValue:
			switch char {
			case '\r':
				s.valueEnd = i
				s.state = eHeaderCR
			case '\n':
				s.valueEnd = i
				return s.completeHeaderLine(i), nil
			}
		case eHeaderCR:
			if char != '\n' {
				return s.reject(i, status.ErrBadLineEnding)
			}

			return s.completeHeaderLine(i), nil
		default:
			panic("BUG: header line parser is called before the request line is parsed")
		}
	}

	s.Cursor = len(data)

	return parser.Again, nil
}

func (s *State) completeHeaderLine(lf int) parser.Result {
	s.Cursor = lf + 1
	s.state = eHeaderLineBegin

	if s.isBlankLine {
		s.HeaderName = span.New(s.Cursor, s.Cursor)
		s.HeaderValue = s.HeaderName
		return parser.CRLFLine
	}

	s.NumHeaders++
	s.HeaderName = span.New(s.lineBegin, s.colon)
	s.HeaderValue = span.New(s.valueBegin, s.valueEnd)

	return parser.OK
}
