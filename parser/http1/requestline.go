package http1

import (
	"github.com/indigo-web/h1stream/http/method"
	"github.com/indigo-web/h1stream/http/status"
	"github.com/indigo-web/h1stream/parser"
	"github.com/indigo-web/utils/uf"
)

// ParseRequestLine recognizes `METHOD SP URL SP HTTP/major.minor CRLF` byte by byte. If the
// data ends in the middle of the line, parser.Again is returned and the next call picks up
// exactly where this one stopped. After the line is complete, the cursor points right after
// the LF and the state is ready for ParseHeaderLine.
func ParseRequestLine(data []byte, s *State) (parser.Result, error) {
	for i := s.Cursor; i < len(data); i++ {
		char := data[i]

		switch s.state {
		case eRequestLineBegin:
			if !isLetter(char) {
				return s.reject(i, status.ErrBadRequest)
			}

			s.methodBegin = i
			s.state = eMethod
		case eMethod:
			switch {
			case isLetter(char):
			case isBlank(char):
				s.Method = method.Parse(uf.B2S(data[s.methodBegin:i]))
				if s.Method == method.Unknown {
					return s.reject(i, status.ErrMethodNotImplemented)
				}

				s.state = eSpBeforeURL
			default:
				return s.reject(i, status.ErrBadRequest)
			}
		case eSpBeforeURL:
			switch char {
			case ' ', '\t':
			case '\r', '\n':
				return s.reject(i, status.ErrBadRequest)
			default:
				s.urlBegin = i
				s.state = eURL
			}
		case eURL:
			switch char {
			case ' ', '\t':
				if err := parseURL(data, s.urlBegin, i, &s.URL); err != nil {
					return s.reject(i, err)
				}

				s.state = eSpBeforeVersion
			case '\r', '\n':
				return s.reject(i, status.ErrBadRequest)
			}
		case eSpBeforeVersion:
			switch {
			case isBlank(char):
			case isVersionChar(char, 'H'):
				s.state = eVersionH
			default:
				return s.reject(i, status.ErrUnsupportedProtocol)
			}
		case eVersionH:
			if !isVersionChar(char, 'T') {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.state = eVersionHT
		case eVersionHT:
			if !isVersionChar(char, 'T') {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.state = eVersionHTT
		case eVersionHTT:
			if !isVersionChar(char, 'P') {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.state = eVersionHTTP
		case eVersionHTTP:
			if char != '/' {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.state = eVersionSlash
		case eVersionSlash:
			if !isDigit(char) || char-'0' > 1 {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.Version.Major = char - '0'
			s.state = eVersionMajor
		case eVersionMajor:
			switch {
			case isDigit(char):
				s.Version.Major = s.Version.Major*10 + char - '0'
				if s.Version.Major > 1 {
					return s.reject(i, status.ErrUnsupportedProtocol)
				}
			case char == '.':
				s.state = eVersionDot
			default:
				return s.reject(i, status.ErrUnsupportedProtocol)
			}
		case eVersionDot:
			if !isDigit(char) {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			// HTTP/0.9 is the only version with the minor above 1 that is still recognized
			minor := char - '0'
			if minor > 1 && !(s.Version.Major == 0 && minor == 9) {
				return s.reject(i, status.ErrUnsupportedProtocol)
			}

			s.Version.Minor = minor
			s.state = eVersionMinor
		case eVersionMinor:
			switch {
			case isDigit(char):
				s.Version.Minor = s.Version.Minor*10 + char - '0'
				if s.Version.Minor > 1 {
					return s.reject(i, status.ErrUnsupportedProtocol)
				}
			case char == '\r':
				s.state = eRequestLineCR
			default:
				return s.reject(i, status.ErrBadRequest)
			}
		case eRequestLineCR:
			if char != '\n' {
				return s.reject(i, status.ErrBadLineEnding)
			}

			s.Cursor = i + 1
			s.state = eHeaderLineBegin

			return parser.OK, nil
		default:
			panic("BUG: request line parser is called in the middle of headers")
		}
	}

	s.Cursor = len(data)

	return parser.Again, nil
}
