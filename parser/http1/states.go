package http1

type parserState uint8

// eRequestLineBegin is deliberately the zero value, so a zero State is ready to parse
// a request line.
const (
	eRequestLineBegin parserState = iota
	eMethod
	eSpBeforeURL
	eURL
	eSpBeforeVersion
	eVersionH
	eVersionHT
	eVersionHTT
	eVersionHTTP
	eVersionSlash
	eVersionMajor
	eVersionDot
	eVersionMinor
	eRequestLineCR
	eHeaderLineBegin
	eHeaderName
	eHeaderColon
	eSpBeforeValue
	eHeaderValue
	eHeaderCR
)
