package parser

// Result tells the caller what a single parser step achieved. Only InvalidRequest is
// terminal, all the others mean the caller must continue with the same parser state.
type Result uint8

const (
	// OK means the current phase step is complete: the request line is parsed, a header
	// line is parsed or the body is fully received.
	OK Result = iota + 1
	// Again means the data ended before the current grammar unit did. It isn't an error:
	// the caller must read more data and call the same function again.
	Again
	// InvalidRequest means the data violates the grammar. The request must be rejected.
	InvalidRequest
	// CRLFLine is returned by the header-line parser only, when the empty line terminating
	// the headers section is met.
	CRLFLine
)

func (r Result) String() string {
	lut := [...]string{
		OK:             "OK",
		Again:          "AGAIN",
		InvalidRequest: "INVALID_REQUEST",
		CRLFLine:       "CRLF_LINE",
	}

	if int(r) >= len(lut) || lut[r] == "" {
		return "UNKNOWN"
	}

	return lut[r]
}
