// Package span provides borrowed views into externally owned byte buffers.
//
// A Span is just an offset and a length. It doesn't keep the buffer alive and knows nothing
// about it, so it must be resolved against the same buffer it was recorded from. Growing the
// buffer by appending keeps spans valid, as offsets don't depend on the backing array. Shifting
// or reusing the buffer's content invalidates every span recorded before.
package span

import "github.com/indigo-web/utils/uf"

type Span struct {
	Offset, Length int
}

// New returns a span covering [begin, end).
func New(begin, end int) Span {
	if end < begin {
		panic("BUG: span end precedes its beginning")
	}

	return Span{
		Offset: begin,
		Length: end - begin,
	}
}

// End returns the offset right after the last byte of the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

func (s Span) Empty() bool {
	return s.Length == 0
}

// Bytes resolves the span against the buffer. The returned slice shares memory with the
// buffer, and its capacity is clipped, so appending to it never overwrites the buffer.
func (s Span) Bytes(buff []byte) []byte {
	end := s.End()
	return buff[s.Offset:end:end]
}

// String resolves the span against the buffer without copying. The string is valid only
// as long as the buffer's content stays unchanged.
func (s Span) String(buff []byte) string {
	return uf.B2S(s.Bytes(buff))
}

// Copy returns an owned copy of the span's content.
func (s Span) Copy(buff []byte) []byte {
	return append([]byte(nil), s.Bytes(buff)...)
}
