package buffer

// Buffer hosts owned copies of non-interrelated byte sequences in a single place, primarily
// header names and values copied out of the read buffer before it's reused. Each sequence
// is a segment: appended (possibly in multiple steps) and then finished.
//
// Finished segments stay valid until Clear is called, even if the underlying memory has
// grown since then.
type Buffer struct {
	memory  []byte
	begin   int
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, initialSize),
		maxSize: maxSize,
	}
}

// Append writes data into the current segment, checking whether the new amount of bytes
// doesn't exceed the limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(b.memory)+len(elements) > b.maxSize {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// Copy stores the elements as a separate segment and returns it. If there's not enough
// space left, the current segment is discarded.
func (b *Buffer) Copy(elements []byte) (segment []byte, ok bool) {
	if !b.Append(elements) {
		b.Discard()
		return nil, false
	}

	return b.Finish(), true
}

// SegmentLength returns a number of bytes, taken by current segment, calculated as a difference
// between the beginning of the current segment and the current pointer.
func (b *Buffer) SegmentLength() int {
	return len(b.memory) - b.begin
}

// Finish completes current segment, returning its value. The capacity of the returned slice
// is clipped, so appending to it never spoils the following segments.
func (b *Buffer) Finish() []byte {
	segment := b.memory[b.begin:len(b.memory):len(b.memory)]
	b.begin = len(b.memory)

	return segment
}

// Discard drops the current segment, leaving the finished ones intact.
func (b *Buffer) Discard() {
	b.memory = b.memory[:b.begin]
}

// Len returns the number of bytes occupied by all the segments.
func (b *Buffer) Len() int {
	return len(b.memory)
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.begin = 0
	b.memory = b.memory[:0]
}
