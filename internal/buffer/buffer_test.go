package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func pushSegment(t *testing.T, buff Buffer, text string) Buffer {
	ok := buff.Append([]byte(text))
	require.True(t, ok)
	segment := buff.Finish()
	require.Equal(t, text, string(segment))
	return buff
}

func BenchmarkBuffer(b *testing.B) {
	buff := New(1024, 4096)
	smallString := []byte(strings.Repeat("a", 1023))

	b.Run("copy", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(smallString)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = buff.Copy(smallString)
			buff.Clear()
		}
	})
}

func TestBuffer(t *testing.T) {
	t.Run("no overflow", func(t *testing.T) {
		buff := New(10, 20)
		buff = pushSegment(t, buff, "Hello")
		buff = pushSegment(t, buff, "Here")
		require.Equal(t, 9, buff.Len())
	})

	t.Run("growth keeps old segments", func(t *testing.T) {
		buff := New(4, 64)
		first, ok := buff.Copy([]byte("Host"))
		require.True(t, ok)
		second, ok := buff.Copy([]byte("a rather long value forcing the growth"))
		require.True(t, ok)
		require.Equal(t, "Host", string(first))
		require.Equal(t, "a rather long value forcing the growth", string(second))
	})

	t.Run("overflow over the limit", func(t *testing.T) {
		buff := New(10, 20)
		buff = pushSegment(t, buff, "Hello, ")
		buff = pushSegment(t, buff, "World!")
		buff = pushSegment(t, buff, "Lorem ")
		// at this point, we have reached 19 elements in underlying slice
		ok := buff.Append([]byte("overflow"))
		require.False(t, ok)
	})

	t.Run("copy overflow discards the segment", func(t *testing.T) {
		buff := New(10, 10)
		require.True(t, buff.Append([]byte("Hel")))
		_, ok := buff.Copy([]byte("lo, World!"))
		require.False(t, ok)
		require.Zero(t, buff.Len())
	})

	t.Run("segment length", func(t *testing.T) {
		buff := New(10, 20)
		require.True(t, buff.Append([]byte("Hello, ")))
		require.True(t, buff.Append([]byte("World!")))
		require.Equal(t, 13, buff.SegmentLength())
	})

	t.Run("discard segment", func(t *testing.T) {
		buff := New(50, 50)
		require.True(t, buff.Append([]byte("Hello")))
		buff.Finish()
		require.True(t, buff.Append([]byte("World")))
		buff.Discard()
		require.Equal(t, "Hello", string(buff.memory))
	})

	t.Run("clipped segments", func(t *testing.T) {
		buff := New(50, 50)
		first, _ := buff.Copy([]byte("ab"))
		second, _ := buff.Copy([]byte("cd"))
		_ = append(first, 'X')
		require.Equal(t, "cd", string(second))
	})

	t.Run("clear", func(t *testing.T) {
		buff := New(10, 10)
		_, ok := buff.Copy([]byte("0123456789"))
		require.True(t, ok)
		buff.Clear()
		_, ok = buff.Copy([]byte("0123456789"))
		require.True(t, ok)
	})
}
