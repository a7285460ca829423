package http1

import (
	"testing"

	"github.com/indigo-web/h1stream/config"
	"github.com/indigo-web/h1stream/internal/requestgen"
	"github.com/indigo-web/h1stream/transport/dummy"
)

func benchConn(b *testing.B, pieces ...[]byte) {
	var size int
	for _, piece := range pieces {
		size += len(piece)
	}

	// the client starts over once the pieces are over, so the stream is endless
	client := dummy.NewMockClient(pieces...).Journaling(false)
	conn := NewConn(config.Default(), client)
	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := conn.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConn(b *testing.B) {
	b.Run("simple GET", func(b *testing.B) {
		benchConn(b, simpleGET)
	})

	b.Run("POST", func(b *testing.B) {
		benchConn(b, somePOST)
	})

	b.Run("10 headers", func(b *testing.B) {
		benchConn(b, requestgen.Generate("index.html", requestgen.Headers(10)))
	})

	b.Run("50 headers split", func(b *testing.B) {
		benchConn(b, splitIntoParts(requestgen.Generate("index.html", requestgen.Headers(50)), 512)...)
	})
}
