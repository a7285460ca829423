package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	const (
		step = 200 * time.Millisecond
		// the refreshing goroutine may be late by a few milliseconds, so let it be
		tolerance = Resolution + Resolution/2
	)

	for i := 0; i < 10; i++ {
		lag := time.Since(Now())
		require.GreaterOrEqual(t, lag, time.Duration(0))
		require.Less(t, lag, tolerance)
		time.Sleep(step)
	}
}

func BenchmarkNow(b *testing.B) {
	b.Run("time.Now", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = time.Now().Add(5 * time.Second)
		}
	})

	b.Run("timer.Now", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Now().Add(5 * time.Second)
		}
	})
}
