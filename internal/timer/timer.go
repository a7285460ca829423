package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is how often the clock is refreshed. It's coarse, but still precise enough
// for read deadlines, which are counted in seconds.
const Resolution = 500 * time.Millisecond

var millis = new(atomic.Int64)

// Now returns the current time, lagging behind at most by Resolution. It's noticeably cheaper
// than time.Now, which matters as a deadline is set before every read.
func Now() time.Time {
	ms := millis.Load()
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}

func init() {
	// the goroutine isn't guaranteed to be scheduled immediately, so the first value is
	// stored synchronously. Otherwise, early callers would observe the zero time.
	millis.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			millis.Store(time.Now().UnixMilli())
		}
	}()
}
