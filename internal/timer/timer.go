// Package timer provides a coarse clock, which is cheap enough to be consulted on every
// socket operation in order to set I/O deadlines.
package timer

import (
	"sync/atomic"
	"time"
)

// Resolution is the frequency at which time is updated. 500ms are precise enough for
// setting I/O deadlines
const Resolution = 500 * time.Millisecond

var millis = new(atomic.Int64)

// Now returns the current time, at most Resolution behind the real one.
func Now() time.Time {
	m := millis.Load()
	return time.Unix(m/1000, (m%1000)*1e6)
}

// Deadline returns the moment the timeout expires at, counting from Now.
func Deadline(timeout time.Duration) time.Time {
	return Now().Add(timeout)
}

func init() {
	// the goroutine isn't guaranteed to start immediately, so the first calls would
	// otherwise observe the zero time
	millis.Store(time.Now().UnixMilli())

	go func() {
		for {
			time.Sleep(Resolution)
			millis.Store(time.Now().UnixMilli())
		}
	}()
}
