// Package bench times single Fibonacci computations.
package bench

import (
	"time"

	"github.com/phroun/fibbench/fib"
)

// Run computes fib.Fib(n) once and reports the result together with the
// wall-clock time of the call in whole milliseconds, truncated. time.Now
// carries a monotonic reading, so the measurement is unaffected by clock
// adjustments. Run performs no I/O; printing is the caller's job.
func Run(n int) (result int, elapsedMs int64) {
	start := time.Now()
	result = fib.Fib(n)
	return result, time.Since(start).Milliseconds()
}
