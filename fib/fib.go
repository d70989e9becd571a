// Package fib computes Fibonacci numbers with the naive recursive
// definition. The exponential call count is the point: callers use it to
// measure function call overhead, not to obtain Fibonacci numbers fast.
package fib

// Fib returns the nth Fibonacci number, with Fib(0) = 0 and Fib(1) = 1.
// Any n <= 1 is returned unchanged, so negative inputs echo themselves.
//
// The recursion is deliberately unmemoized: O(2^n) calls, O(n) depth.
// Very large n will exhaust the stack; the benchmark sizes stay far below
// that.
func Fib(n int) int {
	if n <= 1 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
