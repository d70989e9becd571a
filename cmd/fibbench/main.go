// fibbench runs naive recursive Fibonacci at three fixed sizes and prints
// each result with its wall-clock time in milliseconds. Recursive fib is
// O(2^n), so sizes above 25 take a very long time; the program demonstrates
// recursion overhead, not optimal Fibonacci computation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phroun/fibbench/bench"
)

func run(w io.Writer) {
	fmt.Fprintln(w, "=== Fibonacci Benchmark (Recursive) ===")

	fmt.Fprintln(w, "Computing fib(15) recursively...")
	result, elapsed := bench.Run(15)
	fmt.Fprintf(w, "fib(15) = %d in %d ms\n", result, elapsed)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Computing fib(20) recursively...")
	result, elapsed = bench.Run(20)
	fmt.Fprintf(w, "fib(20) = %d in %d ms\n", result, elapsed)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Computing fib(25) recursively (this may take a while)...")
	result, elapsed = bench.Run(25)
	fmt.Fprintf(w, "fib(25) = %d in %d ms\n", result, elapsed)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Benchmark Complete ===")
}

func main() {
	run(os.Stdout)
}
