// Command primesieve prints the first hundred primes, each with the time it
// took to find it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KumKeeHyun/primesieve/fp/lazy-eval/prime"
	"github.com/KumKeeHyun/primesieve/fp/lazy-eval/report"
)

type config struct {
	// Count is the number of primes to print.
	Count int
	Clock prime.Clock
}

func defaultConfig() config {
	return config{
		Count: 100,
		Clock: prime.SystemClock{},
	}
}

func run(out io.Writer, cfg config) error {
	w := report.NewWriter(out)
	w.WriteHeader()
	primes := prime.Primes(prime.NewSieveWithClock(cfg.Clock))
	primes.ForEachN(cfg.Count, w.WriteResult)
	return w.Err()
}

func main() {
	if err := run(os.Stdout, defaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
