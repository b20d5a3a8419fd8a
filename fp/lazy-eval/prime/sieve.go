// Package prime produces successive prime numbers by trial division,
// timing each production step.
package prime

// Result is a prime together with the time it took to find it.
type Result struct {
	Prime    int
	Duration Timing
}

// Sieve generates primes in ascending order. Each candidate is divided by
// every prime found before it, stopping at the first divisor. Because
// primes are found in order with no gaps, this certifies every candidate.
//
// A Sieve is not safe for concurrent use.
type Sieve struct {
	clock     Clock
	next      int
	known     []int
	divisions int
	lastErr   error
}

// NewSieve returns a sieve timed with the system clock.
func NewSieve() *Sieve {
	return NewSieveWithClock(SystemClock{})
}

// NewSieveWithClock returns a sieve timed with clock.
func NewSieveWithClock(clock Clock) *Sieve {
	return &Sieve{
		clock: clock,
		next:  2,
	}
}

func (s *Sieve) isDivisible(candidate int) bool {
	for _, p := range s.known {
		s.divisions++
		if candidate%p == 0 {
			return true
		}
	}
	return false
}

// HasNext always returns true: the sequence has no end.
func (s *Sieve) HasNext() bool {
	return true
}

// Next finds the next prime. It never fails: if the elapsed time cannot be
// measured, the returned Duration is NoTiming.
func (s *Sieve) Next() Result {
	start := s.clock.Now()

	i := s.next
	for s.isDivisible(i) {
		i++
	}
	s.next = i + 1
	s.known = append(s.known, i)

	res := Result{Prime: i, Duration: NoTiming}
	d, err := elapsed(s.clock, start)
	s.lastErr = err
	if err == nil {
		res.Duration = TimingOf(d)
	}
	return res
}

// Known returns a copy of the primes found so far, in ascending order.
func (s *Sieve) Known() []int {
	return append([]int{}, s.known...)
}

// Divisions returns the number of trial divisions performed so far.
func (s *Sieve) Divisions() int {
	return s.divisions
}

// TimingErr returns why the last call to Next has no duration, or nil.
func (s *Sieve) TimingErr() error {
	return s.lastErr
}
