package prime

import "github.com/KumKeeHyun/primesieve/fp/lazy-eval/lazylist"

type Iterator interface {
	HasNext() bool
	Next() Result
}

var _ Iterator = &Sieve{}

// Primes returns the results of it as a lazy list. Each element is produced
// by calling it.Next the first time the element is accessed.
func Primes(it Iterator) lazylist.InfiniteLazyList[Result] {
	return lazylist.Generate(it.Next)
}
