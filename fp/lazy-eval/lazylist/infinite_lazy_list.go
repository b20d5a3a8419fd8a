// Package lazylist provides lazily evaluated lists built from closures.
//
// Elements are computed on first access and remembered, so a list can be
// backed by a stateful producer such as a prime generator.
package lazylist

type InfiniteLazyList[T any] interface {
	Head() T
	Tail() InfiniteLazyList[T]
	TakeN(int) []T
	// ForEachN visits the first n elements, forcing each one only
	// after the previous visit returned.
	ForEachN(int, func(T))
}

type infiniteLazyList[T any] struct {
	l *lazyList[T]
}

var _ InfiniteLazyList[int] = &infiniteLazyList[int]{}

// Generate returns the list f(), f(), f(), ... where each call happens
// when the corresponding element is first needed.
func Generate[T any](f func() T) InfiniteLazyList[T] {
	return &infiniteLazyList[T]{
		l: generate(f),
	}
}

func (il *infiniteLazyList[T]) Head() T {
	return il.l.head()
}

func (il *infiniteLazyList[T]) Tail() InfiniteLazyList[T] {
	return &infiniteLazyList[T]{l: il.l.tail()}
}

func (il *infiniteLazyList[T]) TakeN(n int) []T {
	return il.l.takeN(n)
}

func (il *infiniteLazyList[T]) ForEachN(n int, f func(T)) {
	il.l.forEachN(n, f)
}
