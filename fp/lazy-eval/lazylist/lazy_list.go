package lazylist

type evaluatedList[T any] struct {
	item T
	next *lazyList[T]
}

type evalFunc[T any] func() *evaluatedList[T]

// lazyList evaluates its cell at most once. The producer behind eval may be
// stateful, so a forced cell is cached and eval is dropped.
type lazyList[T any] struct {
	eval   evalFunc[T]
	forced bool
	cell   *evaluatedList[T]
}

func newLazyList[T any](eval evalFunc[T]) *lazyList[T] {
	return &lazyList[T]{
		eval: eval,
	}
}

func generate[T any](f func() T) *lazyList[T] {
	return newLazyList(func() *evaluatedList[T] {
		return &evaluatedList[T]{
			item: f(),
			next: generate(f),
		}
	})
}

func (l *lazyList[T]) force() *evaluatedList[T] {
	if !l.forced {
		l.cell = l.eval()
		l.forced = true
		l.eval = nil
	}
	return l.cell
}

func (l *lazyList[T]) isEmpty() bool {
	return l.force() == nil
}

func (l *lazyList[T]) head() T {
	if l.isEmpty() {
		var zero T
		return zero
	}
	return l.force().item
}

func (l *lazyList[T]) tail() *lazyList[T] {
	if l.isEmpty() {
		return l
	}
	return l.force().next
}

func (l *lazyList[T]) forEachN(n int, f func(T)) {
	for ; n > 0 && !l.isEmpty(); n-- {
		f(l.head())
		l = l.tail()
	}
}

func (l *lazyList[T]) takeN(n int) []T {
	res := []T{}
	l.forEachN(n, func(item T) {
		res = append(res, item)
	})
	return res
}
