package vflow

// ArrayLinkedList is an array-backed deque with wraparound. Pushing and
// popping at either end and indexed reads are O(1); the backing array grows
// by doubling when full. The zero value is an empty list ready to use.
//
// Flow uses one list for the live cells (strictly ascending index order)
// and one for the pile of detached cells.
type ArrayLinkedList[T any] struct {
	buf   []T
	head  int
	count int
}

// Size returns the number of elements.
func (l *ArrayLinkedList[T]) Size() int { return l.count }

// IsEmpty reports whether the list has no elements.
func (l *ArrayLinkedList[T]) IsEmpty() bool { return l.count == 0 }

func (l *ArrayLinkedList[T]) slot(i int) int {
	return (l.head + i) % len(l.buf)
}

func (l *ArrayLinkedList[T]) grow() {
	if l.count < len(l.buf) {
		return
	}
	n := len(l.buf) * 2
	if n == 0 {
		n = 16
	}
	buf := make([]T, n)
	for i := 0; i < l.count; i++ {
		buf[i] = l.buf[l.slot(i)]
	}
	l.buf = buf
	l.head = 0
}

// Get returns the element at position i. Panics when i is out of range.
func (l *ArrayLinkedList[T]) Get(i int) T {
	if i < 0 || i >= l.count {
		panic("vflow: ArrayLinkedList index out of range")
	}
	return l.buf[l.slot(i)]
}

// First returns the first element, or the zero value when empty.
func (l *ArrayLinkedList[T]) First() T {
	if l.count == 0 {
		var zero T
		return zero
	}
	return l.buf[l.head]
}

// Last returns the last element, or the zero value when empty.
func (l *ArrayLinkedList[T]) Last() T {
	if l.count == 0 {
		var zero T
		return zero
	}
	return l.buf[l.slot(l.count-1)]
}

// AddFirst inserts v at the front.
func (l *ArrayLinkedList[T]) AddFirst(v T) {
	l.grow()
	l.head = (l.head - 1 + len(l.buf)) % len(l.buf)
	l.buf[l.head] = v
	l.count++
}

// AddLast appends v at the back.
func (l *ArrayLinkedList[T]) AddLast(v T) {
	l.grow()
	l.buf[l.slot(l.count)] = v
	l.count++
}

// RemoveFirst removes and returns the first element, or the zero value when
// the list is empty.
func (l *ArrayLinkedList[T]) RemoveFirst() T {
	var zero T
	if l.count == 0 {
		return zero
	}
	v := l.buf[l.head]
	l.buf[l.head] = zero
	l.head = (l.head + 1) % len(l.buf)
	l.count--
	return v
}

// RemoveLast removes and returns the last element, or the zero value when
// the list is empty.
func (l *ArrayLinkedList[T]) RemoveLast() T {
	var zero T
	if l.count == 0 {
		return zero
	}
	s := l.slot(l.count - 1)
	v := l.buf[s]
	l.buf[s] = zero
	l.count--
	return v
}

// Remove deletes the element at position i, shifting whichever side is
// shorter. Panics when i is out of range.
func (l *ArrayLinkedList[T]) Remove(i int) T {
	if i < 0 || i >= l.count {
		panic("vflow: ArrayLinkedList index out of range")
	}
	if i == 0 {
		return l.RemoveFirst()
	}
	if i == l.count-1 {
		return l.RemoveLast()
	}
	v := l.buf[l.slot(i)]
	if i < l.count/2 {
		for j := i; j > 0; j-- {
			l.buf[l.slot(j)] = l.buf[l.slot(j-1)]
		}
		l.RemoveFirst()
	} else {
		for j := i; j < l.count-1; j++ {
			l.buf[l.slot(j)] = l.buf[l.slot(j+1)]
		}
		l.RemoveLast()
	}
	return v
}

// IndexOf returns the position of the first element for which match
// returns true, or -1.
func (l *ArrayLinkedList[T]) IndexOf(match func(T) bool) int {
	for i := 0; i < l.count; i++ {
		if match(l.buf[l.slot(i)]) {
			return i
		}
	}
	return -1
}

// Clear removes every element. The backing array is kept for reuse.
func (l *ArrayLinkedList[T]) Clear() {
	var zero T
	for i := 0; i < l.count; i++ {
		l.buf[l.slot(i)] = zero
	}
	l.head = 0
	l.count = 0
}

// Slice returns a copy of the elements in order.
func (l *ArrayLinkedList[T]) Slice() []T {
	out := make([]T, l.count)
	for i := range out {
		out[i] = l.buf[l.slot(i)]
	}
	return out
}
