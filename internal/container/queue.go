// Package container holds the two work lists the route searches run on:
// a FIFO queue of flight numbers and a binary min-heap ordered by a caller
// supplied comparator.
package container

import "errors"

// ErrEmpty is returned when taking an item out of an empty container.
var ErrEmpty = errors.New("container: empty")

// Queue is a first-in-first-out queue of ints backed by a growable ring buffer.
type Queue struct {
	buf  []int
	head int
	size int
}

func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{buf: make([]int, capacity)}
}

func (q *Queue) IsEmpty() bool { return q.size == 0 }

// Push appends v at the tail.
func (q *Queue) Push(v int) {
	if q.buf == nil {
		q.buf = make([]int, 1)
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
}

// Pop removes and returns the earliest pushed value.
func (q *Queue) Pop() (int, error) {
	if q.size == 0 {
		return 0, ErrEmpty
	}
	v := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return v, nil
}

func (q *Queue) grow() {
	next := make([]int, 2*len(q.buf))
	n := copy(next, q.buf[q.head:])
	copy(next[n:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}
