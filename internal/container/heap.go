package container

import "container/heap"

// PriorityQueue is a generic min-heap ordered by less. No other package
// of this module uses it.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewPriorityQueue returns an empty queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{less: less}
}

func (q *PriorityQueue[T]) Len() int            { return len(q.items) }
func (q *PriorityQueue[T]) Less(i, j int) bool  { return q.less(q.items[i], q.items[j]) }
func (q *PriorityQueue[T]) Swap(i, j int)        { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *PriorityQueue[T]) Push(x interface{})  { q.items = append(q.items, x.(T)) }
func (q *PriorityQueue[T]) Pop() interface{} {
	n := len(q.items)
	v := q.items[n-1]
	q.items = q.items[:n-1]
	return v
}

// Insert adds v to the queue.
func (q *PriorityQueue[T]) Insert(v T) {
	heap.Push(q, v)
}

// Extract removes and returns the minimal element. ok is false if empty.
func (q *PriorityQueue[T]) Extract() (v T, ok bool) {
	if q.Len() == 0 {
		return v, false
	}
	return heap.Pop(q).(T), true
}
