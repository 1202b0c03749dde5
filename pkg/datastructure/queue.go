package datastructure

// Queue FIFO queue
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{items: make([]T, 0)}
}

func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue return false kalau queue kosong
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head > 1024 && q.head*2 >= len(q.items) {
		// compact biar slice lama bisa di gc
		q.items = append(make([]T, 0, len(q.items)-q.head), q.items[q.head:]...)
		q.head = 0
	}
	return item, true
}

func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}
