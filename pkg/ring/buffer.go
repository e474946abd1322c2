package ring

import "fmt"

// Buffer is a fixed-capacity ring that overwrites its front (oldest) item when
// an item is pushed while full.
type Buffer[T any] struct {
	buf   []T
	front int // oldest item, when not empty
	back  int // slot the next push writes to
	size  int
}

// New creates a ring holding at most capacity items. capacity must be at least 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("ring: capacity must be >= 1, got %d", capacity))
	}
	return &Buffer[T]{buf: make([]T, capacity)}
}

// Size returns the number of items in the ring.
func (b *Buffer[T]) Size() int { return b.size }

// Capacity returns the maximum number of items the ring can hold.
func (b *Buffer[T]) Capacity() int { return len(b.buf) }

func (b *Buffer[T]) Empty() bool { return b.size == 0 }

func (b *Buffer[T]) Full() bool { return b.size == len(b.buf) }

// PushBack appends item at the back. If the ring was full, the front item is
// overwritten and the front moves up by one.
func (b *Buffer[T]) PushBack(item T) {
	wasFull := b.Full()

	b.buf[b.back] = item
	b.back = b.next(b.back)

	if wasFull {
		b.front = b.back
	} else {
		b.size++
	}
}

// PopFront removes and returns the front item. It panics on an empty ring.
func (b *Buffer[T]) PopFront() T {
	if b.Empty() {
		panic("ring: PopFront on empty buffer")
	}

	var zero T
	item := b.buf[b.front]
	b.buf[b.front] = zero
	b.front = b.next(b.front)
	b.size--

	return item
}

// Peek returns the i-th item counting from the front: 0 is the oldest item and
// Size()-1 the newest. It panics when i is out of range.
func (b *Buffer[T]) Peek(i int) T {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("ring: index %d out of range [0, %d)", i, b.size))
	}
	return b.buf[(b.front+i)%len(b.buf)]
}

// Newest returns the i-th item counting from the back: 0 is the most recent.
func (b *Buffer[T]) Newest(i int) T {
	return b.Peek(b.size - 1 - i)
}

// Items returns a copy of the items, oldest first.
func (b *Buffer[T]) Items() []T {
	items := make([]T, 0, b.size)
	for i := 0; i < b.size; i++ {
		items = append(items, b.Peek(i))
	}
	return items
}

// Clear drops every item.
func (b *Buffer[T]) Clear() {
	clear(b.buf)
	b.front, b.back, b.size = 0, 0, 0
}

func (b *Buffer[T]) next(i int) int {
	if i+1 < len(b.buf) {
		return i + 1
	}
	return 0
}
