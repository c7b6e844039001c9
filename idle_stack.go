// idle_stack.go
package threadpool

// idleStack is the pool's idle set: parked threads, most recently
// parked last. Handout is LIFO so hot threads stay hot; removal is by
// identity, never by position, so a timer firing after the set has
// been reordered can only ever drop its own thread.
//
// The stack is not safe for concurrent use; the pool guards it with
// its own mutex.
type idleStack[T any] struct {
	items []*thread[T]
}

// len returns the number of parked threads.
func (s *idleStack[T]) len() int { return len(s.items) }

// push parks w on top of the stack.
func (s *idleStack[T]) push(w *thread[T]) {
	s.items = append(s.items, w)
}

// pop removes and returns the most recently parked thread.
//
// If the stack is empty, returns nil and false.
func (s *idleStack[T]) pop() (*thread[T], bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	w := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return w, true
}

// remove drops w from wherever it sits in the stack, preserving the
// order of the rest. Returns false when w is not parked (it is running
// or already gone).
func (s *idleStack[T]) remove(w *thread[T]) bool {
	for i, cur := range s.items {
		if cur == w {
			copy(s.items[i:], s.items[i+1:])
			n := len(s.items) - 1
			s.items[n] = nil
			s.items = s.items[:n]
			return true
		}
	}
	return false
}

// drain empties the stack and returns everything that was parked.
func (s *idleStack[T]) drain() []*thread[T] {
	out := s.items
	s.items = nil
	return out
}
