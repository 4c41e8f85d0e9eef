package walk

// item is a frontier entry: a pending node plus the bookkeeping needed to
// emit its shoot.
type item[T any] struct {
	node  T
	trace Trace
	level int
	seen  bool // dual-state stack only: children already scheduled
}

// frontier is the pending-work structure driving a traversal order. A
// frontier is created per call and never shared.
type frontier[T any] interface {
	put(it item[T])
	take() (item[T], bool)
}

// stack is the LIFO frontier behind the depth-first orders. Postorder
// uses it as a dual-state stack: entries re-enter with seen set once
// their children are scheduled.
type stack[T any] struct {
	items []item[T]
}

func (s *stack[T]) put(it item[T]) {
	s.items = append(s.items, it)
}

func (s *stack[T]) take() (item[T], bool) {
	if len(s.items) == 0 {
		return item[T]{}, false
	}
	it := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return it, true
}

// queue is the FIFO frontier behind top-down level order.
type queue[T any] struct {
	items []item[T]
	head  int
}

func (q *queue[T]) put(it item[T]) {
	q.items = append(q.items, it)
}

func (q *queue[T]) take() (item[T], bool) {
	if q.head >= len(q.items) {
		q.items, q.head = q.items[:0], 0
		return item[T]{}, false
	}
	it := q.items[q.head]
	q.head++
	return it, true
}

// traceEntry is a unit of bottom-up work: a structural address plus the
// index of the root it resolves against.
type traceEntry struct {
	trace Trace
	root  int
}

// traceQueue is the FIFO of structural addresses driving the bottom-up
// order. It is not a frontier of nodes: entries are re-resolved against
// their root when taken, and every taken entry requeues its parent
// address, so each entry strictly shortens and the queue always drains.
type traceQueue struct {
	entries []traceEntry
	head    int
}

func (q *traceQueue) put(e traceEntry) {
	q.entries = append(q.entries, e)
}

func (q *traceQueue) take() (traceEntry, bool) {
	if q.head >= len(q.entries) {
		q.entries, q.head = q.entries[:0], 0
		return traceEntry{}, false
	}
	e := q.entries[q.head]
	q.head++
	return e, true
}
