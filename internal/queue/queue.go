// Package queue provides a k-bounded min-heap used for top-k selection.
package queue

// Item represents an item in the bounded heap.
// Value-based (no pointers) for cache locality and zero allocations.
type Item[T any] struct {
	Key   float64 // Key is the priority of the item in the heap.
	Value T       // Value is the payload, which can be arbitrary.
}

// Bounded is a min-heap capped at a fixed number of items. Pushing
// into a full heap evicts the smallest key first, so after n pushes it
// holds the k largest keys seen. Each push costs O(log k), giving
// O(n log k) total for top-k selection.
type Bounded[T any] struct {
	limit int
	items []Item[T]
}

// NewBounded creates a bounded min-heap holding at most limit items.
func NewBounded[T any](limit int) *Bounded[T] {
	if limit < 0 {
		limit = 0
	}
	return &Bounded[T]{
		limit: limit,
		items: make([]Item[T], 0, limit),
	}
}

// Len returns the number of items currently in the heap.
func (b *Bounded[T]) Len() int { return len(b.items) }

// Push inserts an item while maintaining the heap invariant and the
// size bound. Items with keys below the current minimum of a full heap
// are dropped.
func (b *Bounded[T]) Push(key float64, v T) {
	if b.limit == 0 {
		return
	}
	if len(b.items) < b.limit {
		b.items = append(b.items, Item[T]{Key: key, Value: v})
		b.siftUp(len(b.items) - 1)
		return
	}
	if key <= b.items[0].Key {
		return
	}
	b.items[0] = Item[T]{Key: key, Value: v}
	b.siftDown(0)
}

// Min returns the smallest-keyed item without removing it.
func (b *Bounded[T]) Min() (Item[T], bool) {
	if len(b.items) == 0 {
		return Item[T]{}, false
	}
	return b.items[0], true
}

// PopMin removes and returns the smallest-keyed item while maintaining
// the heap invariant.
func (b *Bounded[T]) PopMin() (Item[T], bool) {
	n := len(b.items)
	if n == 0 {
		return Item[T]{}, false
	}
	root := b.items[0]
	last := b.items[n-1]
	b.items[n-1] = Item[T]{}
	b.items = b.items[:n-1]
	if n-1 > 0 {
		b.items[0] = last
		b.siftDown(0)
	}
	return root, true
}

// Drain empties the heap and returns the items in descending key
// order (largest first).
func (b *Bounded[T]) Drain() []Item[T] {
	out := make([]Item[T], len(b.items))
	for i := len(b.items) - 1; i >= 0; i-- {
		item, _ := b.PopMin()
		out[i] = item
	}
	return out
}

func (b *Bounded[T]) less(i, j int) bool {
	return b.items[i].Key < b.items[j].Key
}

func (b *Bounded[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !b.less(i, p) {
			return
		}
		b.items[i], b.items[p] = b.items[p], b.items[i]
		i = p
	}
}

func (b *Bounded[T]) siftDown(i int) {
	n := len(b.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && b.less(r, l) {
			best = r
		}
		if !b.less(best, i) {
			return
		}
		b.items[i], b.items[best] = b.items[best], b.items[i]
		i = best
	}
}
