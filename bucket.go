package priorityqueue

// noSlot marks the absence of a neighbouring slot in the intrusive list.
const noSlot int32 = -1

// slot is a single element record inside a bucket's arena. Records are
// linked into the bucket's FIFO order through prev/next indices rather than
// pointers, so handles can name them stably across appends. The generation
// counter starts at 1 and bumps on every release, which is how stale handles
// are told apart from live ones: a handle only matches while the slot still
// holds the element it was issued for.
type slot[T any] struct {
	value T
	prev  int32
	next  int32
	gen   uint32
	live  bool
}

// bucket is the FIFO sequence of elements at one priority level. It supports
// O(1) append at the tail, O(1) removal from the front, and O(1) removal of
// an interior element addressed by slot index. Freed slots are recycled
// through a freelist before the arena grows.
type bucket[T any] struct {
	slots []slot[T]
	free  []int32
	head  int32
	tail  int32
	size  int
}

func (b *bucket[T]) init(capacity int) {
	b.head, b.tail = noSlot, noSlot
	if capacity > 0 {
		b.slots = make([]slot[T], 0, capacity)
		b.free = make([]int32, 0, capacity)
	}
}

// push appends v at the tail and returns the slot index and generation that
// together identify the new record.
func (b *bucket[T]) push(v T) (int32, uint32) {
	var i int32
	if n := len(b.free); n > 0 {
		i = b.free[n-1]
		b.free = b.free[:n-1]
	} else {
		b.slots = append(b.slots, slot[T]{gen: 1})
		i = int32(len(b.slots) - 1)
	}

	s := &b.slots[i]
	s.value = v
	s.prev, s.next = b.tail, noSlot
	s.live = true

	if b.tail != noSlot {
		b.slots[b.tail].next = i
	} else {
		b.head = i
	}
	b.tail = i
	b.size++
	return i, s.gen
}

// popFront removes and returns the front element. The caller guarantees the
// bucket is non-empty.
func (b *bucket[T]) popFront() T {
	i := b.head
	v := b.slots[i].value
	b.unlink(i)
	b.release(i)
	return v
}

// front returns the front element without removing it. The caller guarantees
// the bucket is non-empty.
func (b *bucket[T]) front() T {
	return b.slots[b.head].value
}

// remove unlinks the record at slot i if it is live and its generation still
// matches gen. It reports false for out-of-range, freed, or recycled slots.
func (b *bucket[T]) remove(i int32, gen uint32) (T, bool) {
	var zero T
	if i < 0 || int(i) >= len(b.slots) {
		return zero, false
	}
	s := &b.slots[i]
	if !s.live || s.gen != gen {
		return zero, false
	}
	v := s.value
	b.unlink(i)
	b.release(i)
	return v, true
}

func (b *bucket[T]) unlink(i int32) {
	s := &b.slots[i]
	if s.prev != noSlot {
		b.slots[s.prev].next = s.next
	} else {
		b.head = s.next
	}
	if s.next != noSlot {
		b.slots[s.next].prev = s.prev
	} else {
		b.tail = s.prev
	}
}

func (b *bucket[T]) release(i int32) {
	s := &b.slots[i]
	var zero T
	s.value = zero // avoid pinning caller memory
	s.live = false
	s.gen++
	s.prev, s.next = noSlot, noSlot
	b.free = append(b.free, i)
	b.size--
}
