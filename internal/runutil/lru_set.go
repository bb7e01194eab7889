// internal/runutil/lru_set.go
package runutil

// DefaultLRUCapacity bounds the set when the caller passes capacity <= 0.
const DefaultLRUCapacity = 200_000

// LRUSet is a size-bounded set. When full, adding a new key evicts the key
// that was least recently added or hit. Slots live in slices and are reused
// after eviction, so a long stream of names allocates at most capacity slots.
type LRUSet[K comparable] struct {
	cap  int
	idx  map[K]int
	keys []K
	prev []int
	next []int
	head int // most recent, -1 when empty
	tail int // least recent
}

func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = DefaultLRUCapacity
	}
	return &LRUSet[K]{cap: capacity, idx: make(map[K]int), head: -1, tail: -1}
}

// Add inserts k; returns true if it was already present.
func (s *LRUSet[K]) Add(k K) bool {
	if i, ok := s.idx[k]; ok {
		s.unlink(i)
		s.pushFront(i)
		return true
	}
	var i int
	if len(s.keys) < s.cap {
		i = len(s.keys)
		s.keys = append(s.keys, k)
		s.prev = append(s.prev, -1)
		s.next = append(s.next, -1)
	} else {
		i = s.tail
		s.unlink(i)
		delete(s.idx, s.keys[i])
		s.keys[i] = k
	}
	s.idx[k] = i
	s.pushFront(i)
	return false
}

// Has reports membership without touching recency.
func (s *LRUSet[K]) Has(k K) bool {
	_, ok := s.idx[k]
	return ok
}

// Len is the number of keys currently held.
func (s *LRUSet[K]) Len() int { return len(s.idx) }

func (s *LRUSet[K]) unlink(i int) {
	p, n := s.prev[i], s.next[i]
	if p >= 0 {
		s.next[p] = n
	} else {
		s.head = n
	}
	if n >= 0 {
		s.prev[n] = p
	} else {
		s.tail = p
	}
	s.prev[i], s.next[i] = -1, -1
}

func (s *LRUSet[K]) pushFront(i int) {
	s.next[i] = s.head
	if s.head >= 0 {
		s.prev[s.head] = i
	}
	s.head = i
	if s.tail < 0 {
		s.tail = i
	}
}
