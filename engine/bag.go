package engine

import "fmt"

// MaxPreview bounds the configurable queue lookahead.
const MaxPreview = 7

// Bag deals the 7 kinds in shuffled cycles: over any window of 7 draws
// aligned to a cycle boundary, each kind appears exactly once.
type Bag struct {
	pool [NumKinds]Kind
	n    uint8
	rng  uint64
}

// NewBag seeds the bag's generator. Pass a fixed seed for a reproducible
// sequence; a zero seed is corrected to 1 (xorshift cannot start at 0).
func NewBag(seed uint64) Bag {
	b := Bag{rng: seed}
	if b.rng == 0 {
		b.rng = 1
	}
	return b
}

// xorshift64 — inline, no interface.
func (b *Bag) nextRand() uint64 {
	x := b.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	b.rng = x
	return x
}

// randN returns a random number in [0, n).
func (b *Bag) randN(n uint64) uint64 {
	return b.nextRand() % n
}

// refill loads a fresh Fisher-Yates permutation of all 7 kinds.
func (b *Bag) refill() {
	for i := range b.pool {
		b.pool[i] = Kind(i)
	}
	for i := NumKinds - 1; i > 0; i-- {
		j := int(b.randN(uint64(i + 1)))
		b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
	}
	b.n = NumKinds
}

// Pop returns the next kind, starting a new shuffle cycle when the current
// one is exhausted. The sequence is infinite; Pop cannot fail.
func (b *Bag) Pop() Kind {
	if b.n == 0 {
		b.refill()
	}
	b.n--
	return b.pool[b.n]
}

// Queue keeps a fixed window of upcoming kinds: preview entries for the
// player plus one for the immediate spawn. The window length is constant
// for the queue's lifetime; every Pop refills one kind from the bag.
type Queue struct {
	bag     Bag
	items   [MaxPreview + 1]Kind
	depth   uint8
	preview uint8
}

// NewQueue builds a queue with the given lookahead depth.
func NewQueue(seed uint64, preview uint8) (Queue, error) {
	if preview < 1 || preview > MaxPreview {
		return Queue{}, fmt.Errorf("engine: preview depth %d out of range [1, %d]", preview, MaxPreview)
	}
	q := Queue{bag: NewBag(seed), preview: preview, depth: preview + 1}
	for i := uint8(0); i < q.depth; i++ {
		q.items[i] = q.bag.Pop()
	}
	return q, nil
}

// Pop consumes the next kind and tops the window back up from the bag.
func (q *Queue) Pop() Kind {
	k := q.items[0]
	copy(q.items[:q.depth-1], q.items[1:q.depth])
	q.items[q.depth-1] = q.bag.Pop()
	return k
}

// Preview returns the upcoming kinds without consuming them.
func (q *Queue) Preview() []Kind {
	out := make([]Kind, q.preview)
	copy(out, q.items[:q.preview])
	return out
}
