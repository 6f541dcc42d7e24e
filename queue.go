// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// status classifies the outcome of per-block entry operations.
type status int

const (
	statusSuccess status = iota
	statusBlockDone    // no slots left in the block at its current version
	statusNoEntry      // nothing to take and no opposite operation in flight
	statusNotAvailable // the opposite endpoint is mid-operation on the slot
)

// Queue is a single-producer single-consumer block-structured bounded
// FIFO queue.
//
// The buffer is a ring of equal-sized blocks. Producer and consumer each
// hold a private head cursor naming their current block and progress
// block-by-block, so cross-endpoint synchronization is amortized over a
// block's worth of entries instead of paid per operation. Within a block,
// an entry passes through four stages (allocate, commit, reserve, consume)
// tracked by packed version+index cursor words; the version disambiguates
// earlier rounds of the same block after the ring wraps, and a block is
// recycled only once the consumer has fully drained its previous round.
//
// Memory: O(capacity) slots plus a few cache lines of cursors per block.
type Queue[T any] struct {
	_       pad
	phead   atomix.Uint64 // producer's current block
	_       pad
	chead   atomix.Uint64 // consumer's current block
	_       pad
	blocks  []block[T]
	ring    uint64 // number of blocks
	entries uint64 // slots per block
}

// NewQueue creates a queue with the given total capacity split across the
// given number of ring blocks. Both round up to the next power of 2, which
// keeps the capacity divisible by the block count.
//
// Panics if capacity < 2, blocks < 2, blocks exceeds capacity, or the
// per-block slot count does not fit the cursor index field.
func NewQueue[T any](capacity, blocks int) *Queue[T] {
	if capacity < 2 {
		panic("bbq: capacity must be >= 2")
	}
	if blocks < 2 {
		panic("bbq: block count must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	ring := uint64(roundToPow2(blocks))
	if ring > n {
		panic("bbq: block count must not exceed capacity")
	}
	entries := n / ring
	if entries > indexMask {
		panic("bbq: too many entries in one block")
	}

	q := &Queue[T]{
		blocks:  make([]block[T], ring),
		ring:    ring,
		entries: entries,
	}
	for i := range q.blocks {
		b := &q.blocks[i]
		b.data = make([]T, entries)
		b.init(entries)
	}
	q.blocks[0].init(0)
	return q
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *Queue[T]) Enqueue(elem *T) error {
	for {
		ph := cursor(q.phead.LoadRelaxed())
		b := &q.blocks[ph.index()]

		i, st := q.allocateEntry(b)
		if st == statusSuccess {
			q.commitEntry(b, i, elem)
			return nil
		}

		// Block exhausted at its current version: move to the next block,
		// or report full while the consumer still owes work on it.
		if q.advancePHead(ph) != statusSuccess {
			return ErrWouldBlock
		}
	}
}

// allocateEntry claims the next free slot of b for writing. The claim is a
// fetch-add on the packed cursor word; +1 advances the index field.
func (q *Queue[T]) allocateEntry(b *block[T]) (uint64, status) {
	if cursor(b.alloc.LoadRelaxed()).index() >= q.entries {
		return 0, statusBlockDone
	}
	old := cursor(b.alloc.AddAcqRel(1) - 1)
	if old.index() >= q.entries {
		return 0, statusBlockDone
	}
	return old.index(), statusSuccess
}

// commitEntry publishes elem at slot i. The release increment of comm
// makes the stored payload visible to a consumer that observes comm past i.
func (q *Queue[T]) commitEntry(b *block[T], i uint64, elem *T) {
	b.data[i] = *elem
	b.comm.AddAcqRel(1)
}

// advancePHead moves the producer to the next ring block. The next block
// is reusable only once the consumer has fully drained it at the
// producer's current version; entering it raises its alloc and comm to the
// next version, so a stale observation of the previous round can never
// succeed against recycled content.
func (q *Queue[T]) advancePHead(ph cursor) status {
	nb := &q.blocks[(ph.index()+1)%q.ring]

	cons := cursor(nb.cons.LoadAcquire())
	if cons.version() < ph.version() ||
		(cons.version() == ph.version() && cons.index() != q.entries) {
		resv := cursor(nb.resv.LoadRelaxed())
		if resv.index() == cons.index() {
			return statusNoEntry // no reader in flight: producer lapped the consumer
		}
		return statusNotAvailable // a reader is mid-consume
	}

	next := makeCursor(ph.version()+1, 0)
	maxCursor(&nb.alloc, next)
	maxCursor(&nb.comm, next)
	q.phead.StoreRelaxed(uint64(ph.bump(q.ring)))
	return statusSuccess
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	for {
		ch := cursor(q.chead.LoadRelaxed())
		b := &q.blocks[ch.index()]

		f, st := q.reserveEntry(b)
		switch st {
		case statusSuccess:
			return q.consumeEntry(b, f.index()), nil
		case statusBlockDone:
			if q.advanceCHead(ch) {
				continue
			}
		}
		var zero T
		return zero, ErrWouldBlock
	}
}

// reserveEntry claims the next committed slot of b for reading and returns
// the claimed cursor. Only committed slots whose allocation has fully
// settled are taken; a slot whose producer claim is still outstanding
// reports statusNotAvailable.
func (q *Queue[T]) reserveEntry(b *block[T]) (cursor, status) {
	sw := spin.Wait{}
	for {
		resv := cursor(b.resv.LoadRelaxed())
		if resv.index() >= q.entries {
			return resv, statusBlockDone
		}
		comm := cursor(b.comm.LoadAcquire())
		if resv.index() == comm.index() {
			return resv, statusNoEntry
		}
		if comm.index() != q.entries {
			alloc := cursor(b.alloc.LoadRelaxed())
			if alloc.index() != comm.index() {
				return resv, statusNotAvailable
			}
		}
		if b.resv.CompareAndSwapAcqRel(uint64(resv), uint64(resv.add(1))) {
			return resv, statusSuccess
		}
		sw.Once()
	}
}

// consumeEntry reads slot i and retires it. The slot is cleared so the
// queue does not pin objects the payload references; the release increment
// of cons hands the slot back for the block's next version.
func (q *Queue[T]) consumeEntry(b *block[T], i uint64) T {
	elem := b.data[i]
	var zero T
	b.data[i] = zero
	b.cons.AddAcqRel(1)
	return elem
}

// advanceCHead moves the consumer to the next ring block. The move is
// possible only once the producer has begun the version following the
// consumer's current one there; entering the block raises its cons and
// resv to that version.
func (q *Queue[T]) advanceCHead(ch cursor) bool {
	nb := &q.blocks[(ch.index()+1)%q.ring]

	comm := cursor(nb.comm.LoadAcquire())
	if comm.version() < ch.version()+1 {
		return false
	}

	next := makeCursor(ch.version()+1, 0)
	maxCursor(&nb.cons, next)
	maxCursor(&nb.resv, next)
	q.chead.StoreRelaxed(uint64(ch.bump(q.ring)))
	return true
}

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int {
	return int(q.ring * q.entries)
}

// Blocks returns the number of ring blocks.
func (q *Queue[T]) Blocks() int {
	return int(q.ring)
}

// BlockCap returns the number of payload slots per block.
func (q *Queue[T]) BlockCap() int {
	return int(q.entries)
}
