// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bbq provides a block-structured bounded FIFO queue for
// single-producer single-consumer communication.
//
// The buffer is a ring of equal-sized blocks. Producer and consumer each
// progress block-by-block with a private head cursor, so the cost of
// cross-core synchronization is amortized over a block's worth of entries
// instead of paid per operation. Within a block, every entry passes through
// four stages tracked by per-block cursors:
//
//	allocate  producer claims a slot
//	commit    producer publishes its payload
//	reserve   consumer claims the right to read it
//	consume   consumer completes the read
//
// Each cursor is a single 64-bit word packing a version and an index, so a
// reader can never observe a torn combination. The version increases every
// time a block is recycled around the ring and disambiguates stale
// observations of an older round of the same block: the producer re-enters
// a block only once the consumer has fully drained its previous round.
//
// # Quick Start
//
// Direct constructor:
//
//	q := bbq.NewQueue[Event](1024, 8) // 8 blocks of 128 slots
//
// Builder API:
//
//	q := bbq.Build[Event](bbq.New(1024))            // default block count
//	q := bbq.Build[Event](bbq.New(1024).Blocks(16)) // explicit shape
//	q := bbq.New(4096).BuildPtr()                   // unsafe.Pointer payloads
//
// # Basic Usage
//
//	q := bbq.NewQueue[int](1024, 8)
//
//	// Enqueue (non-blocking)
//	value := 42
//	err := q.Enqueue(&value)
//	if bbq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if bbq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Pipeline Pattern
//
//	q := bbq.NewQueue[Data](1024, 8)
//
//	go func() { // Producer stage
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer stage
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// # Queue Variants
//
// Three flavors are available for different payload kinds:
//
//	Queue[T]  - generic type-safe queue for any type
//	Indirect  - queue for uintptr values (pool indices, handles)
//	Ptr       - queue for unsafe.Pointer (zero-copy pointer passing)
//
// # Capacity and Block Count
//
// Capacity and block count round up to the next power of 2, which keeps
// the capacity divisible by the block count. Every block then holds
// capacity/blocks slots; the slot count per block must fit the cursor
// index field (fewer than 2^20 slots per block).
//
// The block count trades contention against granularity: more blocks means
// the endpoints meet more often but wait on each other across smaller
// units. The builder defaults to capacity/8 clamped to [2, 8].
//
// Length is intentionally not provided because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
//
// # Error Handling
//
// Operations return [ErrWouldBlock] when they cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency. Both
// "full" (consumer still owes work on the producer's next block) and
// "empty" (no committed payload, or a producer claim still outstanding)
// surface as the same signal; callers retry, back off, or shed load.
//
//	bbq.IsWouldBlock(err)  // true if queue full/empty
//	bbq.IsSemantic(err)    // true if control flow signal
//	bbq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Thread Safety
//
// Exactly one goroutine may enqueue and exactly one goroutine may dequeue.
// Operations never block: they complete immediately or return
// ErrWouldBlock. There is no cancellation and no timeout; a caller that
// spins on ErrWouldBlock is performing its own busy-wait.
//
// Violating the single-producer single-consumer constraint causes
// undefined behavior including data corruption and races.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm verification.
// The race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established through atomic memory orderings (acquire-release semantics).
//
// The block cursors protect non-atomic payload slots through acquire and
// release operations on separate variables, so the race detector may
// report false positives on concurrent use. Tests incompatible with race
// detection are excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package bbq
