// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// Indirect is a queue for uintptr values.
//
// Indirect passes indices or handles instead of full objects. This is
// useful for buffer pools, object pools, or any index-based data structure.
//
// Example (buffer pool):
//
//	pool := make([][]byte, 1024)
//	freeList := bbq.NewIndirect(1024, 8)
//
//	// Initialize pool
//	for i := range pool {
//	    pool[i] = make([]byte, 4096)
//	    freeList.Enqueue(uintptr(i))
//	}
//
//	// Allocate
//	idx, _ := freeList.Dequeue()
//	buf := pool[idx]
//
//	// Free
//	freeList.Enqueue(idx)
type Indirect struct {
	q *Queue[uintptr]
}

// NewIndirect creates a queue for uintptr values with the given capacity
// and block count. Both round up to the next power of 2.
func NewIndirect(capacity, blocks int) *Indirect {
	return &Indirect{q: NewQueue[uintptr](capacity, blocks)}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock immediately if the queue is full.
func (q *Indirect) Enqueue(elem uintptr) error {
	return q.q.Enqueue(&elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (0, ErrWouldBlock) immediately if the queue is empty.
func (q *Indirect) Dequeue() (uintptr, error) {
	return q.q.Dequeue()
}

// Cap returns the queue capacity.
func (q *Indirect) Cap() int {
	return q.q.Cap()
}
