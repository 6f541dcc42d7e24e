// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "unsafe"

// Ptr is a queue for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines.
//
// Ownership semantics: the producer transfers ownership to the consumer.
// After enqueueing, the producer should not access the object.
//
// Example:
//
//	type Message struct {
//	    Data []byte
//	}
//
//	q := bbq.NewPtr(1024, 8)
//
//	// Producer
//	msg := &Message{Data: largePayload}
//	q.Enqueue(unsafe.Pointer(msg))
//	// msg ownership transferred - do not use msg after this
//
//	// Consumer
//	ptr, _ := q.Dequeue()
//	msg := (*Message)(ptr)
//	// msg is now owned by consumer
type Ptr struct {
	q *Queue[unsafe.Pointer]
}

// NewPtr creates a queue for unsafe.Pointer values with the given capacity
// and block count. Both round up to the next power of 2.
func NewPtr(capacity, blocks int) *Ptr {
	return &Ptr{q: NewQueue[unsafe.Pointer](capacity, blocks)}
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock immediately if the queue is full.
func (q *Ptr) Enqueue(elem unsafe.Pointer) error {
	return q.q.Enqueue(&elem)
}

// Dequeue removes and returns an element (consumer only).
// Returns (nil, ErrWouldBlock) immediately if the queue is empty.
func (q *Ptr) Dequeue() (unsafe.Pointer, error) {
	return q.q.Dequeue()
}

// Cap returns the queue capacity.
func (q *Ptr) Cap() int {
	return q.q.Cap()
}
