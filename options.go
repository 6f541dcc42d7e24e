// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

// Options configures queue creation.
type Options struct {
	// Capacity (rounds up to next power of 2)
	capacity int

	// Number of ring blocks (rounds up to next power of 2)
	blocks int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Default block count
//	q := bbq.Build[Event](bbq.New(1024))
//
//	// Explicit block shape: 16 blocks of 64 slots
//	q := bbq.Build[Event](bbq.New(1024).Blocks(16))
//
//	// Pointer queue for zero-copy handoff
//	q := bbq.New(4096).BuildPtr()
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2. For example, capacity=1000
// results in actual capacity=1024.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("bbq: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Blocks sets the number of ring blocks. The block count rounds up to the
// next power of 2 and must not exceed the capacity.
//
// More blocks means the endpoints hand blocks over more often but wait on
// each other across smaller units; fewer blocks amortize synchronization
// over longer runs of entries. When not set, the builder picks
// capacity/8 clamped to [2, 8].
func (b *Builder) Blocks(n int) *Builder {
	b.opts.blocks = n
	return b
}

func (b *Builder) blockCount() int {
	if b.opts.blocks != 0 {
		return b.opts.blocks
	}
	n := roundToPow2(b.opts.capacity) / 8
	if n < 2 {
		return 2
	}
	if n > 8 {
		return 8
	}
	return n
}

// Build creates a Queue[T] from the builder configuration.
func Build[T any](b *Builder) *Queue[T] {
	return NewQueue[T](b.opts.capacity, b.blockCount())
}

// BuildIndirect creates an Indirect queue for uintptr values.
func (b *Builder) BuildIndirect() *Indirect {
	return NewIndirect(b.opts.capacity, b.blockCount())
}

// BuildPtr creates a Ptr queue for unsafe.Pointer values.
func (b *Builder) BuildPtr() *Ptr {
	return NewPtr(b.opts.capacity, b.blockCount())
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
