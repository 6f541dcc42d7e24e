// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import "code.hybscloud.com/atomix"

// block is one ring segment: a fixed array of payload slots plus the four
// cursors an entry passes through (allocated, committed, reserved,
// consumed). alloc and comm are written by the producer, resv and cons by
// the consumer; each cursor sits on its own cache line so the two
// endpoints never bounce a line between cores on the per-entry path.
//
// Per version v the cursors are monotone and ordered:
//
//	0 <= cons.index <= resv.index <= comm.index <= alloc.index <= NE
//
// A slot i holds a consumer-owned payload while i < comm.index and
// i >= cons.index at version v.
type block[T any] struct {
	_     pad
	alloc atomix.Uint64 // highest slot claimed for writing
	_     pad
	comm  atomix.Uint64 // highest slot published
	_     pad
	resv  atomix.Uint64 // highest slot claimed for reading
	_     pad
	cons  atomix.Uint64 // highest slot finished reading
	_     pad
	data  []T
}

// init sets all four cursors to (0, index). Block 0 starts at (0, 0);
// every other block starts at (0, NE), already fully drained at version 0,
// so the producer's first advancement into it finds it ready for version 1.
func (b *block[T]) init(index uint64) {
	f := uint64(makeCursor(0, index))
	b.alloc.StoreRelaxed(f)
	b.comm.StoreRelaxed(f)
	b.resv.StoreRelaxed(f)
	b.cons.StoreRelaxed(f)
}
