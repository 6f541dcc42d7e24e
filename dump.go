// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"fmt"
	"io"
)

// Dump writes the per-block cursor state and payload slots to w.
//
// Dump is a test-harness affordance: it reads cursors and slots without
// coordinating with the endpoints, so the output is only meaningful while
// neither endpoint is active.
func (q *Queue[T]) Dump(w io.Writer) {
	ph := cursor(q.phead.LoadRelaxed())
	ch := cursor(q.chead.LoadRelaxed())
	fmt.Fprintf(w, "phead=(%d,%d) chead=(%d,%d)\n",
		ph.version(), ph.index(), ch.version(), ch.index())

	for i := range q.blocks {
		b := &q.blocks[i]
		a := cursor(b.alloc.LoadRelaxed())
		c := cursor(b.comm.LoadRelaxed())
		r := cursor(b.resv.LoadRelaxed())
		n := cursor(b.cons.LoadRelaxed())
		fmt.Fprintf(w, "block %d: alloc=(%d,%d) comm=(%d,%d) resv=(%d,%d) cons=(%d,%d)\n",
			i,
			a.version(), a.index(),
			c.version(), c.index(),
			r.version(), r.index(),
			n.version(), n.index())
		fmt.Fprintf(w, "block %d: data=%v\n", i, b.data)
	}
}
