// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// cursor packs a block version and an in-block index into one 64-bit word
// so that the two halves are always read and written together: a torn
// (version, index) combination can never be observed.
//
// Layout: version in the high 44 bits, index in the low 20 bits. With the
// version on top, numeric order of packed words is version-major order, so
// raising a cursor to a later version is a plain CAS-max on the word, and
// adding 1 to the word advances the index.
type cursor uint64

const (
	versionBits = 44
	indexBits   = 20
	indexMask   = 1<<indexBits - 1
)

func makeCursor(version, index uint64) cursor {
	return cursor(version<<indexBits | index)
}

func (c cursor) version() uint64 { return uint64(c) >> indexBits }

func (c cursor) index() uint64 { return uint64(c) & indexMask }

// add returns c with the index advanced by n. The version is untouched;
// callers keep the index field far from overflowing into the version.
func (c cursor) add(n uint64) cursor { return c + cursor(n) }

// bump advances a head cursor one position around a ring of the given
// size, entering the next version when the index wraps.
func (c cursor) bump(ring uint64) cursor {
	idx := c.index() + 1
	if idx >= ring {
		return makeCursor(c.version()+1, idx%ring)
	}
	return makeCursor(c.version(), idx)
}

// maxCursor raises w to c unless w already holds an equal or later cursor.
// A CAS loop is required: the word's owning endpoint may be incrementing
// the index field while the raise is in flight, and a plain store could
// bury that increment.
func maxCursor(w *atomix.Uint64, c cursor) {
	sw := spin.Wait{}
	for {
		old := cursor(w.LoadRelaxed())
		if old >= c {
			return
		}
		if w.CompareAndSwapAcqRel(uint64(old), uint64(c)) {
			return
		}
		sw.Once()
	}
}
