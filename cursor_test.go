// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bbq

import (
	"testing"

	"code.hybscloud.com/atomix"
)

// =============================================================================
// Cursor Packing
// =============================================================================

func TestCursorPacking(t *testing.T) {
	tests := []struct {
		version, index uint64
	}{
		{0, 0},
		{0, 1},
		{0, indexMask},
		{1, 0},
		{7, 4},
		{1<<versionBits - 1, 0},
		{1<<versionBits - 1, indexMask},
	}

	for _, tt := range tests {
		c := makeCursor(tt.version, tt.index)
		if c.version() != tt.version {
			t.Fatalf("makeCursor(%d, %d).version() = %d", tt.version, tt.index, c.version())
		}
		if c.index() != tt.index {
			t.Fatalf("makeCursor(%d, %d).index() = %d", tt.version, tt.index, c.index())
		}
	}
}

// TestCursorOrderIsVersionMajor verifies that numeric comparison of packed
// words orders by version first, which the atomic-max raise relies on.
func TestCursorOrderIsVersionMajor(t *testing.T) {
	if makeCursor(1, 0) <= makeCursor(0, indexMask) {
		t.Fatal("(1,0) should order after (0,max)")
	}
	if makeCursor(3, 5) <= makeCursor(3, 4) {
		t.Fatal("(3,5) should order after (3,4)")
	}
	if makeCursor(2, 0) >= makeCursor(3, 0) {
		t.Fatal("(2,0) should order before (3,0)")
	}
}

// =============================================================================
// Cursor Arithmetic
// =============================================================================

func TestCursorAdd(t *testing.T) {
	c := makeCursor(5, 3).add(2)
	if c.version() != 5 || c.index() != 5 {
		t.Fatalf("add: got (%d,%d), want (5,5)", c.version(), c.index())
	}
}

func TestCursorBump(t *testing.T) {
	tests := []struct {
		name                 string
		c                    cursor
		ring                 uint64
		wantVersion, wantIdx uint64
	}{
		{"no wrap", makeCursor(0, 0), 4, 0, 1},
		{"mid ring", makeCursor(2, 1), 4, 2, 2},
		{"wrap", makeCursor(0, 3), 4, 1, 0},
		{"wrap later version", makeCursor(5, 3), 4, 6, 0},
		{"two blocks", makeCursor(9, 1), 2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.bump(tt.ring)
			if got.version() != tt.wantVersion || got.index() != tt.wantIdx {
				t.Fatalf("bump: got (%d,%d), want (%d,%d)",
					got.version(), got.index(), tt.wantVersion, tt.wantIdx)
			}
		})
	}
}

// =============================================================================
// Atomic Max
// =============================================================================

func TestMaxCursor(t *testing.T) {
	var w atomix.Uint64

	w.StoreRelaxed(uint64(makeCursor(0, 4)))

	// Raise to the next version.
	maxCursor(&w, makeCursor(1, 0))
	if got := cursor(w.LoadRelaxed()); got != makeCursor(1, 0) {
		t.Fatalf("raise: got (%d,%d), want (1,0)", got.version(), got.index())
	}

	// A lower cursor must not lower the word.
	maxCursor(&w, makeCursor(0, indexMask))
	if got := cursor(w.LoadRelaxed()); got != makeCursor(1, 0) {
		t.Fatalf("stale raise changed word: got (%d,%d)", got.version(), got.index())
	}

	// Equal cursor is a no-op.
	maxCursor(&w, makeCursor(1, 0))
	if got := cursor(w.LoadRelaxed()); got != makeCursor(1, 0) {
		t.Fatalf("equal raise changed word: got (%d,%d)", got.version(), got.index())
	}
}
