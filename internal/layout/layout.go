package layout

import "math/bits"

// Level returns the level of absolute position n, floor(log2(n+1)).
func Level(n int) int {
	return bits.Len(uint(n)+1) - 1
}

// Offset returns the position of n within its level.
func Offset(n int) int {
	u := uint(n) + 1
	return int(u &^ (1 << (bits.Len(u) - 1)))
}

// Capacity returns the number of positions in the given level.
func Capacity(level int) int {
	return 1 << level
}

// Start returns the first absolute position of the given level.
func Start(level int) int {
	return Capacity(level) - 1
}

// Locate resolves the element index positions behind head to the physical
// block index (outer) and the offset from that block's current front (inner).
//
// Only the front block has given up slots to removals; every block behind it
// still starts at the first position of its level. A target whose in-level
// offset is smaller than the head's therefore lives in a later block and is
// addressed from that block's start, never by subtracting the head's offset.
func Locate(head, index int) (outer, inner int) {
	a := head + index
	levelA, levelHead := Level(a), Level(head)

	outer = levelA - levelHead
	if outer == 0 {
		return 0, Offset(a) - Offset(head)
	}
	return outer, Offset(a)
}
