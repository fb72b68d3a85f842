// Package layout maps logical queue positions onto the block sequence of a
// PinnedQueue.
//
// Absolute positions (counted from the creation of the queue, never reset by
// removals) are partitioned into levels. Level L holds the 2^L consecutive
// positions starting at 2^L-1:
//
//	level 0: 0
//	level 1: 1 2
//	level 2: 3 4 5 6
//	level 3: 7 ... 14
//
// The block that holds absolute position n has capacity 2^Level(n). The
// front block of a queue is the block of the head position; blocks behind it
// follow level by level, so a block's physical index is its level minus the
// level of the head. Nothing is renumbered as the head advances.
//
// All functions are pure and allocation free.
package layout
