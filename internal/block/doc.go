// Package block provides the fixed-capacity storage segment behind
// PinnedQueue.
//
// A Block allocates its backing slice once and never grows it, so a pointer
// to a slot stays valid for as long as the Block is reachable. Elements are
// appended at the back and removed from the front; a removed slot is zeroed
// and never reused. A Block does not know its position in the queue.
//
// Misuse (appending to a full Block, removing from an empty one, replacing a
// slot that holds no element) indicates a bug in the caller's index
// arithmetic and panics with one of the package's sentinel errors.
package block
