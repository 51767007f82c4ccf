package Trees

import (
	"io"

	"github.com/g-m-twostay/go-structs/Sets"
)

// Tree represents a balanced binary search tree of unique ints.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, calling Minimum on
// an empty tree returns (x int, false bool), and x should not be used.
// Walks call a visitor on each element until it returns false. The tree
// must not be modified by the visitor; any modification invalidates walks
// in progress.
type Tree interface {
	Sets.Set
	//Minimum element of the tree.
	Minimum() (int, bool)
	//Maximum element of the tree.
	Maximum() (int, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v int) (int, bool)
	//Successor returns the smallest element greater than v.
	Successor(v int) (int, bool)
	//Height of the tree in edges. A single node has height 0 and an empty tree -1.
	Height() int
	//InOrder walk, ascending.
	InOrder(f func(int) bool)
	//LevelOrder walk, top down and left to right within a level.
	LevelOrder(f func(int) bool)
	//Corrupt returns whether the tree violates the ordering or balancing
	//properties of the specific implementation.
	Corrupt() bool
	//Dump writes a drawing of the tree. The format is not stable.
	Dump(w io.Writer)
}
