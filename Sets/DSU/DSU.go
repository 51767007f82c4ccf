package DSU

import (
	"fmt"
	"io"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// DSU partitions the fixed domain {0, ..., n-1} into disjoint sets. It uses union by
// size and full path compression, giving amortized near constant Find and Union.
// The worst case of a single call is O(log n) since union by size bounds the height.
type DSU struct {
	parent []int
	size   []int // only meaningful at roots
	sets   int
}

// New DSU of n singletons. Returns an error wrapping Go_Structs.ErrInvalidArgument if n<0.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, Go_Structs.InvalidArgument("dsu size %d is negative", n)
	}
	u := &DSU{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range u.parent {
		u.parent[i], u.size[i] = i, 1
	}
	return u, nil
}

func (u *DSU) in(x int) bool {
	return x >= 0 && x < len(u.parent)
}

// Find the representative of x's set, -1 if x is out of range. Every node on the
// path is rewired to point at the root.
// Time: amortized O(α(n))
func (u *DSU) Find(x int) int {
	if !u.in(x) {
		return -1
	}
	r := x
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[x] != r {
		u.parent[x], x = r, u.parent[x]
	}
	return r
}

// Union the sets of x and y. Returns false if either is out of range or they are
// already in the same set. The smaller tree goes under the larger; on ties y's root
// goes under x's root.
func (u *DSU) Union(x, y int) bool {
	if !u.in(x) || !u.in(y) {
		return false
	}
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return false
	}
	if u.size[rx] < u.size[ry] {
		rx, ry = ry, rx
	}
	u.parent[ry] = rx
	u.size[rx] += u.size[ry]
	u.sets--
	return true
}

// Same reports whether x and y are in the same set. Out of range elements are in no set.
func (u *DSU) Same(x, y int) bool {
	rx := u.Find(x)
	return rx != -1 && rx == u.Find(y)
}

// SetSize is the size of x's set, 0 if x is out of range.
func (u *DSU) SetSize(x int) int {
	if r := u.Find(x); r != -1 {
		return u.size[r]
	}
	return 0
}

// Count of disjoint sets.
func (u *DSU) Count() int {
	return u.sets
}

// Len of the domain.
func (u *DSU) Len() int {
	return len(u.parent)
}

// Dump the parent array. The format is not stable.
func (u *DSU) Dump(w io.Writer) {
	fmt.Fprintf(w, "sets: %d\n", u.sets)
	for i, p := range u.parent {
		if p == i {
			fmt.Fprintf(w, "%d: root size %d\n", i, u.size[i])
		} else {
			fmt.Fprintf(w, "%d -> %d\n", i, p)
		}
	}
}
