package Ranges

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// Segment is a recursive segment tree answering inclusive range sums with point
// assignment. Node 0 covers [0, n-1]; node i has children 2i+1 and 2i+2, each
// covering one half split at mid. The array has 4n slots, an upper bound for this layout.
type Segment struct {
	t []int
	n int
}

// NewSegment builds the tree from a snapshot of a; a is not retained. An empty a
// gives a valid tree on which every query fails.
// Time: O(n)
func NewSegment(a []int) *Segment {
	u := &Segment{t: make([]int, 4*len(a)), n: len(a)}
	if u.n > 0 {
		u.build(a, 0, 0, u.n-1)
	}
	return u
}

func (u *Segment) build(a []int, node, l, r int) int {
	if l == r {
		u.t[node] = a[l]
	} else {
		m := mid(l, r)
		u.t[node] = u.build(a, 2*node+1, l, m) + u.build(a, 2*node+2, m+1, r)
	}
	return u.t[node]
}

// Len is n.
func (u *Segment) Len() int {
	return u.n
}

func (u *Segment) check(i int) error {
	if u.n == 0 {
		return errors.Wrapf(Go_Structs.ErrEmpty, "index %d", i)
	}
	if i < 0 || i >= u.n {
		return Go_Structs.OutOfRange(i, 0, u.n)
	}
	return nil
}

// Set index i to v. Returns an error wrapping Go_Structs.ErrOutOfRange if i isn't in [0, n).
// Time: O(log n)
func (u *Segment) Set(i, v int) error {
	if i < 0 || i >= u.n {
		return Go_Structs.OutOfRange(i, 0, u.n)
	}
	u.set(0, 0, u.n-1, i, v)
	return nil
}

func (u *Segment) set(node, l, r, i, v int) {
	if l == r {
		u.t[node] = v
		return
	}
	if m := mid(l, r); i <= m {
		u.set(2*node+1, l, m, i, v)
	} else {
		u.set(2*node+2, m+1, r, i, v)
	}
	u.t[node] = u.t[2*node+1] + u.t[2*node+2]
}

// Sum of the inclusive range [l, r]. The error wraps Go_Structs.ErrEmpty on an empty tree,
// Go_Structs.ErrInvalidArgument if l>r, and Go_Structs.ErrOutOfRange if a bound isn't in [0, n).
// Time: O(log n)
func (u *Segment) Sum(l, r int) (int, error) {
	if err := u.check(l); err != nil {
		return 0, err
	}
	if err := u.check(r); err != nil {
		return 0, err
	}
	if l > r {
		return 0, Go_Structs.InvalidArgument("range [%d, %d] is reversed", l, r)
	}
	return u.sum(0, 0, u.n-1, l, r), nil
}

func (u *Segment) sum(node, l, r, ql, qr int) int {
	if qr < l || r < ql {
		return 0
	}
	if ql <= l && r <= qr {
		return u.t[node]
	}
	m := mid(l, r)
	return u.sum(2*node+1, l, m, ql, qr) + u.sum(2*node+2, m+1, r, ql, qr)
}

// Get the value at index i.
func (u *Segment) Get(i int) (int, error) {
	return u.Sum(i, i)
}

// Dump the occupied slots of the internal array. The format is not stable.
func (u *Segment) Dump(w io.Writer) {
	var dump func(node, l, r, d int)
	dump = func(node, l, r, d int) {
		fmt.Fprintf(w, "%*s[%d..%d]=%d\n", 2*d, "", l, r, u.t[node])
		if l < r {
			m := mid(l, r)
			dump(2*node+1, l, m, d+1)
			dump(2*node+2, m+1, r, d+1)
		}
	}
	if u.n > 0 {
		dump(0, 0, u.n-1, 0)
	}
}
