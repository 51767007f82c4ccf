package Trees

import (
	"golang.org/x/exp/constraints"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// A node record in the arena, addressed by its index.
// The zero value is meaningful.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// base is an arena of node records. ifs[0] is the NIL sentinel: a black loopback whose p may be written by
// deletions. Values and colors are parallel to ifs, so vs[0] and red[0] are never used.
type base[S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S]
	vs         []int
	red        Go_Structs.BitArray
}

func makeBase[S constraints.Unsigned](capacity int) base[S] {
	ifs := make([]info[S], 1, capacity+1)
	return base[S]{ifs: ifs, vs: make([]int, 1, capacity+1), red: Go_Structs.NewBitArray(capacity + 1)}
}

func (u *base[S]) isRed(i S) bool {
	return u.red.Get(int(i))
}

func (u *base[S]) paint(i S, red bool) {
	u.red.Put(int(i), red)
}

// alloc a red node holding v, reusing a freed index when there is one.
// Time: O(1) amortized; Space: O(1)
func (u *base[S]) alloc(v int) (i S) {
	if i = u.popFree(); i != 0 {
		u.ifs[i], u.vs[i] = info[S]{}, v
	} else {
		i = S(len(u.ifs))
		u.ifs = append(u.ifs, info[S]{})
		u.vs = append(u.vs, v)
		u.red.Grow(len(u.ifs))
	}
	u.red.Up(int(i))
	return
}

// release index a so that alloc can hand it out again.
func (u *base[S]) release(a S) {
	u.red.Down(int(a))
	u.addFree(a)
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// rotateLeft around x. The left child of x's right child is re-parented only when it's a real node, so
// rotations never touch NIL.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateLeft(x S) {
	y := u.ifs[x].r
	u.ifs[x].r = u.ifs[y].l
	if b := u.ifs[y].l; b != 0 {
		u.ifs[b].p = x
	}
	u.replaceChild(x, y)
	u.ifs[y].l = x
	u.ifs[x].p = y
}

// rotateRight around x, mirrors rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[S]) rotateRight(x S) {
	y := u.ifs[x].l
	u.ifs[x].l = u.ifs[y].r
	if b := u.ifs[y].r; b != 0 {
		u.ifs[b].p = x
	}
	u.replaceChild(x, y)
	u.ifs[y].r = x
	u.ifs[x].p = y
}

// replaceChild hooks b to the parent of a in the place of a. b.p is set even when b is NIL.
func (u *base[S]) replaceChild(a, b S) {
	pa := u.ifs[a].p
	if pa == 0 {
		u.root = b
	} else if a == u.ifs[pa].l {
		u.ifs[pa].l = b
	} else {
		u.ifs[pa].r = b
	}
	u.ifs[b].p = pa
}

// min is the leftmost index under i, i must not be NIL.
func (u *base[S]) min(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[S]) max(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// search for v, returns 0 when absent.
// Time: O(log(n)); Space: O(1)
func (u *base[S]) search(v int) S {
	for cur := u.root; cur != 0; {
		if v < u.vs[cur] {
			cur = u.ifs[cur].l
		} else if v > u.vs[cur] {
			cur = u.ifs[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// next in-order index after i using parent links, 0 after the last.
// Time: O(1) amortized; Space: O(1)
func (u *base[S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.min(r)
	}
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if i == u.ifs[p].l {
			return p
		}
	}
	return 0
}
