package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-structs/Queues"
)

// RB is a Red-Black tree. Nodes live in an arena and are addressed by uint32 indexes; index 0 is the
// shared NIL leaf. Colors are kept in a bit array parallel to the arena.
type RB struct {
	base[uint32]
	sz int
}

var _ Tree = (*RB)(nil)

// NewRB with room for capacity nodes before the arena grows.
func NewRB(capacity int) *RB {
	return &RB{base: makeBase[uint32](max(capacity, 0))}
}

// Time: O(1); Space: O(1)
func (u *RB) Size() int {
	return u.sz
}

func (u *RB) Empty() bool {
	return u.sz == 0
}

// Time: O(log(n)); Space: O(1)
func (u *RB) Has(v int) bool {
	return u.search(v) != 0
}

// Insert v as a red leaf and restore the coloring. Returns false if v is already present.
// Time: O(log(n)); Space: O(1) amortized
func (u *RB) Insert(v int) bool {
	y, x := uint32(0), u.root
	for x != 0 {
		y = x
		if v < u.vs[x] {
			x = u.ifs[x].l
		} else if v > u.vs[x] {
			x = u.ifs[x].r
		} else {
			return false
		}
	}
	z := u.alloc(v)
	u.ifs[z].p = y
	if y == 0 {
		u.root = z
	} else if v < u.vs[y] {
		u.ifs[y].l = z
	} else {
		u.ifs[y].r = z
	}
	u.insertFixup(z)
	u.sz++
	return true
}

func (u *RB) insertFixup(z uint32) {
	for u.isRed(u.ifs[z].p) {
		p := u.ifs[z].p
		g := u.ifs[p].p
		if p == u.ifs[g].l {
			if y := u.ifs[g].r; u.isRed(y) { //red uncle, push the blackness down from g
				u.paint(p, false)
				u.paint(y, false)
				u.paint(g, true)
				z = g
			} else {
				if z == u.ifs[p].r { //inner grandchild, turn into outer
					z = p
					u.rotateLeft(z)
					p = u.ifs[z].p
				}
				u.paint(p, false)
				u.paint(g, true)
				u.rotateRight(g)
			}
		} else {
			if y := u.ifs[g].l; u.isRed(y) {
				u.paint(p, false)
				u.paint(y, false)
				u.paint(g, true)
				z = g
			} else {
				if z == u.ifs[p].l {
					z = p
					u.rotateRight(z)
					p = u.ifs[z].p
				}
				u.paint(p, false)
				u.paint(g, true)
				u.rotateLeft(g)
			}
		}
	}
	u.paint(u.root, false)
}

// Remove v. A node with 2 children takes the value of its in-order successor, whose node is spliced out
// instead. Returns false if v isn't present.
// Time: O(log(n)); Space: O(1)
func (u *RB) Remove(v int) bool {
	z := u.search(v)
	if z == 0 {
		return false
	}
	y := z
	if u.ifs[z].l != 0 && u.ifs[z].r != 0 {
		y = u.min(u.ifs[z].r)
		u.vs[z] = u.vs[y]
	}
	x := u.ifs[y].l
	if x == 0 {
		x = u.ifs[y].r
	}
	u.replaceChild(y, x) //x.p is written even if x is NIL, deleteFixup climbs from it.
	if !u.isRed(y) {
		u.deleteFixup(x)
	}
	u.release(y)
	u.sz--
	return true
}

// deleteFixup resolves the extra black on x.
func (u *RB) deleteFixup(x uint32) {
	for x != u.root && !u.isRed(x) {
		p := u.ifs[x].p
		if x == u.ifs[p].l {
			w := u.ifs[p].r
			if u.isRed(w) { //red sibling, rotate to get a black one
				u.paint(w, false)
				u.paint(p, true)
				u.rotateLeft(p)
				w = u.ifs[p].r
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) { //both nephews black, move the extra black up
				u.paint(w, true)
				x = p
			} else {
				if !u.isRed(u.ifs[w].r) { //near nephew red, make it the far one
					u.paint(u.ifs[w].l, false)
					u.paint(w, true)
					u.rotateRight(w)
					w = u.ifs[p].r
				}
				u.paint(w, u.isRed(p))
				u.paint(p, false)
				u.paint(u.ifs[w].r, false)
				u.rotateLeft(p)
				x = u.root
			}
		} else {
			w := u.ifs[p].l
			if u.isRed(w) {
				u.paint(w, false)
				u.paint(p, true)
				u.rotateRight(p)
				w = u.ifs[p].l
			}
			if !u.isRed(u.ifs[w].l) && !u.isRed(u.ifs[w].r) {
				u.paint(w, true)
				x = p
			} else {
				if !u.isRed(u.ifs[w].l) {
					u.paint(u.ifs[w].r, false)
					u.paint(w, true)
					u.rotateLeft(w)
					w = u.ifs[p].l
				}
				u.paint(w, u.isRed(p))
				u.paint(p, false)
				u.paint(u.ifs[w].l, false)
				u.rotateRight(p)
				x = u.root
			}
		}
	}
	u.paint(x, false)
}

// Time: O(log(n)); Space: O(1)
func (u *RB) Minimum() (int, bool) {
	if u.root == 0 {
		return 0, false
	}
	return u.vs[u.min(u.root)], true
}

// Time: O(log(n)); Space: O(1)
func (u *RB) Maximum() (int, bool) {
	if u.root == 0 {
		return 0, false
	}
	return u.vs[u.max(u.root)], true
}

// Predecessor is the greatest element less than v; v needn't be in the tree.
// Time: O(log(n)); Space: O(1)
func (u *RB) Predecessor(v int) (p int, ok bool) {
	for cur := u.root; cur != 0; {
		if u.vs[cur] < v {
			p, ok = u.vs[cur], true
			cur = u.ifs[cur].r
		} else {
			cur = u.ifs[cur].l
		}
	}
	return
}

// Successor is the smallest element greater than v; v needn't be in the tree.
// Time: O(log(n)); Space: O(1)
func (u *RB) Successor(v int) (s int, ok bool) {
	for cur := u.root; cur != 0; {
		if u.vs[cur] > v {
			s, ok = u.vs[cur], true
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	return
}

// Height in edges, -1 when empty.
// Time: O(n); Space: O(log(n))
func (u *RB) Height() int {
	var h func(i uint32) int
	h = func(i uint32) int {
		if i == 0 {
			return -1
		}
		return 1 + max(h(u.ifs[i].l), h(u.ifs[i].r))
	}
	return h(u.root)
}

// BlackHeight is the number of black nodes on any path from the root down to a NIL leaf, NIL excluded.
// Time: O(log(n)); Space: O(1)
func (u *RB) BlackHeight() (bh int) {
	for cur := u.root; cur != 0; cur = u.ifs[cur].l {
		if !u.isRed(cur) {
			bh++
		}
	}
	return
}

func (u *RB) Range(f func(int) bool) {
	u.InOrder(f)
}

// InOrder walks by parent links, so it needs no stack.
// Time: O(n); Space: O(1)
func (u *RB) InOrder(f func(int) bool) {
	if u.root == 0 {
		return
	}
	for cur := u.min(u.root); cur != 0 && f(u.vs[cur]); cur = u.next(cur) {
	}
}

// Time: O(n); Space: O(n)
func (u *RB) LevelOrder(f func(int) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[uint32](uint(u.sz/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if !f(u.vs[cur]) {
			return
		}
		if l := u.ifs[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ifs[cur].r; r != 0 {
			q.Push(r)
		}
	}
}

// Corrupt checks the ordering, the parent links, that the root is black, that no red node has a red child,
// and that every root to leaf path has the same number of black nodes.
// Time: O(n); Space: O(log(n))
func (u *RB) Corrupt() bool {
	if u.isRed(0) || u.isRed(u.root) || u.root != 0 && u.ifs[u.root].p != 0 {
		return true
	}
	cnt := 0
	var check func(i uint32, lo, hi *int) (int, bool)
	check = func(i uint32, lo, hi *int) (int, bool) {
		if i == 0 {
			return 0, true
		}
		cnt++
		v, n := u.vs[i], u.ifs[i]
		if lo != nil && v <= *lo || hi != nil && v >= *hi {
			return 0, false
		}
		for _, c := range [2]uint32{n.l, n.r} {
			if c != 0 && (u.ifs[c].p != i || u.isRed(i) && u.isRed(c)) {
				return 0, false
			}
		}
		lb, ok := check(n.l, lo, &v)
		if !ok {
			return 0, false
		}
		rb, ok := check(n.r, &v, hi)
		if !ok || lb != rb {
			return 0, false
		}
		if !u.isRed(i) {
			lb++
		}
		return lb, true
	}
	_, ok := check(u.root, nil, nil)
	return !ok || cnt != u.sz
}

// Dump draws the tree, each node labelled with its value and color.
func (u *RB) Dump(w io.Writer) {
	dump(w, u.root, 0, func(i uint32) (uint32, uint32) {
		return u.ifs[i].l, u.ifs[i].r
	}, func(i uint32) string {
		if u.isRed(i) {
			return fmt.Sprintf("%d R", u.vs[i])
		}
		return fmt.Sprintf("%d B", u.vs[i])
	})
}
