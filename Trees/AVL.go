package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-structs/Queues"
	"github.com/golang-collections/collections/stack"
)

// AVL is a height balanced binary search tree: the heights of the two subtrees of every node differ by at most 1.
type AVL struct {
	root *node
	sz   int
}

var _ Tree = (*AVL)(nil)

func NewAVL() *AVL {
	return &AVL{}
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *AVL) Size() int {
	return u.sz
}

func (u *AVL) Empty() bool {
	return u.sz == 0
}

// Height of the root, -1 when empty.
// Time: O(1); Space: O(1)
func (u *AVL) Height() int {
	return height(u.root)
}

// Has checks whether v is in the tree.
// Time: O(log(n)); Space: O(1)
func (u *AVL) Has(v int) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// Insert v into the tree. Returns false if v is already present.
// Time: O(log(n)); Space: O(log(n))
func (u *AVL) Insert(v int) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// insert v under *p. The rotation case is picked by comparing v with the child on the heavy side.
func (u *AVL) insert(p **node, v int) bool {
	cur := *p
	if cur == nil {
		*p = &node{v: v}
		return true
	}
	if v < cur.v {
		if !u.insert(&cur.l, v) {
			return false
		}
	} else if v > cur.v {
		if !u.insert(&cur.r, v) {
			return false
		}
	} else {
		return false
	}
	cur.fix()
	switch b := cur.bf(); {
	case b < -1:
		if v < cur.l.v { //left left
			rotateRight(p)
		} else { //left right
			rotateLeft(&cur.l)
			rotateRight(p)
		}
	case b > 1:
		if v > cur.r.v { //right right
			rotateLeft(p)
		} else { //right left
			rotateRight(&cur.r)
			rotateLeft(p)
		}
	}
	return true
}

// Remove v from the tree. A node with 2 children takes the value of its in-order successor, which is removed instead.
// Returns false if v isn't present.
// Time: O(log(n)); Space: O(log(n))
func (u *AVL) Remove(v int) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

func (u *AVL) remove(p **node, v int) bool {
	cur := *p
	if cur == nil {
		return false
	}
	if v < cur.v {
		if !u.remove(&cur.l, v) {
			return false
		}
	} else if v > cur.v {
		if !u.remove(&cur.r, v) {
			return false
		}
	} else if cur.l == nil {
		*p = cur.r
		return true
	} else if cur.r == nil {
		*p = cur.l
		return true
	} else {
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v = s.v
		u.remove(&cur.r, s.v)
	}
	rebalance(p)
	return true
}

// rebalance *p after a removal; the rotation is chosen by the balance of the taller child.
// Time: O(1); Space: O(1)
func rebalance(p **node) {
	cur := *p
	cur.fix()
	switch b := cur.bf(); {
	case b < -1:
		if cur.l.bf() > 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(p)
	case b > 1:
		if cur.r.bf() < 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(p)
	}
}

// Minimum element.
// Time: O(log(n)); Space: O(1)
func (u *AVL) Minimum() (int, bool) {
	if u.root == nil {
		return 0, false
	}
	cur := u.root
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum element.
// Time: O(log(n)); Space: O(1)
func (u *AVL) Maximum() (int, bool) {
	if u.root == nil {
		return 0, false
	}
	cur := u.root
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor is the greatest element less than v; v needn't be in the tree.
// Time: O(log(n)); Space: O(1)
func (u *AVL) Predecessor(v int) (p int, ok bool) {
	for cur := u.root; cur != nil; {
		if cur.v < v {
			p, ok = cur.v, true
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return
}

// Successor is the smallest element greater than v; v needn't be in the tree.
// Time: O(log(n)); Space: O(1)
func (u *AVL) Successor(v int) (s int, ok bool) {
	for cur := u.root; cur != nil; {
		if cur.v > v {
			s, ok = cur.v, true
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return
}

func (u *AVL) Range(f func(int) bool) {
	u.InOrder(f)
}

// Time: O(n); Space: O(log(n))
func (u *AVL) InOrder(f func(int) bool) {
	var walk func(*node) bool
	walk = func(n *node) bool {
		return n == nil || walk(n.l) && f(n.v) && walk(n.r)
	}
	walk(u.root)
}

// Time: O(n); Space: O(log(n))
func (u *AVL) PreOrder(f func(int) bool) {
	var walk func(*node) bool
	walk = func(n *node) bool {
		return n == nil || f(n.v) && walk(n.l) && walk(n.r)
	}
	walk(u.root)
}

// Time: O(n); Space: O(log(n))
func (u *AVL) PostOrder(f func(int) bool) {
	var walk func(*node) bool
	walk = func(n *node) bool {
		return n == nil || walk(n.l) && walk(n.r) && f(n.v)
	}
	walk(u.root)
}

// Time: O(n); Space: O(n)
func (u *AVL) LevelOrder(f func(int) bool) {
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*node](uint(u.sz/2 + 1))
	q.Push(u.root)
	for !q.Empty() {
		cur, _ := q.Pop()
		if !f(cur.v) {
			return
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// Iter returns an ascending iterator. The second return value is false once all elements are consumed.
// Time: O(1) amortized per call; Space: O(log(n))
func (u *AVL) Iter() func() (int, bool) {
	st := stack.New()
	pushLeft := func(n *node) {
		for ; n != nil; n = n.l {
			st.Push(n)
		}
	}
	pushLeft(u.root)
	return func() (int, bool) {
		if st.Len() == 0 {
			return 0, false
		}
		n := st.Pop().(*node)
		pushLeft(n.r)
		return n.v, true
	}
}

// Corrupt checks the ordering, the stored heights and the balance factors of every node.
// Time: O(n); Space: O(log(n))
func (u *AVL) Corrupt() bool {
	var check func(n *node, lo, hi *int) (int, bool)
	check = func(n *node, lo, hi *int) (int, bool) {
		if n == nil {
			return -1, true
		}
		if lo != nil && n.v <= *lo || hi != nil && n.v >= *hi {
			return 0, false
		}
		lh, ok := check(n.l, lo, &n.v)
		if !ok {
			return 0, false
		}
		rh, ok := check(n.r, &n.v, hi)
		if !ok {
			return 0, false
		}
		h := 1 + max(lh, rh)
		return h, h == n.h && rh-lh <= 1 && lh-rh <= 1
	}
	_, ok := check(u.root, nil, nil)
	return !ok
}

// Dump draws the tree, each node labelled with its value and height.
func (u *AVL) Dump(w io.Writer) {
	dump(w, u.root, nil, func(n *node) (*node, *node) {
		return n.l, n.r
	}, func(n *node) string {
		return fmt.Sprintf("%d h=%d", n.v, n.h)
	})
}
