package SkipList

import (
	"fmt"
	"io"
	"math/bits"
	"math/rand"

	"github.com/g-m-twostay/go-structs/Sets"
)

// MaxLevel is the number of forward links of the head. Levels are in [0, MaxLevel).
// With p=1/2 this suits sets of up to about 1<<MaxLevel elements.
const MaxLevel = 16

var _ Sets.Set = (*SkipList)(nil)

type node struct {
	v    int
	next []*node // len(next) is the node's level+1
}

// SkipList is an ordered set of int. Each node's level is the number of consecutive
// heads in fair coin flips drawn from the list's own source, capped at MaxLevel-1.
// Operations take expected O(log n) time.
type SkipList struct {
	head  node // value acts as -inf; next has MaxLevel links
	level int  // highest level of any data node, 0 when empty
	sz    int
	src   rand.Source
}

// New SkipList drawing levels from src. A nil src is replaced by rand.NewSource(0) so
// the shape of the list is always reproducible.
func New(src rand.Source) *SkipList {
	if src == nil {
		src = rand.NewSource(0)
	}
	return &SkipList{head: node{next: make([]*node, MaxLevel)}, src: src}
}

// randomLevel counts the trailing one bits of a 63 bit draw; each bit is a Bernoulli(1/2) trial.
func (u *SkipList) randomLevel() int {
	return min(bits.TrailingZeros64(^uint64(u.src.Int63())), MaxLevel-1)
}

// seek fills pre[i] with the rightmost node on level i whose value is less than v,
// for every level up to the current one, and returns pre[0].
func (u *SkipList) seek(v int, pre *[MaxLevel]*node) *node {
	cur := &u.head
	for i := u.level; i >= 0; i-- {
		for cur.next[i] != nil && cur.next[i].v < v {
			cur = cur.next[i]
		}
		if pre != nil {
			pre[i] = cur
		}
	}
	return cur
}

// Insert v. Returns false if v is already present.
func (u *SkipList) Insert(v int) bool {
	var pre [MaxLevel]*node
	if n := u.seek(v, &pre).next[0]; n != nil && n.v == v {
		return false
	}
	l := u.randomLevel()
	for ; u.level < l; u.level++ {
		pre[u.level+1] = &u.head
	}
	n := &node{v: v, next: make([]*node, l+1)}
	for i := range n.next {
		n.next[i], pre[i].next[i] = pre[i].next[i], n
	}
	u.sz++
	return true
}

// Has v in the list.
func (u *SkipList) Has(v int) bool {
	n := u.seek(v, nil).next[0]
	return n != nil && n.v == v
}

// Remove v. Returns false if v isn't present. The list's level drops while its top level is empty.
func (u *SkipList) Remove(v int) bool {
	var pre [MaxLevel]*node
	n := u.seek(v, &pre).next[0]
	if n == nil || n.v != v {
		return false
	}
	for i := range n.next {
		pre[i].next[i] = n.next[i]
	}
	for u.level > 0 && u.head.next[u.level] == nil {
		u.level--
	}
	u.sz--
	return true
}

// Size of the list.
func (u *SkipList) Size() int {
	return u.sz
}

func (u *SkipList) Empty() bool {
	return u.sz == 0
}

// Level is the highest level reached by any element.
func (u *SkipList) Level() int {
	return u.level
}

// Min element of the list.
// Time: O(1)
func (u *SkipList) Min() (int, bool) {
	if n := u.head.next[0]; n != nil {
		return n.v, true
	}
	return 0, false
}

// Max element of the list.
// Time: expected O(log n)
func (u *SkipList) Max() (int, bool) {
	cur := &u.head
	for i := u.level; i >= 0; i-- {
		for cur.next[i] != nil {
			cur = cur.next[i]
		}
	}
	return cur.v, cur != &u.head
}

// Range calls f on elements in ascending order until f returns false.
func (u *SkipList) Range(f func(int) bool) {
	for n := u.head.next[0]; n != nil && f(n.v); n = n.next[0] {
	}
}

// Dump every level from the top. The format is not stable.
func (u *SkipList) Dump(w io.Writer) {
	for i := u.level; i >= 0; i-- {
		fmt.Fprintf(w, "L%d:", i)
		for n := u.head.next[i]; n != nil; n = n.next[i] {
			fmt.Fprintf(w, " %d", n.v)
		}
		fmt.Fprintln(w)
	}
}
