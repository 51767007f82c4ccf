package Trie

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xlab/treeprint"

	Go_Structs "github.com/g-m-twostay/go-structs"
	"github.com/g-m-twostay/go-structs/Sets"
)

const (
	// Bits is the width of stored values.
	Bits = 31
	// Max is the largest storable value. The domain is [0, Max].
	Max = 1<<Bits - 1
)

var _ Sets.Set = (*Trie)(nil)

type node struct {
	c    [2]*node
	pass int // number of stored values whose path visits this node
	end  bool
}

// Trie is a binary trie over Bits-wide non-negative ints, MSB first. Besides set
// operations it finds the stored value maximising the XOR with a query.
// All operations are O(Bits).
type Trie struct {
	root *node
}

func New() *Trie {
	return &Trie{root: new(node)}
}

func valid(v int) bool {
	return v >= 0 && v <= Max
}

// Size is the number of stored values.
func (u *Trie) Size() int {
	return u.root.pass
}

func (u *Trie) Empty() bool {
	return u.root.pass == 0
}

// terminal node of v's path, nil if the path is incomplete.
func (u *Trie) terminal(v int) *node {
	cur := u.root
	for i := Bits - 1; i >= 0 && cur != nil; i-- {
		cur = cur.c[v>>i&1]
	}
	return cur
}

// Has v in the trie.
func (u *Trie) Has(v int) bool {
	if !valid(v) {
		return false
	}
	t := u.terminal(v)
	return t != nil && t.end
}

// Insert v. Returns false if v is outside [0, Max] or already present, in which
// case no count changes.
func (u *Trie) Insert(v int) bool {
	if !valid(v) || u.Has(v) {
		return false
	}
	cur := u.root
	cur.pass++
	for i := Bits - 1; i >= 0; i-- {
		b := v >> i & 1
		if cur.c[b] == nil {
			cur.c[b] = new(node)
		}
		cur = cur.c[b]
		cur.pass++
	}
	cur.end = true
	return true
}

// Remove v. Returns false if v isn't present. Nodes no longer on any path are pruned.
func (u *Trie) Remove(v int) bool {
	if !u.Has(v) {
		return false
	}
	u.remove(u.root, v, Bits-1)
	return true
}

// remove decrements counts along v's path below cur (i is the bit picking cur's child)
// and unlinks children left without paths.
func (u *Trie) remove(cur *node, v, i int) {
	cur.pass--
	if i < 0 {
		cur.end = false
		return
	}
	b := v >> i & 1
	u.remove(cur.c[b], v, i-1)
	if c := cur.c[b]; c.pass == 0 && !c.end {
		cur.c[b] = nil
	}
}

// MaxXor returns the stored value v maximising v^q. Returns an error wrapping
// Go_Structs.ErrEmpty if the trie is empty.
func (u *Trie) MaxXor(q int) (int, error) {
	if u.Empty() {
		return 0, errors.Wrapf(Go_Structs.ErrEmpty, "max xor %d", q)
	}
	v, cur := 0, u.root
	for i := Bits - 1; i >= 0; i-- {
		want := q>>i&1 ^ 1
		if c := cur.c[want]; c != nil && c.pass > 0 {
			cur = c
			v |= want << i
		} else {
			cur = cur.c[want^1]
			v |= (want ^ 1) << i
		}
	}
	return v, nil
}

// Range calls f on stored values in ascending order until f returns false.
func (u *Trie) Range(f func(int) bool) {
	u.walk(u.root, 0, Bits-1, f)
}

func (u *Trie) walk(cur *node, v, i int, f func(int) bool) bool {
	if cur == nil {
		return true
	}
	if i < 0 {
		return !cur.end || f(v)
	}
	return u.walk(cur.c[0], v, i-1, f) && u.walk(cur.c[1], v|1<<i, i-1, f)
}

// Dump the node graph, collapsing single child chains. The format is not stable.
func (u *Trie) Dump(w io.Writer) {
	t := treeprint.NewWithRoot(fmt.Sprintf("root (%d)", u.root.pass))
	var dump func(br treeprint.Tree, cur *node, prefix string, i int)
	dump = func(br treeprint.Tree, cur *node, prefix string, i int) {
		for cur.c[0] == nil != (cur.c[1] == nil) && i >= 0 {
			b := 0
			if cur.c[0] == nil {
				b = 1
			}
			prefix += fmt.Sprint(b)
			cur, i = cur.c[b], i-1
		}
		if i < 0 {
			br.AddNode(fmt.Sprintf("%s (%d)", prefix, cur.pass))
			return
		}
		if prefix != "" {
			br = br.AddBranch(fmt.Sprintf("%s (%d)", prefix, cur.pass))
		}
		for b, c := range cur.c {
			if c != nil {
				dump(br, c, fmt.Sprint(b), i-1)
			}
		}
	}
	if !u.Empty() {
		dump(t, u.root, "", Bits-1)
	}
	fmt.Fprint(w, t.String())
}
