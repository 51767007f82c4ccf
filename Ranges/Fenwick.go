package Ranges

import (
	"fmt"
	"io"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// Fenwick is a binary indexed tree over the 1-indexed domain [1, n]. Slot i of the
// internal array stores the sum of the lowBit(i) values ending at i; slot 0 is unused.
type Fenwick struct {
	bit []int
}

// NewFenwick of n zeros. Returns an error wrapping Go_Structs.ErrInvalidArgument if n<0.
func NewFenwick(n int) (*Fenwick, error) {
	if n < 0 {
		return nil, Go_Structs.InvalidArgument("fenwick size %d is negative", n)
	}
	return &Fenwick{bit: make([]int, n+1)}, nil
}

// FenwickFrom builds a tree whose index i holds a[i-1].
// Time: O(n)
func FenwickFrom(a []int) *Fenwick {
	bit := make([]int, len(a)+1)
	copy(bit[1:], a)
	for i := 1; i < len(bit); i++ {
		if p := i + lowBit(i); p < len(bit) {
			bit[p] += bit[i]
		}
	}
	return &Fenwick{bit: bit}
}

// Len is n.
func (u *Fenwick) Len() int {
	return len(u.bit) - 1
}

// Add delta to index i. Returns an error wrapping Go_Structs.ErrOutOfRange if i isn't in [1, n].
// Time: O(log n)
func (u *Fenwick) Add(i, delta int) error {
	if i < 1 || i >= len(u.bit) {
		return Go_Structs.OutOfRange(i, 1, len(u.bit))
	}
	for ; i < len(u.bit); i += lowBit(i) {
		u.bit[i] += delta
	}
	return nil
}

// PrefixSum of [1, k]. k is clamped into [0, n].
// Time: O(log n)
func (u *Fenwick) PrefixSum(k int) (s int) {
	if k >= len(u.bit) {
		k = len(u.bit) - 1
	}
	for ; k > 0; k -= lowBit(k) {
		s += u.bit[k]
	}
	return
}

// RangeSum of [l, r], 0 if the range is empty after clamping to [1, n].
// Time: O(log n)
func (u *Fenwick) RangeSum(l, r int) int {
	if l < 1 {
		l = 1
	}
	if r > u.Len() {
		r = u.Len()
	}
	if l > r {
		return 0
	}
	return u.PrefixSum(r) - u.PrefixSum(l-1)
}

// Dump the internal array. The format is not stable.
func (u *Fenwick) Dump(w io.Writer) {
	for i := 1; i < len(u.bit); i++ {
		fmt.Fprintf(w, "[%d..%d]=%d ", i-lowBit(i)+1, i, u.bit[i])
	}
	fmt.Fprintln(w)
}
