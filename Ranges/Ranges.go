// Package Ranges holds implicit array trees answering range sums over int.
package Ranges

import "golang.org/x/exp/constraints"

// lowBit is the value of the least significant set bit of i, the length of the range
// covered by Fenwick slot i.
func lowBit[S constraints.Signed](i S) S {
	return i & -i
}

// mid is equivalent to (l+r)/2 for l<=r but doesn't overflow.
func mid[S constraints.Integer](l, r S) S {
	return l + (r-l)>>1
}
