package Go_Structs

import (
	"math/bits"
)

// NewBitArray holds at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a packed array of flags. Indexes past Len panic like slice indexing.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Put sets bit i to b.
func (u BitArray) Put(i int, b bool) {
	if b {
		u.Up(i)
	} else {
		u.Down(i)
	}
}

// Grow the array so that it holds at least size bits. Existing bits are kept.
func (u *BitArray) Grow(size int) {
	if need := (size + bits.UintSize - 1) / bits.UintSize; need > len(u.bits) {
		u.bits = append(u.bits, make([]uint, need-len(u.bits))...)
	}
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, w := range u.bits {
		c += bits.OnesCount(w)
	}
	return
}
