package HashSet

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/cespare/xxhash"

	Go_Structs "github.com/g-m-twostay/go-structs"
	"github.com/g-m-twostay/go-structs/Sets"
)

const (
	defaultCap = 16
	// the table doubles once size/len(bkt) would exceed loadNum/loadDen.
	loadNum, loadDen = 3, 4
)

var _ Sets.Set = (*HashSet)(nil)

// HashSet of int using separate chaining. The table length is a power of 2 and
// buckets are picked with xxhash over the seed and the key.
type HashSet struct {
	bkt  []*element
	sz   int
	Seed uint64
}

// New HashSet with room for capacity buckets, rounded up to a power of 2. capacity<=0
// picks a small default.
func New(capacity int, seed uint64) *HashSet {
	return &HashSet{bkt: make([]*element, roundCap(capacity)), Seed: seed}
}

func roundCap(c int) int {
	if c <= 0 {
		return defaultCap
	}
	return 1 << bits.Len(uint(c-1))
}

func (u *HashSet) hash(v int) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], u.Seed)
	binary.LittleEndian.PutUint64(b[8:], uint64(v))
	return xxhash.Sum64(b[:])
}

func (u *HashSet) head(v int) **element {
	return &u.bkt[u.hash(v)&uint64(len(u.bkt)-1)]
}

// Size of the set.
func (u *HashSet) Size() int {
	return u.sz
}

func (u *HashSet) Empty() bool {
	return u.sz == 0
}

// Capacity is the number of buckets.
func (u *HashSet) Capacity() int {
	return len(u.bkt)
}

// Insert v. Returns false if v is already present.
// Time: expected O(1)
func (u *HashSet) Insert(v int) bool {
	p := find(u.head(v), v)
	if *p != nil {
		return false
	}
	if (u.sz+1)*loadDen > len(u.bkt)*loadNum {
		u.rehash(len(u.bkt) << 1)
		p = find(u.head(v), v)
	}
	*p = &element{v: v}
	u.sz++
	return true
}

// Has v in the set.
func (u *HashSet) Has(v int) bool {
	return *find(u.head(v), v) != nil
}

// Remove v from the set. Returns true if the removal is successful.
func (u *HashSet) Remove(v int) bool {
	p := find(u.head(v), v)
	if *p == nil {
		return false
	}
	*p = (*p).next
	u.sz--
	return true
}

// Clear the set, keeping the bucket array.
func (u *HashSet) Clear() {
	clear(u.bkt)
	u.sz = 0
}

// Resize the table to n buckets, rounded up to a power of 2. Returns an error wrapping
// Go_Structs.ErrInvalidArgument if n<=0; the set is unchanged then.
func (u *HashSet) Resize(n int) error {
	if n <= 0 {
		return Go_Structs.InvalidArgument("bucket count %d", n)
	}
	u.rehash(roundCap(n))
	return nil
}

func (u *HashSet) rehash(n int) {
	old := u.bkt
	u.bkt = make([]*element, n)
	for _, e := range old {
		for e != nil {
			next := e.next
			h := u.head(e.v)
			e.next, *h = *h, e
			e = next
		}
	}
}

// Range over elements in bucket order and call f on them. Stops when f returns false.
func (u *HashSet) Range(f func(int) bool) {
	for _, e := range u.bkt {
		for ; e != nil; e = e.next {
			if !f(e.v) {
				return
			}
		}
	}
}

// Dump the buckets. The format is not stable.
func (u *HashSet) Dump(w io.Writer) {
	for i, e := range u.bkt {
		if e == nil {
			continue
		}
		fmt.Fprintf(w, "%d:", i)
		for ; e != nil; e = e.next {
			fmt.Fprintf(w, " %d", e.v)
		}
		fmt.Fprintln(w)
	}
}
