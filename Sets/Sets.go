package Sets

import (
	"github.com/pkg/errors"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

// Set of unique int keys.
type Set interface {
	//Insert v. Returns false if v is already present or outside the set's domain.
	Insert(v int) bool
	Has(v int) bool
	//Remove v. Returns false if v isn't present.
	Remove(v int) bool
	Size() int
	//Empty reports whether the set has no elements.
	Empty() bool
	//Range calls f on every element until f returns false. The order is
	//defined by the implementation. f must not modify the set.
	Range(f func(int) bool)
}

// InsertAll vs into s. Returns the number inserted and, if any v was rejected, an error
// wrapping Go_Structs.ErrDuplicate that names the first one. The rest are still inserted.
func InsertAll(s Set, vs ...int) (n int, err error) {
	for _, v := range vs {
		if s.Insert(v) {
			n++
		} else if err == nil {
			err = errors.Wrapf(Go_Structs.ErrDuplicate, "insert %d", v)
		}
	}
	return
}

// RemoveAll vs from s. Returns the number removed and, if any v was absent, an error
// wrapping Go_Structs.ErrNotFound that names the first one.
func RemoveAll(s Set, vs ...int) (n int, err error) {
	for _, v := range vs {
		if s.Remove(v) {
			n++
		} else if err == nil {
			err = errors.Wrapf(Go_Structs.ErrNotFound, "remove %d", v)
		}
	}
	return
}

// Eq reports whether a and b hold the same elements.
func Eq(a, b Set) bool {
	if a.Size() != b.Size() {
		return false
	}
	eq := true
	a.Range(func(v int) bool {
		eq = b.Has(v)
		return eq
	})
	return eq
}

// Slice of s's elements in Range order.
func Slice(s Set) []int {
	r := make([]int, 0, s.Size())
	s.Range(func(v int) bool {
		r = append(r, v)
		return true
	})
	return r
}
