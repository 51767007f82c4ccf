package Ranges

import (
	"bytes"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

var _R = rand.New(rand.NewSource(0))

func TestFenwick_Scenario(t *testing.T) {
	assert := assert.New(t)
	f, err := NewFenwick(10)
	require.NoError(t, err)
	assert.Equal(10, f.Len())
	assert.Equal(0, f.PrefixSum(10))

	assert.NoError(f.Add(3, 5))
	assert.NoError(f.Add(5, 2))
	assert.Equal(5, f.PrefixSum(4))
	assert.Equal(7, f.PrefixSum(5))
	assert.Equal(7, f.RangeSum(3, 5))

	assert.Equal(0, f.PrefixSum(0))
	assert.Equal(0, f.PrefixSum(-3))
	assert.Equal(7, f.PrefixSum(15), "prefix sums clamp to n")
	assert.Equal(0, f.RangeSum(5, 3))
	assert.Equal(0, f.RangeSum(11, 20))
	assert.Equal(7, f.RangeSum(-5, 50))
}

func TestFenwick_OutOfRange(t *testing.T) {
	f, _ := NewFenwick(4)
	for _, i := range []int{0, -1, 5} {
		if err := f.Add(i, 1); !errors.Is(err, Go_Structs.ErrOutOfRange) {
			t.Errorf("add(%d) returned %v, want ErrOutOfRange", i, err)
		}
	}
	assert.Equal(t, 0, f.PrefixSum(4), "rejected updates must not mutate")
	_, err := NewFenwick(-1)
	assert.True(t, errors.Is(err, Go_Structs.ErrInvalidArgument))
	z, err := NewFenwick(0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.RangeSum(1, 1))
	assert.True(t, errors.Is(z.Add(1, 1), Go_Structs.ErrOutOfRange))
}

func TestFenwick_Random(t *testing.T) {
	const n = 257
	f, _ := NewFenwick(n)
	model := make([]int, n+1)
	for range 5000 {
		i, d := 1+_R.Intn(n), _R.Intn(2001)-1000
		if err := f.Add(i, d); err != nil {
			t.Fatal(err)
		}
		model[i] += d
	}
	prefix := make([]int, n+1)
	for k := 1; k <= n; k++ {
		prefix[k] = prefix[k-1] + model[k]
		if f.PrefixSum(k) != prefix[k] {
			t.Errorf("prefix sum(%d) is %d, want %d", k, f.PrefixSum(k), prefix[k])
		}
	}
	for range 1000 {
		l := 1 + _R.Intn(n)
		r := l + _R.Intn(n-l+1)
		if got, want := f.RangeSum(l, r), f.PrefixSum(r)-f.PrefixSum(l-1); got != want || got != prefix[r]-prefix[l-1] {
			t.Errorf("range sum(%d, %d) is %d, want %d", l, r, got, want)
		}
	}
	g := FenwickFrom(model[1:])
	for k := 0; k <= n; k++ {
		if g.PrefixSum(k) != f.PrefixSum(k) {
			t.Errorf("built tree prefix sum(%d) is %d, want %d", k, g.PrefixSum(k), f.PrefixSum(k))
		}
	}
}

func TestSegment_Scenario(t *testing.T) {
	assert := assert.New(t)
	s := NewSegment([]int{1, 3, 5, 7, 9, 11})
	assert.Equal(6, s.Len())
	sum := func(l, r int) int {
		v, err := s.Sum(l, r)
		require.NoError(t, err)
		return v
	}
	assert.Equal(36, sum(0, 5))
	assert.Equal(15, sum(1, 3))
	assert.Equal(5, sum(2, 2))
	assert.NoError(s.Set(2, 6))
	assert.Equal(16, sum(1, 3))
	assert.Equal(37, sum(0, 5))
	assert.NoError(s.Set(0, 0))
	assert.NoError(s.Set(5, 10))
	assert.Equal(35, sum(0, 5))

	assert.True(errors.Is(s.Set(6, 1), Go_Structs.ErrOutOfRange))
	assert.True(errors.Is(s.Set(-1, 1), Go_Structs.ErrOutOfRange))
	_, err := s.Sum(3, 1)
	assert.True(errors.Is(err, Go_Structs.ErrInvalidArgument))
	_, err = s.Sum(0, 6)
	assert.True(errors.Is(err, Go_Structs.ErrOutOfRange))
	_, err = s.Sum(-1, 2)
	assert.True(errors.Is(err, Go_Structs.ErrOutOfRange))
}

func TestSegment_Empty(t *testing.T) {
	s := NewSegment(nil)
	assert.Equal(t, 0, s.Len())
	_, err := s.Sum(0, 0)
	assert.True(t, errors.Is(err, Go_Structs.ErrEmpty))
	assert.True(t, errors.Is(s.Set(0, 1), Go_Structs.ErrOutOfRange))
	var b bytes.Buffer
	s.Dump(&b)
	assert.Empty(t, b.String())
}

func TestSegment_Random(t *testing.T) {
	for _, n := range []int{1, 2, 3, 17, 100} {
		model := make([]int, n)
		for i := range model {
			model[i] = _R.Intn(200) - 100
		}
		a := slices.Clone(model)
		s := NewSegment(a)
		a[0] += 1000
		for range 2000 {
			if _R.Intn(2) == 0 {
				i, v := _R.Intn(n), _R.Intn(200)-100
				if err := s.Set(i, v); err != nil {
					t.Fatal(err)
				}
				model[i] = v
				if g, _ := s.Get(i); g != v {
					t.Fatalf("get(%d) after set is %d, want %d", i, g, v)
				}
			} else {
				l := _R.Intn(n)
				r := l + _R.Intn(n-l)
				want := 0
				for _, v := range model[l : r+1] {
					want += v
				}
				if got, err := s.Sum(l, r); err != nil || got != want {
					t.Fatalf("sum(%d, %d) is (%d, %v), want %d", l, r, got, err, want)
				}
			}
		}
	}
}

func TestDumps(t *testing.T) {
	var b bytes.Buffer
	FenwickFrom([]int{1, 2, 3}).Dump(&b)
	NewSegment([]int{1, 2, 3}).Dump(&b)
	assert.NotEmpty(t, b.String())
}

func BenchmarkFenwick_Add(b *testing.B) {
	f, _ := NewFenwick(1 << 20)
	for i := range b.N {
		f.Add(1+i&(1<<20-1), i)
	}
}

func BenchmarkSegment_Sum(b *testing.B) {
	a := make([]int, 1<<20)
	for i := range a {
		a[i] = _R.Int()
	}
	s := NewSegment(a)
	b.ResetTimer()
	for i := range b.N {
		l := i & (1<<19 - 1)
		s.Sum(l, l+1<<18)
	}
}
