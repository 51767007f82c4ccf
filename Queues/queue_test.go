package Queues

import (
	"errors"
	"math/rand"
	"testing"

	Go_Structs "github.com/g-m-twostay/go-structs"
)

var _R = rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() || q.Size() != 0 {
		t.Errorf("new queue is not empty")
	}
	if _, err := q.Pop(); !errors.Is(err, Go_Structs.ErrEmpty) {
		t.Errorf("pop on empty queue returned %v, want ErrEmpty", err)
	}
	if _, ok := q.Peek(); ok {
		t.Errorf("peek on empty queue succeeded")
	}
}

func TestArrayQueue_FIFO(t *testing.T) {
	q := MakeArrayQueue[int](1)
	var model []int
	for range 10000 {
		if _R.Intn(3) == 0 && len(model) > 0 {
			v, err := q.Pop()
			if err != nil {
				t.Fatalf("pop failed with %d elements: %v", len(model), err)
			}
			if v != model[0] {
				t.Fatalf("popped %d, want %d", v, model[0])
			}
			model = model[1:]
		} else {
			v := _R.Int()
			q.Push(v)
			model = append(model, v)
		}
		if q.Size() != uint(len(model)) {
			t.Fatalf("queue size is %d, want %d", q.Size(), len(model))
		}
		if h, ok := q.Peek(); len(model) > 0 && (!ok || h != model[0]) {
			t.Fatalf("peek is %d, want %d", h, model[0])
		}
	}
	q.Shrink()
	if q.Cap() < q.Size() {
		t.Errorf("shrink lost elements: cap %d, size %d", q.Cap(), q.Size())
	}
	for _, want := range model {
		if v, _ := q.Pop(); v != want {
			t.Fatalf("after shrink popped %d, want %d", v, want)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 7 {
		q.Push(i)
	}
	q.Clear()
	if !q.Empty() {
		t.Errorf("queue not empty after clear")
	}
	q.Push(42)
	if v, err := q.Pop(); err != nil || v != 42 {
		t.Errorf("pop after clear gave (%d, %v), want (42, nil)", v, err)
	}
}
