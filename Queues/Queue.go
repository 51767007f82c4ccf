package Queues

// Queue is a FIFO of T.
type Queue[T any] interface {
	Push(item T)
	//Pop the head. Returns an error wrapping Go_Structs.ErrEmpty when the queue is empty.
	Pop() (T, error)
	//Peek at the head without removing it. The bool is false when the queue is empty.
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

// ArrayQueue is a Queue backed by a single circular array.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the array to fit the current content.
	Shrink()
	//Clear the queue without releasing the array.
	Clear()
	//Cap is the length of the underlying array.
	Cap() uint
	resize(newLen uint)
}
