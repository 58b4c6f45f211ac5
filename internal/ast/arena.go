package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena stores nodes of one type; IDs are 1-based so that 0 can mean
// "absent".
type Arena[T any] struct {
	data []T
}

func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	return n
}

func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

func (a *Arena[T]) Len() int {
	return len(a.data)
}

// list normalizes an empty slice to nil so that absent and empty lists are
// indistinguishable to consumers.
func list[T any](xs []T) []T {
	if len(xs) == 0 {
		return nil
	}
	return xs
}
