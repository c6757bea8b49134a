package tools

import "errors"

// ErrEmptyStack is returned when popping or peeking an empty stack
var ErrEmptyStack = errors.New("stack is empty")

// Stack is a simple LIFO stack. It is not thread safe; it is meant to be
// owned by a single search.
type Stack[T any] struct {
	elements []T
}

// NewStack returns a new empty Stack with the given initial capacity
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		elements: make([]T, 0, capacity),
	}
}

// Push a new element on top of the stack
func (s *Stack[T]) Push(el T) {
	s.elements = append(s.elements, el)
}

// Pop removes and returns the element on top of the stack. Returns an error
// if the stack is empty
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrEmptyStack
	}
	last := len(s.elements) - 1
	el := s.elements[last]
	// Release the reference held by the backing array
	s.elements[last] = zero
	s.elements = s.elements[:last]
	return el, nil
}

// Peek returns the element on top of the stack without removing it
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.elements[len(s.elements)-1], nil
}

// IsEmpty returns true if the stack holds no element
func (s *Stack[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// Len returns the number of elements in the stack
func (s *Stack[T]) Len() int {
	return len(s.elements)
}
