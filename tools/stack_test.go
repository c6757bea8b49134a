package tools

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// Simple test to ensure an single element is pushed and popped correctly
func TestStack_PushPop(t *testing.T) {
	s := NewStack[[]byte](10)
	msg := []byte("Hello World")
	s.Push(msg)
	require.Equal(t, 1, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, msg, top)

	popped, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, msg, popped)
	require.True(t, s.IsEmpty())

	_, err = s.Pop()
	require.ErrorIs(t, err, ErrEmptyStack)
	_, err = s.Peek()
	require.ErrorIs(t, err, ErrEmptyStack)
}

// Check that elements come back in reverse order of insertion, even past the
// initial capacity
func TestStack_Correct_Order(t *testing.T) {
	s := NewStack[string](2)
	nbMessages := 5
	for i := 0; i < nbMessages; i++ {
		s.Push("Hello World" + strconv.Itoa(i))
	}

	index := nbMessages - 1
	for !s.IsEmpty() {
		msg, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, "Hello World"+strconv.Itoa(index), msg)
		index--
	}
	require.Equal(t, -1, index)
}
