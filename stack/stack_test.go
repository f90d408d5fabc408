package stack_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlds/stack"
)

func TestStack_LIFO(t *testing.T) {
	var s stack.Stack[int]
	n := randomdata.Number(1, 100)
	pushed := make([]int, n)
	for i := range pushed {
		pushed[i] = randomdata.Number(-1000, 1000)
		s.Push(pushed[i])
	}
	require.Equal(t, n, s.Len())

	for i := n - 1; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, pushed[i], v)
	}
	require.True(t, s.IsEmpty())
}

func TestStack_Empty(t *testing.T) {
	s := stack.New[string]()
	_, err := s.Pop()
	require.ErrorIs(t, err, stack.ErrEmpty)
	_, err = s.Peek()
	require.ErrorIs(t, err, stack.ErrEmpty)
	require.True(t, s.IsEmpty())
	require.Equal(t, "[]", s.String())
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := stack.New(1, 2, 3)
	for i := 0; i < 3; i++ {
		v, err := s.Peek()
		require.NoError(t, err)
		require.Equal(t, 3, v)
	}
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []int{3, 2, 1}, s.Values())
	assert.Equal(t, "[3 2 1]", s.String())

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStack_InterleavedOps(t *testing.T) {
	s := stack.New[string]()
	s.Push("a")
	s.Push("b")
	v, _ := s.Pop()
	require.Equal(t, "b", v)
	s.Push("c")
	require.Equal(t, []string{"c", "a"}, s.Values())
}

func TestBounded(t *testing.T) {
	_, err := stack.NewBounded[int](0)
	require.ErrorIs(t, err, stack.ErrBadCapacity)

	b, err := stack.NewBounded[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, b.Cap())
	require.True(t, b.IsEmpty())

	for _, v := range []int{11, 23, -8} {
		require.NoError(t, b.Push(v))
	}
	require.True(t, b.IsFull())
	require.ErrorIs(t, b.Push(16), stack.ErrFull)
	require.Equal(t, []int{-8, 23, 11}, b.Values(), "a rejected push leaves contents intact")
	require.Equal(t, "[-8 23 11]", b.String())

	top, err := b.Peek()
	require.NoError(t, err)
	require.Equal(t, -8, top)

	for _, want := range []int{-8, 23, 11} {
		v, err := b.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	_, err = b.Pop()
	require.ErrorIs(t, err, stack.ErrEmpty)
	_, err = b.Peek()
	require.ErrorIs(t, err, stack.ErrEmpty)
	require.Equal(t, 0, b.Len())
}
