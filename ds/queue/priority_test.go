package queue

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/internal/testutil"
)

func TestPriorityPopsLargestFirst(t *testing.T) {
	p := NewPriority[int]()
	for _, v := range []int{5, 1, 3, 1, 4} {
		p.Push(v)
	}
	assert.Equal(t, 5, p.Len())

	peek, err := p.Peek()
	require.NoError(t, err)
	assert.Equal(t, 5, peek)
	peekMin, err := p.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 1, peekMin)

	var got []int
	for !p.Empty() {
		v, err := p.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	testutil.RequireSequence(t, got, []int{5, 4, 3, 1, 1})
}

func TestPriorityPopMin(t *testing.T) {
	p := NewPriority[string]()
	for _, s := range []string{"pear", "apple", "fig"} {
		p.Push(s)
	}
	v, err := p.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "apple", v)
	v, err = p.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "fig", v)
}

func TestPriorityFuncTies(t *testing.T) {
	type task struct {
		prio int
		id   string
	}
	p := NewPriorityFunc(func(a, b task) bool { return a.prio < b.prio })
	p.Push(task{2, "a"})
	p.Push(task{1, "b"})
	p.Push(task{2, "c"})
	p.Push(task{1, "d"})

	first, err := p.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "b", first.id, "earliest of the smallest ties")

	last, err := p.Pop()
	require.NoError(t, err)
	assert.Equal(t, "c", last.id, "latest of the largest ties")
}

func TestPriorityEmpty(t *testing.T) {
	p := NewPriority[int]()
	_, err := p.Pop()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))
	_, err = p.PopMin()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))
	_, err = p.Peek()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))
	_, err = p.PeekMin()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))

	p.Push(1)
	p.Clear()
	assert.True(t, p.Empty())
}

func TestPriorityDrainsSorted(t *testing.T) {
	p := NewPriority[int]()
	in := testutil.DeterministicInts(5, 1000, 300)
	for _, v := range in {
		p.Push(v)
	}
	var out []int
	for !p.Empty() {
		v, err := p.PopMin()
		require.NoError(t, err)
		out = append(out, v)
	}
	assert.Len(t, out, len(in))
	assert.True(t, testutil.IsSorted(out, func(a, b int) bool { return a < b }))
}
