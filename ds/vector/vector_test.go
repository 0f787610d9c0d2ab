package vector

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-ds/ds/core"
	"github.com/cwbudde/algo-ds/internal/testutil"
)

// --- construction ---

func TestNewEmpty(t *testing.T) {
	v := New[int]()
	if v.Len() != 0 || v.Cap() != 0 || !v.Empty() {
		t.Fatalf("New: Len=%d Cap=%d Empty=%v, want 0 0 true", v.Len(), v.Cap(), v.Empty())
	}
}

func TestZeroValueUsable(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))
	testutil.RequireSequence(t, v.Values(), []int{1, 2})
}

func TestWithCapacity(t *testing.T) {
	v, err := WithCapacity[string](8)
	require.NoError(t, err)
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
	if v.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8", v.Cap())
	}

	_, err = WithCapacity[string](-1)
	assert.True(t, errors.Is(err, core.ErrInvalidArgument))
}

func TestFromSliceCopies(t *testing.T) {
	src := []int{1, 2, 3}
	v := FromSlice(src)
	src[0] = 99
	testutil.RequireSequence(t, v.Values(), []int{1, 2, 3})
	if v.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3", v.Cap())
	}
}

func TestCloneIsDeep(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.Reserve(10))
	c := v.Clone()
	require.NoError(t, c.Set(0, 99))

	first, err := v.At(0)
	require.NoError(t, err)
	if first == 99 {
		t.Fatal("Clone should not share storage")
	}
	assert.Equal(t, 10, c.Cap())
	assert.Equal(t, 3, c.Len())
}

// --- access ---

func TestAtSet(t *testing.T) {
	v := Of("a", "b", "c")
	require.NoError(t, v.Set(1, "x"))
	got, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestBoundsFailures(t *testing.T) {
	states := map[string]*Vector[int]{
		"empty":     New[int](),
		"non-empty": Of(1, 2, 3),
	}
	for name, v := range states {
		t.Run(name, func(t *testing.T) {
			n := v.Len()
			_, err := v.At(n)
			assert.True(t, errors.Is(err, core.ErrIndexOutOfRange), "At(Len())")
			_, err = v.At(-1)
			assert.True(t, errors.Is(err, core.ErrIndexOutOfRange), "At(-1)")
			assert.True(t, errors.Is(v.Set(n, 0), core.ErrIndexOutOfRange), "Set(Len())")
			assert.True(t, errors.Is(v.Erase(n), core.ErrIndexOutOfRange), "Erase(Len())")
			assert.True(t, errors.Is(v.Erase(-1), core.ErrIndexOutOfRange), "Erase(-1)")
			assert.True(t, errors.Is(v.Swap(n, 0), core.ErrIndexOutOfRange), "Swap(Len(), 0)")
			assert.True(t, errors.Is(v.Swap(0, -1), core.ErrIndexOutOfRange), "Swap(0, -1)")
			assert.Equal(t, n, v.Len(), "failed calls must not change length")
		})
	}
}

func TestFrontBack(t *testing.T) {
	v := New[int]()
	_, err := v.Front()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))
	_, err = v.Back()
	assert.True(t, errors.Is(err, core.ErrEmptyContainer))

	require.NoError(t, v.PushBack(4))
	require.NoError(t, v.PushBack(5))
	front, err := v.Front()
	require.NoError(t, err)
	back, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 4, front)
	assert.Equal(t, 5, back)
}

func TestPushBackThenBackRoundTrip(t *testing.T) {
	v := Of(1, 2)
	require.NoError(t, v.PushBack(42))
	got, err := v.Back()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestSwap(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.Swap(0, 2))
	testutil.RequireSequence(t, v.Values(), []int{3, 2, 1})
	require.NoError(t, v.Swap(1, 1))
	testutil.RequireSequence(t, v.Values(), []int{3, 2, 1})
}

func TestSwapWith(t *testing.T) {
	a := Of(1, 2)
	require.NoError(t, a.Reserve(5))
	b := Of(9)

	a.SwapWith(b)
	testutil.RequireSequence(t, a.Values(), []int{9})
	testutil.RequireSequence(t, b.Values(), []int{1, 2})
	assert.Equal(t, 1, a.Cap())
	assert.Equal(t, 5, b.Cap())

	a.SwapWith(nil)
	a.SwapWith(a)
	testutil.RequireSequence(t, a.Values(), []int{9})
}

func TestValuesIsCopy(t *testing.T) {
	v := Of(1, 2)
	vals := v.Values()
	vals[0] = 100
	got, _ := v.At(0)
	assert.Equal(t, 1, got)
}

// --- lenient mode ---

func TestLenientModeReturnsZeroAndLogs(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	v := New[int](core.WithMode(core.Lenient), core.WithLogger(zap.New(obsCore)))
	require.NoError(t, v.PushBack(7))

	got, err := v.At(5)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = New[int](core.WithMode(core.Lenient)).Back()
	require.NoError(t, err)

	require.NoError(t, v.Erase(3))
	require.NoError(t, v.Insert(9, 1))
	testutil.RequireSequence(t, v.Values(), []int{7})

	entries := logs.FilterMessage("suppressed container error").All()
	require.Len(t, entries, 3)
	assert.Equal(t, "vector.At", entries[0].ContextMap()["op"])
	assert.Equal(t, "vector.Erase", entries[1].ContextMap()["op"])
	assert.Equal(t, "vector.Insert", entries[2].ContextMap()["op"])
}

func TestReallocIsLoggedAtDebug(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	v := New[int](core.WithLogger(zap.New(obsCore)))
	for i := 0; i < 3; i++ {
		require.NoError(t, v.PushBack(i))
	}
	// 0 -> 1 -> 2 -> 4
	entries := logs.FilterMessage("vector realloc").All()
	require.Len(t, entries, 3)
	assert.EqualValues(t, 2, entries[2].ContextMap()["from"])
	assert.EqualValues(t, 4, entries[2].ContextMap()["to"])
}
