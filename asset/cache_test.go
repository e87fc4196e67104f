package asset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blob struct {
	key string
}

func countingLoader(calls *int, fail map[string]bool) Loader[int, *blob] {
	return func(key string, _ int) (*blob, error) {
		*calls++
		if fail[key] {
			return nil, ErrNotFound
		}
		return &blob{key: key}, nil
	}
}

func TestCacheLoadsOnce(t *testing.T) {
	var calls int
	c := NewCache("blobs", countingLoader(&calls, nil), nil, nil)

	a, ok := c.Load("ship", 0)
	require.True(t, ok)
	b, ok := c.Load("ship", 0)
	require.True(t, ok)

	assert.Same(t, a, b)
	assert.Same(t, a.Get(), b.Get())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
	// cache reference plus two callers
	assert.Equal(t, 3, a.Refs())
}

func TestCacheFailureNotInserted(t *testing.T) {
	var calls int
	fail := map[string]bool{"missing": true}
	c := NewCache("blobs", countingLoader(&calls, fail), nil, nil)

	ref, ok := c.Load("missing", 0)
	assert.False(t, ok)
	assert.Nil(t, ref)
	assert.Equal(t, 0, c.Len())

	// retry reaches the loader again
	delete(fail, "missing")
	ref, ok = c.Load("missing", 0)
	require.True(t, ok)
	assert.Equal(t, "missing", ref.Get().key)
	assert.Equal(t, 2, calls)
}

func TestCacheGetDoesNotLoad(t *testing.T) {
	var calls int
	c := NewCache("blobs", countingLoader(&calls, nil), nil, nil)

	_, ok := c.Get("ship")
	assert.False(t, ok)
	assert.Equal(t, 0, calls)

	require.NoError(t, c.Preload("ship", 0))
	ref, ok := c.Get("ship")
	require.True(t, ok)
	assert.Equal(t, 2, ref.Refs())
}

func TestCachePreloadWrapsError(t *testing.T) {
	var calls int
	c := NewCache("blobs", countingLoader(&calls, map[string]bool{"x": true}), nil, nil)

	err := c.Preload("x", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `blobs "x"`)
}

func TestCacheCloseKeepsHeldResources(t *testing.T) {
	var released []string
	var calls int
	c := NewCache("blobs", countingLoader(&calls, nil), func(b *blob) {
		released = append(released, b.key)
	}, nil)

	held, ok := c.Load("held", 0)
	require.True(t, ok)
	require.NoError(t, c.Preload("idle", 0))

	c.Close()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{"idle"}, released)
	assert.True(t, held.Alive())

	held.Release()
	assert.Equal(t, []string{"idle", "held"}, released)
}
