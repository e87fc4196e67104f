package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefReleaseRunsOnce(t *testing.T) {
	var n int
	r := NewRef("buf", func(string) { n++ })

	r.Retain()
	r.Release()
	assert.Equal(t, 0, n)
	assert.True(t, r.Alive())

	r.Release()
	assert.Equal(t, 1, n)
	assert.False(t, r.Alive())

	// further releases on a dead handle are ignored
	r.Release()
	assert.Equal(t, 1, n)
}

func TestRefNilSafe(t *testing.T) {
	var r *Ref[int]
	assert.Nil(t, r.Retain())
	assert.Equal(t, 0, r.Refs())
	assert.NotPanics(t, r.Release)
}
