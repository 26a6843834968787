package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickCacheReuse(t *testing.T) {
	c, err := newTickCache(4)
	require.NoError(t, err)

	f := c.frame()
	a := f.tickMark(1, 10, "1")
	m := f.tickMark(1.5, 15, "")
	a.Shift = 7

	f = c.frame()
	assert.Same(t, a, f.tickMark(1, 20, "1"), "major marks are recycled by label")
	assert.Same(t, m, f.tickMark(1.5, 25, ""), "minor marks are recycled by value")
	assert.Equal(t, 20.0, a.Position)
	assert.Zero(t, a.Shift)
}

func TestTickCacheFrameUnique(t *testing.T) {
	c, err := newTickCache(4)
	require.NoError(t, err)

	f := c.frame()
	a := f.tickMark(1, 10, "1")
	b := f.tickMark(1.0001, 11, "1")
	assert.NotSame(t, a, b)
	assert.Equal(t, 1.0, a.Value)
	assert.Equal(t, 1.0001, b.Value)
}

func TestTickCacheBounded(t *testing.T) {
	c, err := newTickCache(2)
	require.NoError(t, err)
	f := c.frame()
	for _, l := range []string{"a", "b", "c", "d"} {
		f.tickMark(0, 0, l)
	}
	assert.Equal(t, 2, c.major.Len())

	c.purge()
	assert.Zero(t, c.major.Len())
	assert.Zero(t, c.minor.Len())

	_, err = newTickCache(0)
	assert.ErrorIs(t, err, ErrInvalidOption)
}
