package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextMeasurer(t *testing.T) {
	m := NewTextMeasurer(10)

	w0, h0 := m.Measure("")
	assert.Zero(t, w0)
	assert.Zero(t, h0)

	w1, h1 := m.Measure("0")
	w4, h4 := m.Measure("0000")
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, h1, 0.0)
	assert.InDelta(t, 4*w1, w4, 1e-6)
	assert.Equal(t, h1, h4)

	big := NewTextMeasurer(20)
	wb, _ := big.Measure("0")
	assert.Greater(t, wb, 1.5*w1)
}
