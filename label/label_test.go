package label

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	n := NewNumber()
	tests := []struct {
		value, unit float64
		want        string
	}{
		{0.5, 1, "0.5"},
		{1500, 1000, "1.5"},
		{-3, 1, "-3"},
		{0, 1, "0"},
		{1e-12, 1, "0"},
		{2e9, 1, "2.0E9"},
		{math.NaN(), 1, "NaN"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.value), func(t *testing.T) {
			assert.Equal(t, tc.want, n.Format(tc.value, tc.unit))
		})
	}
}

func TestNumberAdaptTicks(t *testing.T) {
	n := NewNumber()
	n.AdaptTicks([]float64{0, 0.25, 0.5}, 1)
	assert.Equal(t, 2, n.Digits)
	assert.Equal(t, "0.25", n.Format(0.25, 1))
	assert.Equal(t, "0.5", n.Format(0.5, 1))

	n.AdaptTicks([]float64{0, 10, 20}, 1)
	assert.Equal(t, 0, n.Digits)
	assert.Equal(t, "20", n.Format(20, 1))

	n.AdaptTicks([]float64{0, 10, 20}, 100)
	assert.Equal(t, 1, n.Digits)
	assert.Equal(t, "0.2", n.Format(20, 100))

	n.AdaptTicks([]float64{5}, 1)
	assert.Equal(t, DefaultDigits, n.Digits)
}

func TestPrecision(t *testing.T) {
	tests := []struct {
		div  float64
		want int
	}{
		{10, 0},
		{1, 0},
		{0.5, 1},
		{0.25, 2},
		{0.001, 3},
		{2e-5, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Precision(tc.div), "Precision(%g)", tc.div)
	}
}

func TestExponential(t *testing.T) {
	assert.Equal(t, "1.5E3", Exponential(1500, 1))
	assert.Equal(t, "1.2E-4", Exponential(0.00012, 1))
	assert.Equal(t, "-2.0E0", Exponential(-2, 1))
}

func TestSI(t *testing.T) {
	assert.Equal(t, "1.5 kHz", SI{Unit: "Hz", Digits: 1}.Format(1500, 1))
	assert.Equal(t, "2 M", SI{}.Format(2e6, 1))
}

func TestLog(t *testing.T) {
	l := NewLog()
	l.AdaptTicks([]float64{1, 10, 100}, 1)
	assert.Equal(t, "100", l.Format(100, 1))
	assert.Equal(t, "0.01", l.Format(0.01, 1))

	l.AdaptTicks([]float64{1e-3, 1, 1e3}, 1)
	assert.Equal(t, "1.0E3", l.Format(1000, 1))
	assert.Equal(t, "1.0E-3", l.Format(0.001, 1))
}
