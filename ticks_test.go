package axis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorTicksLinear(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want []float64
	}{
		{"decades", Range{Lower: 0, Upper: 100, TickUnit: 10},
			[]float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{"unaligned", Range{Lower: -2.95, Upper: 8.45, TickUnit: 2},
			[]float64{-2, 0, 2, 4, 6, 8}},
		{"degenerate", Range{Lower: 3, Upper: 3, TickUnit: 1}, []float64{3}},
		{"no unit", Range{Lower: 3, Upper: 4}, []float64{3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MajorTicks(tc.r, LinearTransform{}))
		})
	}
}

func TestMajorTicksExactZero(t *testing.T) {
	ticks := MajorTicks(Range{Lower: -1, Upper: 1, TickUnit: 0.2}, LinearTransform{})
	require.Len(t, ticks, 11)
	assert.Equal(t, 0.0, ticks[5])
	assert.InDelta(t, 1.0, ticks[10], 1e-12)
}

func TestMajorTicksLog(t *testing.T) {
	ticks := MajorTicks(Range{Lower: 1, Upper: 1000}, mustLog(10))
	assert.Equal(t, []float64{1, 10, 100, 1000}, ticks)

	ticks = MajorTicks(Range{Lower: 2, Upper: 300}, mustLog(10))
	assert.Equal(t, []float64{10, 100}, ticks)

	ticks = MajorTicks(Range{Lower: 1, Upper: 20}, mustLog(2))
	assert.Equal(t, []float64{1, 2, 4, 8, 16}, ticks)
}

func TestMinorTicks(t *testing.T) {
	minor := MinorTicks(0, 10, 5, 5, LinearTransform{})
	assert.Equal(t, []float64{1, 2, 3, 4, 6, 7, 8, 9}, minor)

	assert.Nil(t, MinorTicks(0, 10, 5, 0, LinearTransform{}))
	assert.Nil(t, MinorTicks(10, 0, 5, 5, LinearTransform{}))

	minor = MinorTicks(1, 100, 0, 10, mustLog(10))
	require.Len(t, minor, 18)
	assert.InDelta(t, 1.9, minor[0], 1e-12)
	assert.InDelta(t, 91.0, minor[17], 1e-9)
	for _, v := range minor {
		assert.True(t, v > 1 && v < 100, "minor tick %g outside (1, 100)", v)
	}
}

func TestMajorTicksSnapToBounds(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"tenths", Range{Lower: 0, Upper: 0.3, TickUnit: 0.1}},
		{"offset tenths", Range{Lower: 0.1, Upper: 0.7, TickUnit: 0.1}},
		{"sevenths", Range{Lower: 0, Upper: 0.7, TickUnit: 0.1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ticks := MajorTicks(tc.r, LinearTransform{})
			require.NotEmpty(t, ticks)
			assert.Equal(t, tc.r.Lower, ticks[0])
			assert.Equal(t, tc.r.Upper, ticks[len(ticks)-1])
			for _, v := range ticks {
				assert.True(t, v >= tc.r.Lower && v <= tc.r.Upper, "tick %v outside %s", v, tc.r)
			}
		})
	}
}
