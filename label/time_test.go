package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeLayout(t *testing.T) {
	tests := []struct {
		spacing float64
		want    string
	}{
		{0.2, "15:04:05.000"},
		{5, time.TimeOnly},
		{600, "15:04"},
		{86400, "Jan 02"},
		{90 * 86400, "2006-01"},
		{0, time.DateTime},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TimeLayout(tc.spacing), "spacing %g", tc.spacing)
	}
}

func TestTime(t *testing.T) {
	f := NewTime()
	assert.Equal(t, "1970-01-01 00:00:10", f.Format(10, 1))

	f.AdaptTicks([]float64{0, 3600, 7200}, 1)
	assert.Equal(t, "02:00", f.Format(7200, 1))

	f.Epoch = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	f.AdaptTicks([]float64{0, 86400}, 1)
	assert.Equal(t, "Mar 02", f.Format(86400, 1))
	assert.Empty(t, f.Format(nan(), 1))
}

func nan() float64 {
	var zero float64
	return zero / zero
}
