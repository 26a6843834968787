package axis

import (
	"fmt"
	"math"
	"sort"
)

// A TickUnitSupplier turns a raw tick spacing into a "nice" tick unit.
//
// TickUnit must return the smallest value of its progression that is
// >= raw, must be nondecreasing in raw and must never return a value <= 0.
type TickUnitSupplier interface {
	TickUnit(raw float64) float64
}

// TickUnitFunc adapts an ordinary function to a TickUnitSupplier.
type TickUnitFunc func(raw float64) float64

// TickUnit calls f(raw).
func (f TickUnitFunc) TickUnit(raw float64) float64 { return f(raw) }

// ----------------------------------------------------------------------------
// Decade progressions

// DecadeTickUnits supplies units of the form m × 10^k for the given
// multipliers m.
type DecadeTickUnits struct {
	multipliers []float64
}

// DefaultTickUnits is the {1, 2, 5} × 10^k progression.
var DefaultTickUnits = DecadeTickUnits{multipliers: []float64{1, 2, 5}}

// NewDecadeTickUnits returns a supplier for the multipliers which must
// lie in [1, 10). They are sorted and deduplicated.
func NewDecadeTickUnits(multipliers ...float64) (DecadeTickUnits, error) {
	if len(multipliers) == 0 {
		return DecadeTickUnits{}, configError("tickUnitMultipliers", multipliers, ErrInvalidOption)
	}
	ms := append([]float64(nil), multipliers...)
	sort.Float64s(ms)
	out := ms[:0]
	for i, m := range ms {
		if !(m >= 1 && m < 10) {
			return DecadeTickUnits{}, configError("tickUnitMultipliers", multipliers,
				fmt.Errorf("%w: multiplier %g outside [1, 10)", ErrInvalidOption, m))
		}
		if i > 0 && m == ms[i-1] {
			continue
		}
		out = append(out, m)
	}
	return DecadeTickUnits{multipliers: out}, nil
}

// TickUnit returns the smallest m × 10^k >= raw.
func (d DecadeTickUnits) TickUnit(raw float64) float64 {
	if !(raw > 0) || math.IsInf(raw, 1) {
		return raw
	}
	exp := math.Floor(math.Log10(raw))
	for _, e := range [...]float64{exp - 1, exp, exp + 1} {
		scale := math.Pow10(int(e))
		for _, m := range d.multipliers {
			// Compare with a relative tolerance so that raw == 2e-3
			// still yields 2e-3 and not 5e-3.
			if u := m * scale; u >= raw*(1-1e-12) {
				return u
			}
		}
	}
	return math.Pow10(int(exp) + 2)
}

// ----------------------------------------------------------------------------
// Time progression

// TimeTickUnits supplies units in seconds that align with clock and
// calendar boundaries: seconds, minutes, hours, days and, below one
// second and above 30 days, the default decade progression.
var TimeTickUnits TickUnitSupplier = TickUnitFunc(timeTickUnit)

var timeUnits = []float64{
	1, 2, 5, 10, 15, 30, // seconds
	60, 2 * 60, 5 * 60, 10 * 60, 15 * 60, 30 * 60, // minutes
	3600, 2 * 3600, 3 * 3600, 6 * 3600, 12 * 3600, // hours
	86400, 2 * 86400, 7 * 86400, 14 * 86400, 30 * 86400, // days
}

func timeTickUnit(raw float64) float64 {
	if raw < 1 || raw > timeUnits[len(timeUnits)-1] {
		return DefaultTickUnits.TickUnit(raw)
	}
	i := sort.SearchFloat64s(timeUnits, raw)
	return timeUnits[i]
}

// ----------------------------------------------------------------------------
// Validation

// probeUnits spans the magnitudes a supplier is checked over when it is
// installed.
var probeUnits = []float64{1e-9, 1e-6, 1e-3, 0.3, 1, 1.1, 4.9, 7, 1e3, 1e6, 1e9}

// validateSupplier fails if s returns a non-positive unit or is not
// monotone over probeUnits.
func validateSupplier(s TickUnitSupplier) error {
	if s == nil {
		return configError("tickUnitSupplier", nil, ErrNoTickUnitSupplier)
	}
	prev := 0.0
	for _, raw := range probeUnits {
		u, err := checkedTickUnit(s, raw)
		if err != nil {
			return err
		}
		if u < prev {
			return configError("tickUnitSupplier", fmt.Sprintf("%T", s),
				fmt.Errorf("%w: unit %g for %g is below unit %g for a smaller argument",
					ErrBadTickUnit, u, raw, prev))
		}
		prev = u
	}
	return nil
}

// checkedTickUnit calls s and rejects non-positive or NaN units.
func checkedTickUnit(s TickUnitSupplier, raw float64) (float64, error) {
	if s == nil {
		return 0, configError("tickUnitSupplier", nil, ErrNoTickUnitSupplier)
	}
	u := s.TickUnit(raw)
	if !(u > 0) || math.IsInf(u, 1) {
		return 0, configError("tickUnitSupplier", fmt.Sprintf("%T", s),
			fmt.Errorf("%w: unit %g for argument %g", ErrBadTickUnit, u, raw))
	}
	return u, nil
}
