package axis

import (
	"fmt"
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ----------------------------------------------------------------------------
// OverlapPolicy

// OverlapPolicy selects how colliding tick labels are resolved.
type OverlapPolicy int

const (
	// SkipAlt hides labels so that only every stride-th label is shown
	// once an overlap is detected.
	SkipAlt OverlapPolicy = iota
	// DoNothing leaves all labels visible and unshifted.
	DoNothing
	// ShiftAlt moves every other label away from the axis once an
	// overlap is detected.
	ShiftAlt
	// ForcedShiftAlt always moves every other label away from the axis.
	ForcedShiftAlt
	// NarrowFont leaves all labels in place and asks the renderer for a
	// condensed font when labels overlap.
	NarrowFont

	numOverlapPolicies
)

var overlapPolicyNames = [numOverlapPolicies]string{
	SkipAlt:        "skip-alt",
	DoNothing:      "do-nothing",
	ShiftAlt:       "shift-alt",
	ForcedShiftAlt: "forced-shift-alt",
	NarrowFont:     "narrow-font",
}

// String returns the name of p.
func (p OverlapPolicy) String() string {
	if p < 0 || p >= numOverlapPolicies {
		return fmt.Sprintf("OverlapPolicy(%d)", int(p))
	}
	return overlapPolicyNames[p]
}

func (p OverlapPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *OverlapPolicy) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	name = strings.ReplaceAll(name, "_", "-")
	for i, n := range overlapPolicyNames {
		if n == name {
			*p = OverlapPolicy(i)
			return nil
		}
	}
	return configError("overlapPolicy", string(text), ErrInvalidOption)
}

// ----------------------------------------------------------------------------
// Overlap resolution

// LabelBox is the footprint of one major tick label.
type LabelBox struct {
	// Position is the pixel position of the tick along the axis.
	Position float64
	// Size is the label extent along the axis (width on horizontal
	// axes, height on vertical ones).
	Size float64
	// Thickness is the label extent perpendicular to the axis.
	Thickness float64
	// Visible is false for labels switched off before resolution.
	Visible bool
}

// OverlapConfig parametrises ResolveOverlap.
type OverlapConfig struct {
	Policy   OverlapPolicy
	Length   float64 // axis length in pixels
	Gap      float64 // minimum gap between adjacent labels
	Vertical bool
}

// Decision is the outcome for a single label.
type Decision struct {
	Visible bool
	Shift   float64
}

// Resolution is the result of ResolveOverlap.
type Resolution struct {
	// Overlap reports whether any labels were found to collide.
	Overlap bool
	// Stride is the global skip stride; 0 if the labels fit.
	Stride int
	// Condensed asks the renderer for a narrower font (NarrowFont).
	Condensed bool

	n       int
	visible *bitset.BitSet
	shift   float64
	shifted *bitset.BitSet
}

// Len returns the number of labels resolved.
func (r Resolution) Len() int { return r.n }

// Visible reports whether label i is shown.
func (r Resolution) Visible(i int) bool {
	return r.visible != nil && r.visible.Test(uint(i))
}

// Shift returns the perpendicular offset of label i in pixels.
func (r Resolution) Shift(i int) float64 {
	if r.shifted != nil && r.shifted.Test(uint(i)) {
		return r.shift
	}
	return 0
}

// VisibleCount returns the number of visible labels.
func (r Resolution) VisibleCount() int {
	if r.visible == nil {
		return 0
	}
	return int(r.visible.Count())
}

// Decisions returns the per label outcome in order.
func (r Resolution) Decisions() []Decision {
	ds := make([]Decision, r.n)
	for i := range ds {
		ds[i] = Decision{Visible: r.Visible(i), Shift: r.Shift(i)}
	}
	return ds
}

// overlapState is shared by all policy handlers.
type overlapState struct {
	labels []LabelBox
	cfg    OverlapConfig
	res    *Resolution
}

type overlapHandler func(s *overlapState)

// overlapHandlers has exactly one handler per OverlapPolicy.
var overlapHandlers = [numOverlapPolicies]overlapHandler{
	SkipAlt:        resolveSkipAlt,
	DoNothing:      func(*overlapState) {},
	ShiftAlt:       resolveShiftAlt,
	ForcedShiftAlt: resolveForcedShiftAlt,
	NarrowFont:     resolveNarrowFont,
}

// ResolveOverlap decides visibility and perpendicular shift of each label.
//
// An overlap is detected if the summed label sizes exceed the axis length
// (which also yields the global skip stride) or if the first or the last
// pair of labels are closer than cfg.Gap.
func ResolveOverlap(labels []LabelBox, cfg OverlapConfig) Resolution {
	n := len(labels)
	res := Resolution{n: n, visible: bitset.New(uint(n)), shifted: bitset.New(uint(n))}
	for i, l := range labels {
		if l.Visible {
			res.visible.Set(uint(i))
		}
	}

	total, maxSize, maxThick := 0.0, 0.0, 0.0
	for _, l := range labels {
		if !l.Visible {
			continue
		}
		total += l.Size
		maxSize = math.Max(maxSize, math.Round(l.Size))
		maxThick = math.Max(maxThick, l.Thickness)
	}
	if maxSize > 0 && cfg.Length < total {
		res.Overlap = true
		if cfg.Length > 0 {
			res.Stride = int(float64(n)*maxSize/cfg.Length) + 1
		} else {
			res.Stride = n
		}
	}
	if n > 2 {
		if labelsOverlap(labels[0], labels[1], cfg) || labelsOverlap(labels[n-2], labels[n-1], cfg) {
			res.Overlap = true
		}
	}
	res.shift = maxThick + cfg.Gap

	policy := cfg.Policy
	if policy < 0 || policy >= numOverlapPolicies {
		policy = SkipAlt
	}
	overlapHandlers[policy](&overlapState{labels: labels, cfg: cfg, res: &res})
	return res
}

// labelsOverlap reports whether the near edges of two adjacent visible
// labels are at most cfg.Gap apart. Vertical axes run top-down in pixels
// while values increase upwards, so m1 lies below m2.
func labelsOverlap(m1, m2 LabelBox, cfg OverlapConfig) bool {
	if !m1.Visible || !m2.Visible {
		return false
	}
	m1Start, m1End := m1.Position-m1.Size/2, m1.Position+m1.Size/2
	m2Start, m2End := m2.Position-m2.Size/2, m2.Position+m2.Size/2
	if cfg.Vertical {
		return m1Start-m2End <= cfg.Gap
	}
	return m2Start-m1End <= cfg.Gap
}

// forVisible calls f with the running index among the initially visible
// labels. Using that index keeps the pattern stable between frames.
func (s *overlapState) forVisible(f func(i, k int)) {
	k := 0
	for i, l := range s.labels {
		if !l.Visible {
			continue
		}
		f(i, k)
		k++
	}
}

func resolveSkipAlt(s *overlapState) {
	if !s.res.Overlap {
		return
	}
	stride := s.res.Stride
	if stride < 2 {
		stride = 2
		s.res.Stride = stride
	}
	s.forVisible(func(i, k int) {
		if k%stride != 0 {
			s.res.visible.Clear(uint(i))
		}
	})
}

func resolveShiftAlt(s *overlapState) {
	if s.res.Overlap {
		shiftAlternate(s)
	}
}

func resolveForcedShiftAlt(s *overlapState) {
	shiftAlternate(s)
}

func shiftAlternate(s *overlapState) {
	s.forVisible(func(i, k int) {
		if k%2 == 1 {
			s.res.shifted.Set(uint(i))
		}
	})
}

func resolveNarrowFont(s *overlapState) {
	s.res.Condensed = s.res.Overlap
}
