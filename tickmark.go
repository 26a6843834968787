package axis

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// TickMark is one major or minor tick as handed to the drawing layer.
type TickMark struct {
	Value    float64
	Position float64 // pixels from the axis start
	Label    string  // empty for minor ticks
	Visible  bool
	Rotation float64

	// Width and Height are the measured label extents.
	Width, Height float64
	// Shift moves the label away from the axis (ShiftAlt policies).
	Shift float64
}

// IsMinor reports whether t carries no label.
func (t *TickMark) IsMinor() bool { return t.Label == "" }

// tickCache recycles tick marks between frames: major marks by label,
// minor marks by value. Both caches are bounded LRUs.
type tickCache struct {
	major *lru.Cache[string, *TickMark]
	minor *lru.Cache[float64, *TickMark]
}

func newTickCache(size int) (*tickCache, error) {
	major, err := lru.New[string, *TickMark](size)
	if err != nil {
		return nil, configError("tickCacheSize", size, ErrInvalidOption)
	}
	minor, err := lru.New[float64, *TickMark](size)
	if err != nil {
		return nil, configError("tickCacheSize", size, ErrInvalidOption)
	}
	return &tickCache{major: major, minor: minor}, nil
}

// frame hands out tick marks for one layout pass. A mark is never
// handed out twice in the same pass, even if two values format to the
// same label.
type frame struct {
	cache *tickCache
	used  map[*TickMark]bool
}

func (c *tickCache) frame() *frame {
	return &frame{cache: c, used: make(map[*TickMark]bool)}
}

func (f *frame) tickMark(value, position float64, label string) *TickMark {
	var t *TickMark
	if label == "" {
		t, _ = f.cache.minor.Get(value)
	} else {
		t, _ = f.cache.major.Get(label)
	}
	if t == nil || f.used[t] {
		t = &TickMark{}
		if label == "" {
			f.cache.minor.Add(value, t)
		} else {
			f.cache.major.Add(label, t)
		}
	}
	f.used[t] = true
	t.Value, t.Position, t.Label = value, position, label
	t.Shift = 0
	return t
}

func (c *tickCache) purge() {
	c.major.Purge()
	c.minor.Purge()
}
