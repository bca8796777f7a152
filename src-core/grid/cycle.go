package grid

// CycleSet deals out alternating visual classes, keyed by grid column
// and the occasion's event kind. Each (column, kind) pair keeps its own
// counter, so every column alternates independently for every kind.
type CycleSet struct {
	palettes map[string][]string
	fallback []string
	counters map[int]map[string]int
}

// NewCycleSet builds a cycle set with the stock even/odd palette for
// each given kind, plus a kindless fallback palette.
func NewCycleSet(kinds ...string) *CycleSet {
	palettes := make(map[string][]string, len(kinds))
	for _, kind := range kinds {
		palettes[kind] = []string{"evt-" + kind + "-even", "evt-" + kind + "-odd"}
	}
	return &CycleSet{
		palettes: palettes,
		fallback: []string{"evt-even", "evt-odd"},
		counters: make(map[int]map[string]int),
	}
}

// SetPalette overrides the class palette for one kind.
func (c *CycleSet) SetPalette(kind string, classes ...string) {
	c.palettes[kind] = classes
}

// next returns the class for the column/kind pair and advances its
// counter.
func (c *CycleSet) next(column int, kind string) string {
	palette, ok := c.palettes[kind]
	if !ok || len(palette) == 0 {
		palette = c.fallback
	}
	byKind, ok := c.counters[column]
	if !ok {
		byKind = make(map[string]int)
		c.counters[column] = byKind
	}
	n := byKind[kind]
	byKind[kind] = n + 1
	return palette[n%len(palette)]
}
