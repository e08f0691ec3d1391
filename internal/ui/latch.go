package ui

// RevealThreshold is the fraction of the viewport height the section top has
// to cross before the skill bars start animating.
const RevealThreshold = 0.75

// Latch is a one-way reveal flag: once set it never clears.
type Latch struct {
	revealed bool
}

// RestoreLatch rebuilds a latch from a previously reported state.
func RestoreLatch(revealed bool) *Latch {
	return &Latch{revealed: revealed}
}

// Observe evaluates the section position. top is the distance from the
// viewport top to the section's bounding box, viewportHeight the window
// height. It returns the latch state after the observation.
func (l *Latch) Observe(top, viewportHeight float64) bool {
	if !l.revealed && top < viewportHeight*RevealThreshold {
		l.revealed = true
	}
	return l.revealed
}

func (l *Latch) Revealed() bool { return l.revealed }

// Progress is the value a progress bar shows for level: zero until revealed,
// then the level clamped to [0,100].
func (l *Latch) Progress(level int) int {
	if !l.revealed {
		return 0
	}
	return clamp(level, 0, 100)
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
