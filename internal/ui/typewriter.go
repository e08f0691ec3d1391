package ui

import (
	"sync"
	"time"
)

// DefaultTypingDelay is the pause between two revealed characters.
const DefaultTypingDelay = 100 * time.Millisecond

// Typewriter reveals a string one rune at a time on a fixed delay. The
// displayed text is always the prefix of the full text of length Revealed,
// and it stops growing once the whole text is shown.
type Typewriter struct {
	mu       sync.Mutex
	full     []rune
	revealed int
	delay    time.Duration
	clock    Clock
	timer    Timer
	started  bool
	stopped  bool
	onStep   func(text string, done bool)
}

func NewTypewriter(fullText string, clock Clock, delay time.Duration) *Typewriter {
	if clock == nil {
		clock = SystemClock()
	}
	if delay <= 0 {
		delay = DefaultTypingDelay
	}
	return &Typewriter{
		full:  []rune(fullText),
		delay: delay,
		clock: clock,
	}
}

// Text is the currently displayed prefix.
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.full[:t.revealed])
}

func (t *Typewriter) Revealed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed
}

func (t *Typewriter) Len() int { return len(t.full) }

// Done reports whether the terminal state has been reached.
func (t *Typewriter) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revealed >= len(t.full)
}

// Advance performs a single transition without involving the clock. It is a
// no-op in the terminal state.
func (t *Typewriter) Advance() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advanceLocked()
}

func (t *Typewriter) advanceLocked() (string, bool) {
	if t.revealed < len(t.full) {
		t.revealed++
	}
	return string(t.full[:t.revealed]), t.revealed >= len(t.full)
}

// Start schedules the reveal. onStep is called after every transition with
// the new prefix. Start returns false when nothing was scheduled: the text was
// already complete, or the typewriter was started or stopped before.
func (t *Typewriter) Start(onStep func(text string, done bool)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started || t.stopped || t.revealed >= len(t.full) {
		return false
	}
	t.started = true
	t.onStep = onStep
	t.timer = t.clock.AfterFunc(t.delay, t.tick)
	return true
}

// Stop cancels the pending step. It is safe to call more than once and from
// inside onStep.
func (t *Typewriter) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Typewriter) tick() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	text, done := t.advanceLocked()
	onStep := t.onStep
	t.mu.Unlock()

	if onStep != nil {
		onStep(text, done)
	}
	if done {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.stopped {
		t.timer = t.clock.AfterFunc(t.delay, t.tick)
	}
}
