package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTypewriterRevealsPrefixes(t *testing.T) {
	clock := NewManualClock(epoch)
	full := "AI & ML engineer | Software Developer"
	tw := NewTypewriter(full, clock, 100*time.Millisecond)

	var steps []string
	var finished int
	require.True(t, tw.Start(func(text string, done bool) {
		steps = append(steps, text)
		if done {
			finished++
		}
	}))

	assert.Equal(t, "", tw.Text())
	clock.Advance(99 * time.Millisecond)
	assert.Empty(t, steps, "first character waits one full delay")

	clock.Advance(time.Millisecond)
	require.Equal(t, []string{"A"}, steps)

	clock.Advance(time.Duration(len(full)) * 100 * time.Millisecond)
	require.Len(t, steps, len(full))
	for i, s := range steps {
		assert.Len(t, s, i+1)
		assert.True(t, strings.HasPrefix(full, s))
	}
	assert.Equal(t, full, tw.Text())
	assert.True(t, tw.Done())
	assert.Equal(t, 1, finished)
	assert.Zero(t, clock.Pending(), "terminal state schedules nothing")

	clock.Advance(time.Hour)
	assert.Len(t, steps, len(full))
	assert.Equal(t, full, tw.Text())
}

func TestTypewriterCountsRunes(t *testing.T) {
	clock := NewManualClock(epoch)
	tw := NewTypewriter("héllo", clock, 0)

	var last string
	tw.Start(func(text string, _ bool) { last = text })
	clock.Advance(2 * DefaultTypingDelay)
	assert.Equal(t, "hé", last)
	assert.Equal(t, 2, tw.Revealed())
	assert.Equal(t, 5, tw.Len())
}

func TestTypewriterEmptyTextIsTerminal(t *testing.T) {
	clock := NewManualClock(epoch)
	tw := NewTypewriter("", clock, 0)

	assert.True(t, tw.Done())
	assert.False(t, tw.Start(func(string, bool) { t.Fatal("no step expected") }))
	assert.Zero(t, clock.Pending())
}

func TestTypewriterStopCancelsPendingTimer(t *testing.T) {
	clock := NewManualClock(epoch)
	tw := NewTypewriter("hello", clock, 0)

	calls := 0
	tw.Start(func(string, bool) { calls++ })
	clock.Advance(DefaultTypingDelay)
	require.Equal(t, 1, calls)

	tw.Stop()
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "h", tw.Text())

	tw.Stop()
	assert.False(t, tw.Start(func(string, bool) {}), "stopped typewriter cannot restart")
}

func TestTypewriterStopFromCallback(t *testing.T) {
	clock := NewManualClock(epoch)
	tw := NewTypewriter("hello", clock, 0)

	tw.Start(func(text string, _ bool) {
		if text == "he" {
			tw.Stop()
		}
	})
	clock.Advance(time.Second)
	assert.Equal(t, "he", tw.Text())
	assert.Zero(t, clock.Pending())
}

func TestTypewriterAdvanceIsIdempotentAtEnd(t *testing.T) {
	tw := NewTypewriter("ab", NewManualClock(epoch), 0)

	text, done := tw.Advance()
	assert.Equal(t, "a", text)
	assert.False(t, done)
	text, done = tw.Advance()
	assert.Equal(t, "ab", text)
	assert.True(t, done)
	text, done = tw.Advance()
	assert.Equal(t, "ab", text)
	assert.True(t, done)
}

func TestLatchIsOneWay(t *testing.T) {
	l := &Latch{}
	assert.False(t, l.Revealed())
	assert.Equal(t, 0, l.Progress(90))

	assert.False(t, l.Observe(700, 800), "600px is the threshold for an 800px viewport")
	assert.False(t, l.Observe(600, 800))
	assert.Equal(t, 0, l.Progress(90))

	assert.True(t, l.Observe(599, 800))
	assert.Equal(t, 90, l.Progress(90))

	assert.True(t, l.Observe(5000, 800), "scrolling back up keeps bars revealed")
	assert.Equal(t, 90, l.Progress(90))
}

func TestLatchProgressClamps(t *testing.T) {
	l := RestoreLatch(true)
	assert.Equal(t, 100, l.Progress(140))
	assert.Equal(t, 0, l.Progress(-3))
}

func TestTabs(t *testing.T) {
	tabs := NewTabs("Frontend", "Backend", "DevOps")
	assert.Equal(t, "Frontend", tabs.Active())

	require.NoError(t, tabs.Select("DevOps"))
	assert.True(t, tabs.IsActive("DevOps"))
	assert.False(t, tabs.IsActive("Frontend"))

	err := tabs.Select("Design")
	assert.True(t, errors.Is(err, ErrUnknownTab))
	assert.Equal(t, "DevOps", tabs.Active(), "failed select keeps selection")

	require.NoError(t, tabs.Select(""))
	assert.Equal(t, "DevOps", tabs.Active())

	assert.Equal(t, "", NewTabs().Active())
}

func TestThemeToggleRoundTrip(t *testing.T) {
	theme := ParseTheme("")
	assert.Equal(t, Light, theme)
	assert.Equal(t, "", theme.Class())

	dark := theme.Toggle()
	assert.Equal(t, Dark, dark)
	assert.Equal(t, "dark", dark.Class())
	assert.Equal(t, Light, dark.Toggle())

	assert.Equal(t, Light, ParseTheme("solarized"))
}

func TestToggleDoubleFlip(t *testing.T) {
	for _, start := range []Toggle{false, true} {
		assert.Equal(t, start, start.Flip().Flip())
	}
	assert.Equal(t, Toggle(true), ParseToggle("1"))
	assert.Equal(t, Toggle(false), ParseToggle(""))
	assert.Equal(t, "1", Toggle(true).Param())
}

func TestParallaxAndOrbit(t *testing.T) {
	assert.InDelta(t, 20.0, ParallaxOffset(200, ProjectsParallax), 1e-9)
	assert.InDelta(t, -10.0, ParallaxOffset(200, SkillsParallax), 1e-9)

	x, y := Orbit(0)
	assert.InDelta(t, 71.91, x, 0.01)
	assert.InDelta(t, 131.64, y, 0.01)
	assert.Equal(t, 14*time.Second, OrbitDuration(2))
}
