package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

func TestBombFootprint(t *testing.T) {
	tests := []struct {
		name  string
		index int
		wrap  bool
		want  []int
	}{
		{"top-left corner", 0, false, []int{0, 1, 8, 9}},
		{"center", 27, false, []int{18, 19, 20, 26, 27, 28, 34, 35, 36}},
		{"bottom-right corner", 63, false, []int{54, 55, 62, 63}},
		{"left edge", 8, false, []int{0, 1, 8, 9, 16, 17}},
		{"left edge wraps", 8, true, []int{0, 1, 7, 8, 9, 15, 16, 17}},
		{"right edge", 15, false, []int{6, 7, 14, 15, 22, 23}},
		{"right edge wraps", 15, true, []int{6, 7, 8, 14, 15, 16, 22, 23, 24}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.BombFootprint(8, tc.index, tc.wrap))
		})
	}
}

func TestTriggerBombCorner(t *testing.T) {
	g := patternGrid(8)
	g.Set(0, core.Bomb)

	s := loadSession(g, newCycleRand(0))
	require.True(t, s.BombPresent())

	var events []core.CrushEvent
	s.SetFeedback(func(ev core.CrushEvent) { events = append(events, ev) })

	d := s.TriggerBomb(0)

	assert.True(t, d.Applied)
	assert.Equal(t, 0, d.BombCell)
	assert.Equal(t, 30, d.Points)
	assert.Equal(t, 30, s.Score())
	assert.False(t, s.BombPresent())
	for _, i := range []int{0, 1, 8, 9} {
		assert.True(t, s.Token(i).IsEmpty(), "cell %d", i)
	}
	assert.False(t, s.Token(2).IsEmpty())
	assert.False(t, s.Token(16).IsEmpty())

	require.Len(t, events, 1)
	assert.Equal(t, core.SourceBomb, events[0].Source)
	assert.Equal(t, 1, d.Crushes)
}

func TestTriggerBombIsFlatBonus(t *testing.T) {
	// Nine cells cleared, still thirty points.
	s := loadSession(patternGrid(8), newCycleRand(0))
	d := s.TriggerBomb(27)

	assert.Len(t, d.Cleared, 9)
	assert.Equal(t, 30, d.Points)
}

func TestTriggerBombOutOfRange(t *testing.T) {
	s := loadSession(patternGrid(8), newCycleRand(0))
	before := s.Grid()

	for _, i := range []int{-1, 64, 1000} {
		d := s.TriggerBomb(i)
		assert.False(t, d.Applied, "index %d", i)
		assert.Equal(t, -1, d.BombCell)
	}
	assert.Equal(t, 0, s.Score())
	assert.True(t, s.Grid().Equal(before))
}

func TestTriggerThenSweepSettles(t *testing.T) {
	s := core.NewSession(core.DefaultRules(), rand.New(rand.NewSource(3)))
	s.Reset()
	s.TriggerBomb(35)
	assert.False(t, s.Grid().Full())

	s.ResolveCascade()

	g := s.Grid()
	assert.True(t, g.Full())
	assert.False(t, core.HasRuns(g, false))
}

func TestSpawnBombOnlyOnce(t *testing.T) {
	s := loadSession(patternGrid(8), newCycleRand(27, 5))

	d := s.SpawnBomb()
	require.True(t, d.Applied)
	assert.Equal(t, 27, d.BombCell)
	assert.True(t, s.Token(27).IsBomb())
	assert.True(t, s.BombPresent())

	d = s.SpawnBomb()
	assert.False(t, d.Applied)
	assert.Equal(t, 1, s.Grid().Count(core.Bomb))
}

func TestSpawnAfterTrigger(t *testing.T) {
	s := loadSession(patternGrid(8), newCycleRand(27, 5))
	s.SpawnBomb()
	s.TriggerBomb(27)

	d := s.SpawnBomb()
	assert.True(t, d.Applied)
	assert.Equal(t, 5, d.BombCell)
}

func TestTriggerAwayFromBombKeepsSlot(t *testing.T) {
	g := patternGrid(8)
	g.Set(63, core.Bomb)
	s := loadSession(g, newCycleRand(5))

	d := s.TriggerBomb(0)
	require.True(t, d.Applied)
	assert.True(t, s.BombPresent())

	d = s.SpawnBomb()
	assert.False(t, d.Applied)
	assert.Equal(t, 1, s.Grid().Count(core.Bomb))
	assert.True(t, s.Token(63).IsBomb())
}

func TestBombSurvivesCascade(t *testing.T) {
	g := patternGrid(8)
	g.Set(0, core.Bomb)
	for _, i := range []int{56, 57, 58} {
		g.Set(i, red())
	}

	s := loadSession(g, rand.New(rand.NewSource(11)))
	d := s.ResolveCascade()

	require.GreaterOrEqual(t, d.Points, 30)
	final := s.Grid()
	assert.Equal(t, 1, final.Count(core.Bomb))
	assert.True(t, s.BombPresent())
	assert.True(t, final.Full())
}
