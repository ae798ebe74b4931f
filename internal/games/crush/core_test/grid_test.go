package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
)

func TestGridIndexMath(t *testing.T) {
	g := core.NewGrid(8)

	assert.Equal(t, 64, g.Size())
	assert.Equal(t, 19, g.Index(2, 3))
	assert.Equal(t, 2, g.Row(19))
	assert.Equal(t, 3, g.Col(19))
	assert.True(t, g.InBounds(0))
	assert.True(t, g.InBounds(63))
	assert.False(t, g.InBounds(-1))
	assert.False(t, g.InBounds(64))
}

func TestGridStartsEmpty(t *testing.T) {
	g := core.NewGrid(5)
	for i := range g.Size() {
		assert.True(t, g.Get(i).IsEmpty(), "cell %d", i)
	}
	assert.False(t, g.Full())
	assert.Equal(t, -1, g.BombIndex())
}

func TestIsAdjacent(t *testing.T) {
	g := core.NewGrid(8)

	tests := []struct {
		name string
		i, j int
		want bool
	}{
		{"right neighbor", 0, 1, true},
		{"left neighbor", 12, 11, true},
		{"below", 3, 11, true},
		{"above", 40, 32, true},
		{"row wrap is not adjacent", 7, 8, false},
		{"diagonal", 0, 9, false},
		{"anti-diagonal", 9, 16, false},
		{"same cell", 5, 5, false},
		{"two apart", 0, 2, false},
		{"two rows apart", 0, 16, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsAdjacent(tc.i, tc.j))
		})
	}
}

func TestIsAdjacentSymmetric(t *testing.T) {
	g := core.NewGrid(8)
	for i := range g.Size() {
		for j := range g.Size() {
			require.Equal(t, g.IsAdjacent(i, j), g.IsAdjacent(j, i), "i=%d j=%d", i, j)
		}
	}
}

func TestSwapTwiceRestores(t *testing.T) {
	g := patternGrid(8)
	before := g.Clone()

	g.Swap(10, 11)
	assert.Equal(t, before.Get(10), g.Get(11))
	assert.Equal(t, before.Get(11), g.Get(10))

	g.Swap(10, 11)
	assert.True(t, g.Equal(before))
}

func TestGridSetIgnoresOutOfRange(t *testing.T) {
	g := core.NewGrid(4)
	g.Set(-1, core.Bomb)
	g.Set(16, core.Bomb)
	assert.Equal(t, 0, g.Count(core.Bomb))
	assert.Equal(t, core.Empty, g.Get(99))
}

func TestCloneIsIndependent(t *testing.T) {
	g := patternGrid(6)
	c := g.Clone()
	c.Set(0, core.Bomb)

	assert.NotEqual(t, g.Get(0), c.Get(0))
	assert.False(t, g.Equal(c))
}

func TestParseGrid(t *testing.T) {
	g, err := core.ParseGrid(
		"R Y G",
		". * B",
		"p o c",
	)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width)
	assert.Equal(t, red(), g.Get(0))
	assert.True(t, g.Get(3).IsEmpty())
	assert.True(t, g.Get(4).IsBomb())
	assert.Equal(t, core.Colored(core.ColorPurple), g.Get(6))
	assert.Equal(t, []string{"RYG", ".*B", "POC"}, g.Rows())
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"short row", []string{"RYG", "RY", "RYG"}},
		{"unknown letter", []string{"RYG", "RXG", "RYG"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseGrid(tc.rows...)
			assert.Error(t, err)
		})
	}
}

func TestTokenKinds(t *testing.T) {
	assert.False(t, core.Empty.IsColored())
	assert.False(t, core.Bomb.IsColored())
	assert.True(t, red().IsColored())

	c, ok := green().Color()
	assert.True(t, ok)
	assert.Equal(t, core.ColorGreen, c)

	_, ok = core.Bomb.Color()
	assert.False(t, ok)

	assert.Equal(t, "blank", core.Empty.String())
	assert.Equal(t, "bomb", core.Bomb.String())
	assert.Equal(t, "orange", core.Colored(core.ColorOrange).String())
}
