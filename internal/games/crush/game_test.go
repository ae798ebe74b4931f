package crush

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crush/internal/config"
	platformcore "github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/core"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

// quietBoard has no runs. Swapping cells 2 and 10 makes the row run
// R R R at the start of row 0.
var quietBoard = []string{
	"RRGBPORY",
	"GBRORYGB",
	"PORYGBPO",
	"RYGBPORY",
	"GBPORYGB",
	"PORYGBPO",
	"RYGBPORY",
	"GBPORYGB",
}

func testConfig() platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// withConfig installs cfg for the test and restores the previous one.
func withConfig(t *testing.T, cfg config.CrushConfig) {
	t.Helper()
	prev, prevPreset := GetConfig(), GetDifficultyPreset()
	SetConfig(cfg)
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfig(prev)
		SetDifficultyPreset(prevPreset)
	})
}

// newLoadedGame returns a zen game holding the given board.
func newLoadedGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	withConfig(t, config.DefaultCrushConfig())

	g := New()
	g.Reset(testConfig())
	g.session.Load(core.MustParseGrid(rows...))
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func pointer(g *Game, events ...platformcore.PointerEvent) platformcore.StepResult {
	in := platformcore.NewInputFrame()
	for _, ev := range events {
		in.AddPointer(ev)
	}
	return g.Step(in)
}

// cellCenter returns the screen position of a cell's candy.
func cellCenter(g *Game, cell int) (int, int) {
	r := g.cellRect(cell)
	return r.Center()
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "crush" {
		t.Errorf("zen ID = %q, expected crush", New().ID())
	}
	if NewBlitz().ID() != "crush_blitz" {
		t.Errorf("blitz ID = %q, expected crush_blitz", NewBlitz().ID())
	}

	for _, id := range []string{"crush", "crush_blitz"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if _, ok := g.(registry.StatsReporter); !ok {
			t.Errorf("%s should report run stats", id)
		}
		if _, ok := g.(registry.Resizer); !ok {
			t.Errorf("%s should support resize", id)
		}
	}
}

func TestResetDealsSettledBoard(t *testing.T) {
	withConfig(t, config.DefaultCrushConfig())

	g := New()
	g.Reset(testConfig())

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score after reset = %d, expected 0", snap.Score)
	}
	if snap.BombPresent {
		t.Error("no bomb expected after reset")
	}
	if core.HasRuns(g.session.Grid(), false) {
		t.Error("dealt board should have no runs")
	}
	if snap.State != StatePlaying {
		t.Errorf("state = %s, expected playing", snap.State)
	}
}

func TestDeterminism(t *testing.T) {
	withConfig(t, config.DefaultCrushConfig())

	g1 := NewBlitz()
	g1.Reset(testConfig())
	g2 := NewBlitz()
	g2.Reset(testConfig())

	script := map[int][]platformcore.Action{
		5:  {platformcore.ActionSelect},
		6:  {platformcore.ActionRight},
		20: {platformcore.ActionUp},
		21: {platformcore.ActionSelect},
		22: {platformcore.ActionDown},
		40: {platformcore.ActionLeft},
		41: {platformcore.ActionSelect},
		42: {platformcore.ActionLeft},
	}

	for i := 0; i < 200; i++ {
		step(g1, script[i]...)
		step(g2, script[i]...)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Stats.Swaps != 3 {
		t.Errorf("swaps = %d, expected 3", s1.Stats.Swaps)
	}
}

func TestKeyboardSwapCrushesRun(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	// Cursor starts at row 4 col 4; walk it to cell 2.
	for i := 0; i < 4; i++ {
		step(g, platformcore.ActionUp)
	}
	step(g, platformcore.ActionLeft)
	step(g, platformcore.ActionLeft)
	if g.cursor != 2 {
		t.Fatalf("cursor = %d, expected 2", g.cursor)
	}

	step(g, platformcore.ActionSelect)
	if g.selected != 2 {
		t.Fatalf("selected = %d, expected 2", g.selected)
	}

	res := step(g, platformcore.ActionDown)
	if res.Crushes < 1 {
		t.Errorf("Crushes = %d, expected at least 1", res.Crushes)
	}
	if res.State.Score < 30 {
		t.Errorf("score = %d, expected at least 30", res.State.Score)
	}
	if g.selected != -1 {
		t.Error("selection should be dropped after the swap")
	}

	stats := g.Stats()
	if stats.Swaps != 1 || stats.Crushes != res.Crushes || stats.BestChain < 1 {
		t.Errorf("stats = %+v", stats)
	}
	if core.HasRuns(g.session.Grid(), false) {
		t.Error("board should be settled after the swap")
	}
}

func TestSelectEdgeDirectionIsNoop(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)
	g.cursor = 0

	step(g, platformcore.ActionSelect)
	before := g.session.Grid()
	step(g, platformcore.ActionUp)

	if !g.session.Grid().Equal(before) {
		t.Error("swapping off the top edge should not change the board")
	}
	if g.Stats().Swaps != 0 {
		t.Errorf("swaps = %d, expected 0", g.Stats().Swaps)
	}
	if g.selected != -1 {
		t.Error("selection should be dropped")
	}
}

func TestSwapWithoutRunStillSwaps(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	// Cells 62 and 63 hold G and B; swapping them makes no run.
	g.cursor = 62
	step(g, platformcore.ActionSelect)
	step(g, platformcore.ActionRight)

	if got := g.session.Token(62); got != core.Colored(core.ColorBlue) {
		t.Errorf("cell 62 = %s, expected blue", got)
	}
	if g.Stats().Swaps != 1 || g.State().Score != 0 {
		t.Errorf("swaps=%d score=%d, expected 1 and 0", g.Stats().Swaps, g.State().Score)
	}
}

func TestTapTriggersBomb(t *testing.T) {
	rows := append([]string(nil), quietBoard...)
	rows[4] = "GBPO*YGB"
	g := newLoadedGame(t, rows...)
	if !g.session.BombPresent() {
		t.Fatal("loaded board should report its bomb")
	}

	g.cursor = 36
	res := step(g, platformcore.ActionConfirm)

	if res.State.Score != 30 {
		t.Errorf("score = %d, expected 30", res.State.Score)
	}
	if res.Crushes != 1 {
		t.Errorf("Crushes = %d, expected 1", res.Crushes)
	}
	if g.session.BombPresent() {
		t.Error("bomb slot should be free after the trigger")
	}
	if g.Stats().Bombs != 1 {
		t.Errorf("bombs = %d, expected 1", g.Stats().Bombs)
	}
	for _, cell := range []int{27, 28, 29, 35, 36, 37, 43, 44, 45} {
		if _, ok := g.flash.Get(cell); !ok {
			t.Errorf("cell %d should flash after the blast", cell)
		}
	}
}

func TestSweepSettlesBombHole(t *testing.T) {
	rows := append([]string(nil), quietBoard...)
	rows[4] = "GBPO*YGB"
	g := newLoadedGame(t, rows...)

	g.cursor = 36
	step(g, platformcore.ActionConfirm)
	if g.session.Grid().Full() {
		t.Fatal("the blast should leave empty cells until the sweep")
	}

	for i := 0; i < 60; i++ {
		step(g)
	}
	if !g.session.Grid().Full() {
		t.Error("the idle sweep should refill the board")
	}
	if core.HasRuns(g.session.Grid(), false) {
		t.Error("the idle sweep should settle the board")
	}
}

func TestMouseDragDrop(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	x1, y1 := cellCenter(g, 2)
	x2, y2 := cellCenter(g, 10)
	if g.cellAt(x1, y1) != 2 || g.cellAt(x2, y2) != 10 {
		t.Fatalf("cellAt mismatch: %d %d", g.cellAt(x1, y1), g.cellAt(x2, y2))
	}

	pointer(g, platformcore.PointerEvent{Kind: platformcore.PointerPress, X: x1, Y: y1})
	res := pointer(g, platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: x2, Y: y2})

	if res.State.Score < 30 || g.Stats().Swaps != 1 {
		t.Errorf("score=%d swaps=%d, expected a crushing swap", res.State.Score, g.Stats().Swaps)
	}
}

func TestMouseSwipeOffBoard(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	x, y := cellCenter(g, 2)
	res := pointer(g,
		platformcore.PointerEvent{Kind: platformcore.PointerPress, X: x, Y: y},
		platformcore.PointerEvent{Kind: platformcore.PointerMotion, X: x, Y: y + 1},
		platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: x, Y: g.screenH - 1},
	)

	if g.Stats().Swaps != 1 || res.State.Score < 30 {
		t.Errorf("swipe down from cell 2: swaps=%d score=%d", g.Stats().Swaps, res.State.Score)
	}
}

func TestMouseClickSelectsThenSwaps(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	click := func(cell int) {
		x, y := cellCenter(g, cell)
		pointer(g,
			platformcore.PointerEvent{Kind: platformcore.PointerPress, X: x, Y: y},
			platformcore.PointerEvent{Kind: platformcore.PointerRelease, X: x, Y: y},
		)
	}

	click(2)
	if g.selected != 2 {
		t.Fatalf("selected = %d, expected 2", g.selected)
	}
	click(2)
	if g.selected != -1 {
		t.Fatal("second click on the same cell should drop the selection")
	}

	click(2)
	click(10)
	if g.Stats().Swaps != 1 {
		t.Errorf("swaps = %d, expected 1", g.Stats().Swaps)
	}
}

func TestBombSpawnTimer(t *testing.T) {
	cfg := config.DefaultCrushConfig()
	cfg.Timers.BombSpawnSeconds = 1
	withConfig(t, cfg)

	g := New()
	rc := testConfig()
	rc.TickRate = 10
	g.Reset(rc)

	for i := 0; i < 9; i++ {
		step(g)
	}
	if g.session.BombPresent() {
		t.Fatal("bomb spawned early")
	}
	step(g)
	if !g.session.BombPresent() {
		t.Fatal("bomb should spawn after one second")
	}
	if g.session.Grid().Count(core.Bomb) != 1 {
		t.Error("exactly one bomb expected")
	}

	for i := 0; i < 30; i++ {
		step(g)
	}
	if n := g.session.Grid().Count(core.Bomb); n != 1 {
		t.Errorf("bombs on board = %d, expected 1 while untriggered", n)
	}
}

func TestPauseStopsTimers(t *testing.T) {
	cfg := config.DefaultCrushConfig()
	cfg.Timers.BombSpawnSeconds = 1
	withConfig(t, cfg)

	g := New()
	rc := testConfig()
	rc.TickRate = 10
	g.Reset(rc)

	res := step(g, platformcore.ActionPause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	for i := 0; i < 50; i++ {
		step(g)
	}
	if g.session.BombPresent() {
		t.Error("timers should not run while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %s, expected paused", g.Snapshot().State)
	}

	step(g, platformcore.ActionPause)
	for i := 0; i < 10; i++ {
		step(g)
	}
	if !g.session.BombPresent() {
		t.Error("bomb should spawn once resumed")
	}
}

func TestBlitzClock(t *testing.T) {
	cfg := config.DefaultCrushConfig()
	cfg.Blitz.DurationSeconds = 2
	withConfig(t, cfg)

	g := NewBlitz()
	rc := testConfig()
	rc.TickRate = 10
	g.Reset(rc)

	for i := 0; i < 19; i++ {
		if res := step(g); res.State.GameOver {
			t.Fatalf("game over at tick %d, expected 20", i+1)
		}
	}
	if res := step(g); !res.State.GameOver {
		t.Fatal("blitz should end when the clock runs out")
	}

	snap := g.Snapshot()
	if snap.State != StateTimeUp || snap.TicksLeft != 0 {
		t.Errorf("snapshot = %s with %d ticks left", snap.State, snap.TicksLeft)
	}

	// Input after time up changes nothing
	before := g.session.Grid()
	step(g, platformcore.ActionSelect)
	step(g, platformcore.ActionDown)
	if !g.session.Grid().Equal(before) {
		t.Error("board changed after time up")
	}
}

func TestZenNeverEnds(t *testing.T) {
	cfg := config.DefaultCrushConfig()
	cfg.Blitz.DurationSeconds = 1
	withConfig(t, cfg)

	g := New()
	rc := testConfig()
	rc.TickRate = 10
	g.Reset(rc)

	for i := 0; i < 100; i++ {
		if step(g).State.GameOver {
			t.Fatal("zen mode should never end on its own")
		}
	}
}

func TestFlashDecays(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	g.cursor = 2
	step(g, platformcore.ActionSelect)
	step(g, platformcore.ActionDown)
	if g.flash.Len() == 0 {
		t.Fatal("cleared cells should flash")
	}

	for i := 0; i <= g.flashTicks; i++ {
		step(g)
	}
	if g.flash.Len() != 0 {
		t.Errorf("%d cells still flashing", g.flash.Len())
	}
}

func TestPresetApplied(t *testing.T) {
	withConfig(t, config.DefaultCrushConfig())
	SetDifficultyPreset(config.DifficultyHard)

	g := NewBlitz()
	g.Reset(testConfig())

	if n := len(g.session.Rules().Palette); n != 7 {
		t.Errorf("hard palette = %d colors, expected 7", n)
	}
	if g.clock.Left() != 60*60 {
		t.Errorf("hard blitz clock = %d ticks, expected %d", g.clock.Left(), 60*60)
	}
}

func TestWindowTooSmall(t *testing.T) {
	withConfig(t, config.DefaultCrushConfig())

	g := New()
	rc := testConfig()
	rc.ScreenW = 20
	rc.ScreenH = 10
	g.Reset(rc)

	if !g.State().Paused {
		t.Error("game should be paused when the window is too small")
	}

	screen := platformcore.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume after growing the window")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)
	before := g.session.Grid()

	g.Resize(120, 40)
	if g.cellW != 6 || g.cellH != 3 {
		t.Errorf("layout = %dx%d, expected 6x3", g.cellW, g.cellH)
	}
	if !g.session.Grid().Equal(before) {
		t.Error("resize should keep the board")
	}
}

func TestRender(t *testing.T) {
	g := newLoadedGame(t, quietBoard...)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Candy Crush", "Score: 0", "Bomb in", "Arrows"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	x, y := cellCenter(g, 0)
	cell := screen.GetCell(x, y)
	if cell.Rune != candyRune || cell.Color != platformcore.ColorRed {
		t.Errorf("cell 0 drawn as %q/%v, expected red candy", cell.Rune, cell.Color)
	}

	r := g.cellRect(g.cursor)
	if screen.Get(r.X-1, r.Y) != '[' || screen.Get(r.Right(), r.Y) != ']' {
		t.Error("cursor brackets missing")
	}
}

func TestSetDifficultyOverridesPackagePreset(t *testing.T) {
	withConfig(t, config.DefaultCrushConfig())
	SetDifficultyPreset(config.DifficultyHard)

	g := NewBlitz()
	g.SetDifficulty("easy")
	g.Reset(testConfig())

	if n := len(g.session.Rules().Palette); n != 5 {
		t.Errorf("easy palette = %d colors, expected 5", n)
	}

	g.SetDifficulty("impossible")
	g.Reset(testConfig())
	if n := len(g.session.Rules().Palette); n != 5 {
		t.Errorf("unknown preset should keep easy, got %d colors", n)
	}

	if !New().Endless() || NewBlitz().Endless() {
		t.Error("only zen mode is endless")
	}
}
