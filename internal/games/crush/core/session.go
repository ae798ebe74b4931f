// Package core implements the match-3 board engine: run detection, the
// clear/gravity/refill cascade, bombs and scoring. It has no dependencies on
// the terminal, timers or audio; the platform drives it through Session.
package core

// Default rule values.
const (
	DefaultWidth                = 8
	DefaultPointsPerToken       = 10
	DefaultBombPoints           = 30
	DefaultMaxCascadeIterations = 1000
)

// Rules configures a session. Zero fields fall back to the defaults.
type Rules struct {
	Width          int
	Palette        []Color
	PointsPerToken int
	BombPoints     int

	// MaxCascadeIterations caps one resolve. Reaching it marks Delta.Capped.
	MaxCascadeIterations int

	// LegacyScanBounds stops column scans one cell early, matching the
	// historical fixed bound (47 on an 8-wide board).
	LegacyScanBounds bool

	// WrapBombEdges lets the bomb footprint spill into the neighboring row
	// at the left and right edges.
	WrapBombEdges bool
}

// DefaultRules returns the classic 8x8, six-color rules.
func DefaultRules() Rules {
	return Rules{
		Width:                DefaultWidth,
		Palette:              DefaultPalette(),
		PointsPerToken:       DefaultPointsPerToken,
		BombPoints:           DefaultBombPoints,
		MaxCascadeIterations: DefaultMaxCascadeIterations,
	}
}

func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.Width < MinRun {
		r.Width = def.Width
	}
	if len(r.Palette) == 0 {
		r.Palette = def.Palette
	}
	if r.PointsPerToken <= 0 {
		r.PointsPerToken = def.PointsPerToken
	}
	if r.BombPoints <= 0 {
		r.BombPoints = def.BombPoints
	}
	if r.MaxCascadeIterations <= 0 {
		r.MaxCascadeIterations = def.MaxCascadeIterations
	}
	return r
}

// CrushEvent is the feedback signal emitted once per clearing step: every
// cleared run and every bomb blast.
type CrushEvent struct {
	Source Source
	Cells  []int
	Points int
}

// FeedbackFunc receives crush events. It runs synchronously inside the
// operation that produced the event.
type FeedbackFunc func(CrushEvent)

// Delta summarizes what one session operation changed.
type Delta struct {
	Applied    bool  // False when the request was rejected as a no-op
	Points     int   // Score added by this operation
	Cleared    []int // Cells set Empty, in clearing order; may repeat across iterations
	Runs       int   // Runs cleared
	LongestRun int
	Crushes    int  // Feedback signals emitted
	Chain      int  // Cascade iterations that cleared at least one run
	Iterations int  // Cascade iterations executed
	Capped     bool // The cascade stopped at MaxCascadeIterations
	BombCell   int  // Cell of the bomb spawned or triggered, -1 otherwise
}

// Merge folds the counters of other into d. Applied and BombCell are kept.
func (d *Delta) Merge(other Delta) {
	d.Points += other.Points
	d.Cleared = append(d.Cleared, other.Cleared...)
	d.Runs += other.Runs
	if other.LongestRun > d.LongestRun {
		d.LongestRun = other.LongestRun
	}
	d.Crushes += other.Crushes
	d.Chain += other.Chain
	d.Iterations += other.Iterations
	d.Capped = d.Capped || other.Capped
}

// Session is one game: the board, its score and the bomb slot.
// A Session is not safe for concurrent use.
type Session struct {
	rules       Rules
	grid        *Grid
	rng         Rand
	score       int
	bombPresent bool
	feedback    FeedbackFunc
}

// NewSession creates a session with an all-Empty board. Call Reset to deal
// a playable board, or Load to start from a fixed one.
func NewSession(rules Rules, rng Rand) *Session {
	rules = rules.withDefaults()
	return &Session{
		rules: rules,
		grid:  NewGrid(rules.Width),
		rng:   rng,
	}
}

// SetFeedback installs the crush-event sink. nil disables feedback.
func (s *Session) SetFeedback(f FeedbackFunc) {
	s.feedback = f
}

// Reset deals a fresh random board and settles it. Points earned while the
// deal settles are not kept: the session starts at zero with no bomb.
func (s *Session) Reset() Delta {
	fb := s.feedback
	s.feedback = nil
	defer func() { s.feedback = fb }()

	for i := range s.grid.Cells {
		s.grid.Cells[i] = Colored(s.rules.Palette[s.rng.Intn(len(s.rules.Palette))])
	}
	s.score = 0
	s.bombPresent = false

	d := Delta{Applied: true, BombCell: -1}
	s.resolve(&d)

	s.score = 0
	d.Points = 0
	d.Crushes = 0
	return d
}

// Load replaces the board with a copy of g, adopting its width. Score is
// reset and the bomb slot follows whether g holds a Bomb.
func (s *Session) Load(g *Grid) {
	s.grid = g.Clone()
	s.rules.Width = g.Width
	s.score = 0
	s.bombPresent = g.BombIndex() >= 0
}

// ApplySwap exchanges two cells and resolves the cascade. Out-of-range or
// non-adjacent requests are ignored.
func (s *Session) ApplySwap(i, j int) Delta {
	if !s.grid.InBounds(i) || !s.grid.InBounds(j) || !s.grid.IsAdjacent(i, j) {
		return Delta{BombCell: -1}
	}

	s.grid.Swap(i, j)
	d := Delta{Applied: true, BombCell: -1}
	s.resolve(&d)
	return d
}

// Rules returns the effective rules.
func (s *Session) Rules() Rules {
	return s.rules
}

// Width returns the board width.
func (s *Session) Width() int {
	return s.grid.Width
}

// Score returns the running total.
func (s *Session) Score() int {
	return s.score
}

// BombPresent reports whether an untriggered bomb is on the board.
func (s *Session) BombPresent() bool {
	return s.bombPresent
}

// Token returns the token at cell i (Empty when out of range).
func (s *Session) Token(i int) Token {
	return s.grid.Get(i)
}

// Grid returns a copy of the board.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

func (s *Session) addScore(points int, d *Delta) {
	if points <= 0 {
		return
	}
	s.score += points
	d.Points += points
}

func (s *Session) emit(ev CrushEvent, d *Delta) {
	d.Crushes++
	if s.feedback == nil {
		return
	}
	// Feedback sinks cannot affect board state.
	defer func() { _ = recover() }()
	s.feedback(ev)
}
