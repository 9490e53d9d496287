package game

// TestSim is a headless harness around Game used by tests and the headless
// report binary. It feeds a scripted input sequence at exact ticks and folds
// every tick's snapshot into a determinism checksum.
type TestSim struct {
	game     *Game
	layout   []string
	script   map[uint64][]scriptAction
	checksum uint64
}

type scriptAction func(*Game)

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // grid layout, applied before the game exists
	simOptGame                       // everything else, applied after construction
)

// SimOption configures a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithGridLayout runs the simulation on a custom maze layout. A malformed
// layout panics: harness input is programmer-controlled.
func WithGridLayout(layout []string) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.layout = layout }}
}

// WithHighScore seeds the persisted high score.
func WithHighScore(n int) SimOption {
	return SimOption{simOptGame, func(ts *TestSim) { ts.game.score.HighScore = n }}
}

// WithVerboseLog records per-tick movement entries.
func WithVerboseLog() SimOption {
	return SimOption{simOptGame, func(ts *TestSim) { ts.game.SetLogVerbose(true) }}
}

// WithStartAt presses start at the given tick.
func WithStartAt(tick uint64) SimOption {
	return SimOption{simOptGame, func(ts *TestSim) {
		ts.script[tick] = append(ts.script[tick], (*Game).PressStart)
	}}
}

// WithPauseAt toggles pause at the given tick.
func WithPauseAt(tick uint64) SimOption {
	return SimOption{simOptGame, func(ts *TestSim) {
		ts.script[tick] = append(ts.script[tick], (*Game).TogglePause)
	}}
}

// WithInputAt queues a player direction at the given tick.
func WithInputAt(tick uint64, d Direction) SimOption {
	return SimOption{simOptGame, func(ts *TestSim) {
		ts.script[tick] = append(ts.script[tick], func(g *Game) { g.QueueDirection(d) })
	}}
}

// NewTestSim builds a harness on the default maze unless WithGridLayout
// overrides it.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{script: map[uint64][]scriptAction{}}
	for _, opt := range opts {
		if opt.kind == simOptInfra {
			opt.fn(ts)
		}
	}
	if ts.layout != nil {
		grid, err := NewGrid(ts.layout)
		if err != nil {
			panic("harness: " + err.Error())
		}
		ts.game = NewWithGrid(grid, 0)
	} else {
		ts.game = New(0)
	}
	for _, opt := range opts {
		if opt.kind == simOptGame {
			opt.fn(ts)
		}
	}
	return ts
}

// Game exposes the underlying core.
func (ts *TestSim) Game() *Game {
	return ts.game
}

// RunTicks steps the simulation n ticks, applying scripted actions at their
// tick and folding each resulting snapshot into the checksum.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		next := ts.game.tick + 1
		for _, act := range ts.script[next] {
			act(ts.game)
		}
		ts.game.StepTick()
		ts.checksum = ts.game.Snapshot().Fold(ts.checksum)
	}
}

// Checksum returns the determinism checksum folded so far.
func (ts *TestSim) Checksum() uint64 {
	return ts.checksum
}

// StartAndRunToActive presses start and consumes the ready countdown, so
// the next RunTicks call begins on the first active tick.
func (ts *TestSim) StartAndRunToActive() {
	ts.game.PressStart()
	ts.RunTicks(readyTicks)
}
