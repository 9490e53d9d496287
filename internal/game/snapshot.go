package game

import (
	"fmt"
	"hash/fnv"
)

// AgentSnapshot is one agent's per-tick public state.
type AgentSnapshot struct {
	X, Y   float64
	Facing Direction
}

// PursuerSnapshot extends AgentSnapshot with pursuer-only state.
type PursuerSnapshot struct {
	AgentSnapshot
	Variant Variant
	Mode    PursuerMode
	Target  Tile
}

// Snapshot is the per-tick value handed to external collaborators: a
// read-only copy of everything rendering, audio, and persistence need.
// Mutating a snapshot never touches the core.
type Snapshot struct {
	Tick  uint64
	State LifecycleState

	Score     int
	HighScore int
	Lives     int
	Level     int

	PelletsRemaining int
	PelletsEatenLife int

	GlobalMode    GlobalMode
	EvasionLeft   int
	EvasionStrobe bool
	DeathAnim     int // elapsed death animation ticks, 0 outside dying
	Countdown     int

	Player   AgentSnapshot
	Pursuers [pursuerCount]PursuerSnapshot

	// Events is the tick's ordered event list. Cleared each tick by the
	// core; collaborators must consume it immediately.
	Events []Event
}

// Snapshot captures the current tick's externally visible state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:             g.tick,
		State:            g.state,
		Score:            g.score.Score,
		HighScore:        g.score.HighScore,
		Lives:            g.player.Lives,
		Level:            g.level,
		PelletsRemaining: g.pellets.Remaining(),
		PelletsEatenLife: g.score.PelletsEaten,
		GlobalMode:       g.modes.Mode(),
		EvasionLeft:      g.modes.EvasionLeft(),
		EvasionStrobe:    g.modes.Strobe(),
		DeathAnim:        g.deathAnim,
		Countdown:        g.countdown,
		Player: AgentSnapshot{
			X: g.player.X, Y: g.player.Y, Facing: g.player.Facing,
		},
		Events: append([]Event(nil), g.events...),
	}
	for i, p := range g.pursuers {
		s.Pursuers[i] = PursuerSnapshot{
			AgentSnapshot: AgentSnapshot{X: p.X, Y: p.Y, Facing: p.Facing},
			Variant:       p.Variant,
			Mode:          p.Mode,
			Target:        p.Target,
		}
	}
	return s
}

// Grid returns the immutable maze for collaborators that draw it.
func (g *Game) Grid() *Grid {
	return g.grid
}

// HasPellet reports whether a collectible is still present at (col, row).
// Read-only view for the renderer.
func (g *Game) HasPellet(col, row int) bool {
	return g.pellets.HasPellet(col, row)
}

// Fold mixes the snapshot into a running FNV-1a hash. Folding every tick's
// snapshot of a run yields a determinism checksum: identical input
// sequences must produce identical sums.
func (s Snapshot) Fold(h uint64) uint64 {
	hasher := fnv.New64a()
	fmt.Fprintf(hasher, "%d|%d|%d|%d|%d|%d|%d|%d|%d|%v|",
		h, s.Tick, s.State, s.Score, s.Lives, s.Level,
		s.PelletsRemaining, s.GlobalMode, s.EvasionLeft, s.EvasionStrobe)
	fmt.Fprintf(hasher, "%.4f,%.4f,%d|", s.Player.X, s.Player.Y, s.Player.Facing)
	for _, p := range s.Pursuers {
		fmt.Fprintf(hasher, "%.4f,%.4f,%d,%d,%d,%d|",
			p.X, p.Y, p.Facing, p.Mode, p.Target.Col, p.Target.Row)
	}
	for _, e := range s.Events {
		fmt.Fprintf(hasher, "%d,%d,%d,%d,%d|", e.Kind, e.Tile.Col, e.Tile.Row, e.Points, e.Pursuer)
	}
	return hasher.Sum64()
}
