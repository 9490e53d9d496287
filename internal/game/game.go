package game

// Tick timing. The simulation advances in fixed ticks; wall-clock frame
// deltas only decide how many ticks to run, never how far anything moves.
const (
	TicksPerSecond   = 60
	maxTicksPerFrame = 5 // cap after a stall, never catch up in one step
)

// Lifecycle countdowns, in ticks.
const (
	readyTicks         = 120
	dyingFreezeTicks   = 45
	deathAnimTicks     = 60
	levelCompleteTicks = 120
	secondReleaseTicks = 180 // one-shot after entering active, cancelled on exit
)

// LifecycleState is the outer match state.
type LifecycleState uint8

const (
	StateStartScreen LifecycleState = iota
	StateReady
	StateActive
	StateDying
	StateLevelComplete
	StateGameOver
	StatePaused
)

func (s LifecycleState) String() string {
	switch s {
	case StateStartScreen:
		return "start-screen"
	case StateReady:
		return "ready"
	case StateActive:
		return "active"
	case StateDying:
		return "dying"
	case StateLevelComplete:
		return "level-complete"
	case StateGameOver:
		return "game-over"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Game is the deterministic simulation core. External collaborators drive it
// with Advance/StepTick plus edge-triggered signals, and read back per-tick
// snapshots; nothing outside this package mutates its state.
type Game struct {
	grid    *Grid
	pellets *PelletOverlay
	modes   *ModeController

	player   *Player
	pursuers [pursuerCount]*Pursuer

	score ScoreState
	level int
	cfg   LevelConfig

	state     LifecycleState
	countdown int // shared duration gate for ready/dying/level-complete
	deathAnim int // elapsed ticks of the death animation

	// releaseLeft is the tick-counted one-shot for the slot-1 release, -1
	// when idle. Voided on any transition out of active.
	releaseLeft int

	tick   uint64
	accum  float64
	events []Event

	log *SimLog
}

// New creates a match on the built-in maze. highScore seeds the externally
// persisted best score; pass 0 for none.
func New(highScore int) *Game {
	return NewWithGrid(defaultGrid(), highScore)
}

// NewWithGrid creates a match on a custom maze.
func NewWithGrid(grid *Grid, highScore int) *Game {
	g := &Game{
		grid:        grid,
		pellets:     NewPelletOverlay(grid),
		modes:       NewModeController(),
		player:      NewPlayer(grid),
		state:       StateStartScreen,
		level:       1,
		releaseLeft: -1,
		log:         NewSimLog(false),
	}
	g.score.HighScore = highScore
	g.cfg = ConfigForLevel(g.level)
	g.initPursuers()
	return g
}

// homeCorners maps pursuer slot to its scatter/retreat corner tile.
func homeCorners(grid *Grid) [pursuerCount]Tile {
	return [pursuerCount]Tile{
		{grid.Cols - 3, 0},             // direct: top right
		{2, 0},                         // ambush: top left
		{grid.Cols - 1, grid.Rows - 1}, // leader-relative: bottom right
		{0, grid.Rows - 1},             // threshold-flee: bottom left
	}
}

// initPursuers creates the four agents, one per variant. Slot 0 starts
// outside the den at the exit tile; the leader-relative agent reads slot 0's
// tile each tick. The relationships are fixed for the match.
func (g *Game) initPursuers() {
	corners := homeCorners(g.grid)
	rests := g.restTiles()
	for i := 0; i < pursuerCount; i++ {
		p := &Pursuer{
			Variant:    Variant(i),
			Mode:       ModePenned,
			HomeCorner: corners[i],
			RestTile:   rests[i],
			leader:     -1,
			lastChoice: Tile{-1, -1},
		}
		if p.Variant == VariantLeaderRelative {
			p.leader = int(VariantDirect)
		}
		g.pursuers[i] = p
	}
	g.resetPositions()
}

// restTiles assigns a den rest spot per slot. Slot 0 rests at the centre
// spot even though it spawns outside; it still returns there when eaten.
func (g *Game) restTiles() [pursuerCount]Tile {
	r := g.grid.RestTiles
	mid := r[len(r)/2]
	out := [pursuerCount]Tile{mid, mid, r[0], r[len(r)-1]}
	return out
}

// resetPositions repositions the player and all pursuers for a new life or
// level. Agents are reused, never recreated.
func (g *Game) resetPositions() {
	g.player.Respawn(g.grid)
	for i, p := range g.pursuers {
		p.Mode = ModePenned
		p.descending = false
		p.Threshold = g.cfg.DenExitThresholds[i]
		p.lastChoice = Tile{-1, -1}
		if i == 0 {
			p.PlaceAt(g.grid.DenExit, DirLeft)
		} else {
			p.PlaceAt(p.RestTile, DirNone)
		}
	}
}

// --- external signals ---

// State returns the current lifecycle state.
func (g *Game) State() LifecycleState {
	return g.state
}

// Log exposes the structured simulation log.
func (g *Game) Log() *SimLog {
	return g.log
}

// SetLogVerbose toggles per-tick position logging.
func (g *Game) SetLogVerbose(v bool) {
	g.log.SetVerbose(v)
}

// QueueDirection buffers the player's next facing. The buffer survives
// until a different direction is queued or the turn is honoured.
func (g *Game) QueueDirection(d Direction) {
	if d == DirNone {
		return
	}
	g.player.Queued = d
}

// PressStart handles the edge-triggered start signal: it begins a match
// from the start screen and restarts everything after a game over.
func (g *Game) PressStart() {
	switch g.state {
	case StateStartScreen:
		g.enterReady()
	case StateGameOver:
		g.score.ResetMatch()
		g.level = 1
		g.cfg = ConfigForLevel(g.level)
		g.player.Lives = startingLives
		g.pellets.Reseed()
		g.modes.Reset()
		g.resetPositions()
		g.enterReady()
	}
}

// TogglePause flips between active and paused. Any other state ignores it.
func (g *Game) TogglePause() {
	switch g.state {
	case StateActive:
		g.setState(StatePaused)
	case StatePaused:
		g.setState(StateActive)
	}
}

// --- update loop ---

// Advance converts a wall-clock frame delta (seconds) into whole fixed
// ticks. Oversized deltas, e.g. after the host was backgrounded, are capped
// rather than simulated in one burst.
func (g *Game) Advance(dt float64) {
	if dt < 0 {
		return
	}
	g.accum += dt * TicksPerSecond
	n := int(g.accum)
	if n > maxTicksPerFrame {
		n = maxTicksPerFrame
		g.accum = 0
	} else {
		g.accum -= float64(n)
	}
	for i := 0; i < n; i++ {
		g.StepTick()
	}
}

// StepTick runs exactly one simulation tick.
func (g *Game) StepTick() {
	g.tick++
	g.events = g.events[:0]

	switch g.state {
	case StateReady:
		g.countdown--
		if g.countdown <= 0 {
			g.enterActive()
		}
	case StateActive:
		g.stepActive()
	case StateDying:
		g.stepDying()
	case StateLevelComplete:
		g.countdown--
		if g.countdown <= 0 {
			g.advanceLevel()
		}
	case StateStartScreen, StateGameOver, StatePaused:
		// Frozen until an external signal.
	}
}

func (g *Game) setState(s LifecycleState) {
	if g.state == s {
		return
	}
	g.log.Add(g.tick, "lifecycle", "change", g.state.String()+" -> "+s.String())
	if g.state == StateActive && s != StatePaused {
		g.releaseLeft = -1 // void the pending one-shot
	}
	g.state = s
}

func (g *Game) enterReady() {
	g.setState(StateReady)
	g.countdown = readyTicks
}

// enterActive releases the first pursuer immediately and arms the
// tick-counted one-shot for the second.
func (g *Game) enterActive() {
	g.setState(StateActive)
	p := g.pursuers[0]
	if p.Mode == ModePenned {
		// Slot 0 spawns on the den exit: release it straight into play.
		p.Mode = ModeFollowingGlobal
		g.log.Add(g.tick, "den", "release", p.Variant.String())
	}
	g.releaseLeft = secondReleaseTicks
}

// stepActive runs the strict per-tick pipeline: mode/timer advance,
// targeting, motion, collision, lifecycle reaction.
func (g *Game) stepActive() {
	if g.modes.Tick() {
		// Evasion expired: survivors rejoin the current phase and the eat
		// ladder rewinds.
		g.score.ResetChain()
		for _, p := range g.pursuers {
			p.EndEvading()
		}
		g.log.Add(g.tick, "mode", "evasion_end", g.modes.Mode().String())
	}
	g.stepReleases()
	g.retarget()
	g.stepMotion()
	g.resolveCollisions()
	// A death transition on this tick outranks board completion.
	if g.state == StateActive && g.pellets.Remaining() == 0 {
		g.emit(Event{Kind: EventLevelComplete, Pursuer: -1})
		g.setState(StateLevelComplete)
		g.countdown = levelCompleteTicks
	}
}

// stepReleases handles the slot-1 one-shot and the pellet-threshold gates
// for the remaining penned pursuers.
func (g *Game) stepReleases() {
	if g.releaseLeft > 0 {
		g.releaseLeft--
		if g.releaseLeft == 0 {
			g.releaseLeft = -1
			g.releaseSlot(1)
		}
	}
	for i := 2; i < pursuerCount; i++ {
		p := g.pursuers[i]
		if p.Mode == ModePenned && g.score.PelletsEaten >= p.Threshold {
			g.releaseSlot(i)
		}
	}
}

func (g *Game) releaseSlot(i int) {
	p := g.pursuers[i]
	if p.Mode != ModePenned {
		return
	}
	p.Release()
	g.log.Add(g.tick, "den", "release", p.Variant.String())
}

// retarget recomputes every out-of-den pursuer's target from the same
// pre-motion world state.
func (g *Game) retarget() {
	playerTile := g.player.Tile()
	for _, p := range g.pursuers {
		switch p.Mode {
		case ModeFollowingGlobal:
			if g.modes.Mode() == ModeScatter {
				p.Target = p.HomeCorner
				continue
			}
			in := TargetInput{
				PlayerTile:   playerTile,
				PlayerFacing: g.player.Facing,
				SelfTile:     p.Tile(),
				HomeCorner:   p.HomeCorner,
			}
			if p.leader >= 0 {
				in.LeaderTile = g.pursuers[p.leader].Tile()
				in.HasLeader = true
			}
			p.Target = targetFuncs[p.Variant](in)
		case ModeEvading:
			p.Target = playerTile // steer() maximises distance to it
		case ModeReturning:
			p.Target = g.grid.DenExit
		}
	}
}

// stepMotion advances the player then every pursuer. Collision testing runs
// only after all agents hold their post-motion positions.
func (g *Game) stepMotion() {
	speed := g.player.speed(g.modes.EvasionActive(), g.cfg.PlayerSpeedMul)
	g.player.eatingSlow = false
	g.player.Advance(g.grid, speed)
	if g.log.Verbose() {
		g.log.Addf(g.tick, "move", "player", "(%.2f,%.2f) %s", g.player.X, g.player.Y, g.player.Facing)
	}

	for _, p := range g.pursuers {
		sp := p.speed(g.grid, g.cfg.PursuerSpeedMul)
		switch p.Mode {
		case ModePenned:
			// Holds its rest spot until released.
		case ModeLeavingDen:
			if p.stepLeavingDen(g.grid.DenExit, sp) {
				if g.modes.EvasionActive() {
					p.Mode = ModeEvading
				} else {
					p.Mode = ModeFollowingGlobal
				}
				g.log.Add(g.tick, "mode", "left_den", p.Variant.String()+" -> "+p.Mode.String())
			}
		case ModeReturning:
			if p.stepReturning(g.grid, g.grid.DenExit, sp) {
				// Recovered: past the den door already, so the pellet gate
				// is bypassed and the agent leaves again immediately.
				p.Mode = ModeLeavingDen
				g.log.Add(g.tick, "mode", "recovered", p.Variant.String())
			}
		case ModeEvading:
			p.steer(g.grid, p.Target, true)
			p.Advance(g.grid, sp)
		default:
			p.steer(g.grid, p.Target, false)
			p.Advance(g.grid, sp)
		}
	}
}

// stepDying holds the freeze countdown, then plays the death animation,
// then either respawns for the next life or ends the match.
func (g *Game) stepDying() {
	if g.countdown > 0 {
		g.countdown--
		return
	}
	g.deathAnim++
	if g.deathAnim < deathAnimTicks {
		return
	}
	g.deathAnim = 0
	g.player.Lives--
	// A death ends any running evasion and rewinds the eat ladder; the next
	// life starts on the resumed global phase.
	g.modes.ClearEvasion()
	g.score.ResetChain()
	if g.player.Lives > 0 {
		g.score.PelletsEaten = 0 // the den gates count per life
		g.resetPositions()
		g.enterReady()
		return
	}
	g.emit(Event{Kind: EventGameOver, Pursuer: -1})
	g.setState(StateGameOver)
}

// advanceLevel rolls the match into the next level: fresh pellets, first
// scatter phase, everyone repositioned.
func (g *Game) advanceLevel() {
	g.level++
	g.cfg = ConfigForLevel(g.level)
	g.score.PelletsEaten = 0
	g.score.ResetChain()
	g.pellets.Reseed()
	g.modes.Reset()
	g.resetPositions()
	g.enterReady()
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
	g.log.Add(g.tick, "event", ev.Kind.String(), ev.String())
}

// award routes every point grant through the single accumulator and emits
// the extra-life event on the first threshold crossing.
func (g *Game) award(pts int) {
	if g.score.Add(pts) {
		g.player.Lives++
		g.emit(Event{Kind: EventExtraLife, Points: 0, Pursuer: -1})
	}
}
