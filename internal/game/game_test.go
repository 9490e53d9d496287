package game

import "testing"

// newActiveGame builds a match and runs it to the first active tick.
func newActiveGame(t *testing.T) *Game {
	t.Helper()
	g := New(0)
	g.PressStart()
	for i := 0; i < readyTicks; i++ {
		g.StepTick()
	}
	if g.State() != StateActive {
		t.Fatalf("state = %v after ready countdown, want active", g.State())
	}
	return g
}

func hasEvent(events []Event, k EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func countEvents(events []Event, k EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// resolveOnce clears the tick's event list and runs the collision pass
// against current positions, without moving anyone.
func resolveOnce(g *Game) []Event {
	g.events = g.events[:0]
	g.resolveCollisions()
	return g.events
}

func TestLifecycle_StartSignalLeavesStartScreen(t *testing.T) {
	g := New(0)
	if g.State() != StateStartScreen {
		t.Fatalf("initial state = %v, want start-screen", g.State())
	}
	g.StepTick()
	if g.State() != StateStartScreen {
		t.Fatal("start screen should hold without a start signal")
	}
	g.PressStart()
	if g.State() != StateReady {
		t.Fatalf("state = %v after start, want ready", g.State())
	}
}

func TestLifecycle_ActiveEntryReleasesFirstPursuer(t *testing.T) {
	g := newActiveGame(t)
	if g.pursuers[0].Mode != ModeFollowingGlobal {
		t.Fatalf("slot 0 mode = %v, want following-global", g.pursuers[0].Mode)
	}
	if g.pursuers[1].Mode != ModePenned {
		t.Fatalf("slot 1 mode = %v at active entry, want penned", g.pursuers[1].Mode)
	}
	if g.releaseLeft != secondReleaseTicks {
		t.Fatalf("one-shot = %d, want %d", g.releaseLeft, secondReleaseTicks)
	}
}

func TestLifecycle_SecondPursuerReleasedByTickOneShot(t *testing.T) {
	g := newActiveGame(t)
	for i := 0; i < secondReleaseTicks; i++ {
		g.StepTick()
	}
	m := g.pursuers[1].Mode
	if m == ModePenned {
		t.Fatalf("slot 1 still penned after %d active ticks", secondReleaseTicks)
	}
}

func TestLifecycle_OneShotVoidedWhenLeavingActive(t *testing.T) {
	g := newActiveGame(t)
	// Death before the one-shot fires must cancel it.
	g.pursuers[0].PlaceAt(g.player.Tile(), DirLeft)
	g.StepTick()
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}
	if g.releaseLeft != -1 {
		t.Fatalf("one-shot = %d after leaving active, want voided", g.releaseLeft)
	}
}

func TestLifecycle_PauseFreezesSimulation(t *testing.T) {
	g := newActiveGame(t)
	g.TogglePause()
	if g.State() != StatePaused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		g.StepTick()
	}
	after := g.Snapshot()
	if before.Player != after.Player || before.Pursuers != after.Pursuers {
		t.Fatal("agents moved while paused")
	}
	if before.Score != after.Score || before.PelletsRemaining != after.PelletsRemaining {
		t.Fatal("score state changed while paused")
	}
	// The one-shot must suspend, not cancel.
	if g.releaseLeft != secondReleaseTicks {
		t.Fatalf("one-shot = %d across pause, want %d", g.releaseLeft, secondReleaseTicks)
	}
	g.TogglePause()
	if g.State() != StateActive {
		t.Fatalf("state = %v after unpause, want active", g.State())
	}
}

func TestLifecycle_PauseIgnoredOutsideActive(t *testing.T) {
	g := New(0)
	g.TogglePause()
	if g.State() != StateStartScreen {
		t.Fatalf("pause toggled from %v", g.State())
	}
}

func TestCollision_PelletAwardAndCounter(t *testing.T) {
	g := newActiveGame(t)
	g.player.PlaceAt(Tile{12, 23}, DirNone)
	events := resolveOnce(g)
	if !hasEvent(events, EventPelletEaten) {
		t.Fatal("no pellet_eaten event")
	}
	if g.score.Score != pelletPoints {
		t.Fatalf("score = %d, want %d", g.score.Score, pelletPoints)
	}
	if g.score.PelletsEaten != 1 {
		t.Fatalf("per-life counter = %d, want 1", g.score.PelletsEaten)
	}
	if !g.player.eatingSlow {
		t.Fatal("eating slowdown flag not set")
	}
	// The slot is gone: resolving again awards nothing.
	if events := resolveOnce(g); hasEvent(events, EventPelletEaten) {
		t.Fatal("pellet eaten twice")
	}
}

func TestCollision_EnergizerStartsEvasionAndReversesPursuers(t *testing.T) {
	g := newActiveGame(t)
	p := g.pursuers[0]
	p.Facing = DirRight
	g.player.PlaceAt(Tile{1, 23}, DirNone) // energizer
	events := resolveOnce(g)
	if !hasEvent(events, EventEnergizerEaten) {
		t.Fatal("no energizer_eaten event")
	}
	if !g.modes.EvasionActive() {
		t.Fatal("evasion timer not started")
	}
	if p.Mode != ModeEvading {
		t.Fatalf("out-of-den pursuer mode = %v, want evading", p.Mode)
	}
	if p.Facing != DirLeft {
		t.Fatalf("facing = %v, want reversed to left", p.Facing)
	}
	if g.pursuers[1].Mode != ModePenned {
		t.Fatal("penned pursuer must ignore evasion start")
	}
}

func TestCollision_ZeroDurationEvasionStillScoresAndResetsChain(t *testing.T) {
	g := newActiveGame(t)
	g.cfg.EvasionTicks = 0
	g.score.EatChain = 2
	g.player.PlaceAt(Tile{1, 23}, DirNone)
	events := resolveOnce(g)
	if !hasEvent(events, EventEnergizerEaten) {
		t.Fatal("no energizer_eaten event")
	}
	if g.modes.EvasionActive() {
		t.Fatal("evasion must not start at zero duration")
	}
	if g.pursuers[0].Mode == ModeEvading {
		t.Fatal("no pursuer may enter evasion at zero duration")
	}
	if g.score.EatChain != 0 {
		t.Fatal("energizer must still rewind the eat ladder")
	}
	if g.score.Score != energizerPoints {
		t.Fatalf("score = %d, want %d", g.score.Score, energizerPoints)
	}
}

func TestCollision_EvadingPursuersEatenSequentially(t *testing.T) {
	g := newActiveGame(t)
	pt := g.player.Tile()
	g.pursuers[0].Mode = ModeEvading
	g.pursuers[0].PlaceAt(pt, DirLeft)
	g.pursuers[3].Mode = ModeEvading
	g.pursuers[3].PlaceAt(pt, DirLeft)

	events := resolveOnce(g)
	if n := countEvents(events, EventPursuerEaten); n != 2 {
		t.Fatalf("pursuer_eaten events = %d, want 2", n)
	}
	// Sequential ladder regardless of which variant was eaten.
	var pts []int
	for _, e := range events {
		if e.Kind == EventPursuerEaten {
			pts = append(pts, e.Points)
		}
	}
	if pts[0] != 200 || pts[1] != 400 {
		t.Fatalf("awards = %v, want [200 400]", pts)
	}
	if g.pursuers[0].Mode != ModeReturning || g.pursuers[3].Mode != ModeReturning {
		t.Fatal("eaten pursuers must enter returning mode")
	}
	if hasEvent(events, EventPlayerCaught) {
		t.Fatal("eaten pursuers must not also catch the player")
	}
	if g.State() != StateActive {
		t.Fatalf("state = %v, want still active", g.State())
	}
}

func TestCollision_PennedAndReturningNeverCatch(t *testing.T) {
	g := newActiveGame(t)
	pt := g.player.Tile()
	g.pursuers[1].Mode = ModePenned
	g.pursuers[1].PlaceAt(pt, DirNone)
	g.pursuers[2].Mode = ModeReturning
	g.pursuers[2].PlaceAt(pt, DirNone)
	events := resolveOnce(g)
	if len(events) != 0 {
		t.Fatalf("events = %v, want none", events)
	}
	if g.State() != StateActive {
		t.Fatalf("state = %v, want active", g.State())
	}
}

func TestCollision_SingleDeathTransitionPerTick(t *testing.T) {
	g := newActiveGame(t)
	pt := g.player.Tile()
	g.pursuers[0].Mode = ModeFollowingGlobal
	g.pursuers[0].PlaceAt(pt, DirLeft)
	g.pursuers[3].Mode = ModeFollowingGlobal
	g.pursuers[3].PlaceAt(pt, DirLeft)
	events := resolveOnce(g)
	if n := countEvents(events, EventPlayerCaught); n != 1 {
		t.Fatalf("player_caught events = %d, want exactly 1", n)
	}
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}
}

func TestDying_FreezeAnimateRespawn(t *testing.T) {
	g := newActiveGame(t)
	g.pursuers[0].PlaceAt(g.player.Tile(), DirLeft)
	g.StepTick()
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}
	frozen := g.Snapshot()
	for i := 0; i < dyingFreezeTicks; i++ {
		g.StepTick()
	}
	if got := g.Snapshot(); got.Player != frozen.Player {
		t.Fatal("player moved during the death freeze")
	}
	for i := 0; i < deathAnimTicks; i++ {
		g.StepTick()
	}
	if g.State() != StateReady {
		t.Fatalf("state = %v after death sequence, want ready", g.State())
	}
	if g.player.Lives != startingLives-1 {
		t.Fatalf("lives = %d, want %d", g.player.Lives, startingLives-1)
	}
	if g.player.Tile() != g.grid.PlayerSpawn {
		t.Fatal("player not repositioned to spawn")
	}
	if g.score.PelletsEaten != 0 {
		t.Fatal("per-life pellet counter must reset on death")
	}
}

func TestDying_LastLifeEndsTheMatch(t *testing.T) {
	g := newActiveGame(t)
	g.player.Lives = 1
	g.pursuers[0].PlaceAt(g.player.Tile(), DirLeft)
	g.StepTick()
	sawGameOver := false
	for i := 0; i < dyingFreezeTicks+deathAnimTicks+2; i++ {
		g.StepTick()
		if hasEvent(g.Snapshot().Events, EventGameOver) {
			sawGameOver = true
		}
	}
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", g.State())
	}
	if !sawGameOver {
		t.Fatal("no game_over event emitted")
	}
	// The match stays terminal until a start signal, which resets it.
	g.score.Score = 4321
	g.StepTick()
	if g.State() != StateGameOver {
		t.Fatal("game over must hold without a start signal")
	}
	g.PressStart()
	if g.State() != StateReady {
		t.Fatalf("state = %v after restart, want ready", g.State())
	}
	if g.score.Score != 0 || g.level != 1 || g.player.Lives != startingLives {
		t.Fatalf("restart left score=%d level=%d lives=%d", g.score.Score, g.level, g.player.Lives)
	}
}

func TestLevelComplete_AdvancesAndReseeds(t *testing.T) {
	g := newActiveGame(t)
	for _, s := range g.grid.PelletSlots() {
		g.pellets.Eat(s.Col, s.Row)
	}
	g.StepTick()
	if g.State() != StateLevelComplete {
		t.Fatalf("state = %v with zero pellets, want level-complete", g.State())
	}
	if !hasEvent(g.Snapshot().Events, EventLevelComplete) {
		t.Fatal("no level_complete event")
	}
	for i := 0; i < levelCompleteTicks; i++ {
		g.StepTick()
	}
	if g.State() != StateReady {
		t.Fatalf("state = %v after pause, want ready", g.State())
	}
	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if g.pellets.Remaining() != g.pellets.Seeded() {
		t.Fatal("pellet overlay not reseeded")
	}
	if g.modes.phaseIndex != 0 || g.modes.Mode() != ModeScatter {
		t.Fatal("phase cycle not reset to first scatter")
	}
}

func TestThresholdRelease_GatedOnPerLifePellets(t *testing.T) {
	g := newActiveGame(t)
	third := g.pursuers[2]
	if third.Threshold == 0 {
		t.Fatalf("slot 2 threshold = 0, test needs a gate")
	}
	g.StepTick()
	if third.Mode != ModePenned {
		t.Fatal("slot 2 released before its pellet threshold")
	}
	g.score.PelletsEaten = third.Threshold
	g.StepTick()
	if third.Mode == ModePenned {
		t.Fatal("slot 2 not released at its pellet threshold")
	}
}

func TestExtraLife_GrantedOnceAcrossAwards(t *testing.T) {
	g := newActiveGame(t)
	g.score.Score = extraLifeScore - pelletPoints
	g.player.PlaceAt(Tile{12, 23}, DirNone)
	events := resolveOnce(g)
	if !hasEvent(events, EventExtraLife) {
		t.Fatal("no extra_life event on the crossing award")
	}
	if g.player.Lives != startingLives+1 {
		t.Fatalf("lives = %d, want %d", g.player.Lives, startingLives+1)
	}
	// Further awards never re-grant.
	g.player.PlaceAt(Tile{11, 23}, DirNone)
	if events := resolveOnce(g); hasEvent(events, EventExtraLife) {
		t.Fatal("extra life granted twice")
	}
}

func TestEvasionEnd_RestoresCurrentGlobalPhase(t *testing.T) {
	g := newActiveGame(t)
	p := g.pursuers[0]
	g.modes.StartEvasion(3)
	p.StartEvading()
	g.score.EatChain = 2
	for i := 0; i < 3; i++ {
		g.StepTick()
	}
	if p.Mode != ModeFollowingGlobal {
		t.Fatalf("mode = %v after evasion end, want following-global", p.Mode)
	}
	if g.score.EatChain != 0 {
		t.Fatal("eat ladder must rewind when evasion ends")
	}
}

func TestDeterminism_IdenticalScriptsIdenticalChecksums(t *testing.T) {
	script := []SimOption{
		WithStartAt(5),
		WithInputAt(200, DirUp),
		WithInputAt(400, DirRight),
		WithInputAt(700, DirDown),
		WithPauseAt(900),
		WithPauseAt(950),
		WithInputAt(1200, DirLeft),
	}
	a := NewTestSim(script...)
	b := NewTestSim(script...)
	a.RunTicks(3000)
	b.RunTicks(3000)
	if a.Checksum() == 0 {
		t.Fatal("checksum never folded")
	}
	if a.Checksum() != b.Checksum() {
		t.Fatalf("checksums diverged: %x vs %x", a.Checksum(), b.Checksum())
	}
}

func TestDeterminism_InputChangesChecksum(t *testing.T) {
	a := NewTestSim(WithStartAt(5), WithInputAt(300, DirUp))
	b := NewTestSim(WithStartAt(5), WithInputAt(300, DirDown))
	a.RunTicks(1500)
	b.RunTicks(1500)
	if a.Checksum() == b.Checksum() {
		t.Fatal("different input scripts should diverge")
	}
}

func TestCollision_DeathOutranksLevelCompleteSameTick(t *testing.T) {
	g := newActiveGame(t)
	last := Tile{12, 23}
	for _, s := range g.grid.PelletSlots() {
		if s != last {
			g.pellets.Eat(s.Col, s.Row)
		}
	}
	g.player.PlaceAt(last, DirLeft)
	g.pursuers[0].PlaceAt(last, DirLeft)
	g.StepTick()
	snap := g.Snapshot()
	if !hasEvent(snap.Events, EventPelletEaten) {
		t.Fatal("last pellet not eaten")
	}
	if !hasEvent(snap.Events, EventPlayerCaught) {
		t.Fatal("no player_caught on the shared tile")
	}
	if hasEvent(snap.Events, EventLevelComplete) {
		t.Fatal("level_complete emitted on a death tick")
	}
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}
	if g.level != 1 {
		t.Fatalf("level = %d after a death tick, want 1", g.level)
	}
}

func TestDying_ClearsEvasionAndEatChain(t *testing.T) {
	g := newActiveGame(t)
	g.modes.StartEvasion(600)
	g.score.EatChain = 2
	// Slot 0 never flipped to evading, so it still catches.
	g.pursuers[0].PlaceAt(g.player.Tile(), DirLeft)
	g.StepTick()
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}
	for i := 0; i < dyingFreezeTicks+deathAnimTicks; i++ {
		g.StepTick()
	}
	if g.State() != StateReady {
		t.Fatalf("state = %v after death sequence, want ready", g.State())
	}
	if g.modes.EvasionActive() {
		t.Fatal("evasion timer survived the death")
	}
	if g.score.EatChain != 0 {
		t.Fatal("eat ladder must rewind on death")
	}
}

func TestPursuerEaten_RecoversAtRestAndReleavesPastGate(t *testing.T) {
	g := newActiveGame(t)
	p := g.pursuers[0]
	p.PlaceAt(Tile{6, 5}, DirLeft)
	p.MarkEaten()
	p.Threshold = 9999 // recovery re-leaves without re-earning the pellet gate

	sawLeaving := false
	for i := 0; i < 600 && p.Mode != ModeFollowingGlobal; i++ {
		g.StepTick()
		if p.Mode == ModeLeavingDen {
			sawLeaving = true
		}
	}
	if !sawLeaving {
		t.Fatal("eaten pursuer never recovered at its rest tile")
	}
	if p.Mode != ModeFollowingGlobal {
		t.Fatalf("mode = %v after recovery run, want following-global", p.Mode)
	}
	if g.State() != StateActive {
		t.Fatalf("state = %v during recovery run, want active", g.State())
	}
}

func TestLeavingDen_ExitJoinsRunningEvasion(t *testing.T) {
	g := newActiveGame(t)
	p := g.pursuers[1]
	p.Release()
	if p.Mode != ModeLeavingDen {
		t.Fatalf("mode = %v after release, want leaving-den", p.Mode)
	}
	p.StartEvading()
	if p.Mode != ModeLeavingDen {
		t.Fatal("den leaver must ignore the evasion flip")
	}
	g.modes.StartEvasion(g.cfg.EvasionTicks)
	for i := 0; i < 120 && p.Mode == ModeLeavingDen; i++ {
		g.StepTick()
	}
	if p.Mode != ModeEvading {
		t.Fatalf("mode = %v at den exit during evasion, want evading", p.Mode)
	}
}

func TestMotion_EatingSlowdownAppliesNextTick(t *testing.T) {
	g := newActiveGame(t)
	ate := false
	for i := 0; i < 20 && !ate; i++ {
		g.StepTick()
		ate = hasEvent(g.Snapshot().Events, EventPelletEaten)
	}
	if !ate {
		t.Fatal("player never reached a pellet")
	}
	before := g.player.X
	g.StepTick()
	if d := before - g.player.X; d < playerEatingSpeed-1e-9 || d > playerEatingSpeed+1e-9 {
		t.Fatalf("post-pellet step = %.4f, want eating speed %.2f", d, playerEatingSpeed)
	}
	// The slowdown lasts exactly one tick.
	before = g.player.X
	g.StepTick()
	if d := before - g.player.X; d < playerBaseSpeed-1e-9 || d > playerBaseSpeed+1e-9 {
		t.Fatalf("second step = %.4f, want base speed %.2f", d, playerBaseSpeed)
	}
}
