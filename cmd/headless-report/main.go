// Command headless-report runs the simulation without a display, prints
// per-run behaviour statistics, and cross-checks that identical input
// scripts yield identical checksums.
package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/pixelgrid/chomp/internal/game"
)

type runStats struct {
	runIndex int
	checksum uint64

	finalState   game.LifecycleState
	score        int
	level        int
	lives        int
	pelletsLeft  int
	eventCounts  map[string]int
	denReleases  int
	modeChanges  int
	firstCaught  uint64 // tick of the first player_caught entry, 0 if none
	lifecycleLog []string
}

func main() {
	var runs int
	var ticks int
	var moves int
	var verbose bool

	flag.IntVar(&runs, "runs", 3, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 18000, "ticks per run (60 = one second)")
	flag.IntVar(&moves, "moves", 200, "scripted direction changes per run")
	flag.BoolVar(&verbose, "verbose", false, "record per-tick movement in the sim log")
	flag.Parse()

	if runs <= 0 || ticks <= 0 {
		fmt.Println("error: -runs and -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d moves=%d\n\n", runs, ticks, moves)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		stats := runScripted(i+1, ticks, moves, verbose)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// scriptOptions builds the fixed input script shared by every run. The
// pattern is arbitrary but constant: determinism only needs identical
// inputs, not clever ones.
func scriptOptions(moves int, verbose bool) []game.SimOption {
	opts := []game.SimOption{game.WithStartAt(1)}
	if verbose {
		opts = append(opts, game.WithVerboseLog())
	}
	dirs := []game.Direction{
		game.DirLeft, game.DirDown, game.DirRight, game.DirUp,
		game.DirRight, game.DirDown, game.DirLeft, game.DirUp,
	}
	tick := uint64(150)
	for i := 0; i < moves; i++ {
		opts = append(opts, game.WithInputAt(tick, dirs[i%len(dirs)]))
		tick += 73
	}
	return opts
}

func runScripted(runIndex, ticks, moves int, verbose bool) runStats {
	ts := game.NewTestSim(scriptOptions(moves, verbose)...)
	ts.RunTicks(ticks)

	g := ts.Game()
	snap := g.Snapshot()
	stats := runStats{
		runIndex:    runIndex,
		checksum:    ts.Checksum(),
		finalState:  snap.State,
		score:       snap.Score,
		level:       snap.Level,
		lives:       snap.Lives,
		pelletsLeft: snap.PelletsRemaining,
		eventCounts: map[string]int{},
	}
	for _, e := range g.Log().Entries() {
		switch e.Category {
		case "event":
			stats.eventCounts[e.Key]++
			if e.Key == "player_caught" && stats.firstCaught == 0 {
				stats.firstCaught = e.Tick
			}
		case "den":
			stats.denReleases++
		case "mode":
			stats.modeChanges++
		case "lifecycle":
			stats.lifecycleLog = append(stats.lifecycleLog,
				fmt.Sprintf("T=%d %s", e.Tick, e.Value))
		}
	}
	return stats
}

func printRun(s runStats) {
	fmt.Printf("--- run %d ---\n", s.runIndex)
	fmt.Printf("checksum=%016x\n", s.checksum)
	fmt.Printf("final: state=%s score=%d level=%d lives=%d pellets_left=%d\n",
		s.finalState, s.score, s.level, s.lives, s.pelletsLeft)
	fmt.Printf("den_releases=%d mode_changes=%d first_caught_tick=%d\n",
		s.denReleases, s.modeChanges, s.firstCaught)

	keys := make([]string, 0, len(s.eventCounts))
	for k := range s.eventCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("events:")
	for _, k := range keys {
		fmt.Printf(" %s=%d", k, s.eventCounts[k])
	}
	fmt.Println()
	for _, l := range s.lifecycleLog {
		fmt.Printf("  %s\n", l)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	fmt.Printf("=== aggregate ===\n")
	identical := true
	for _, s := range all[1:] {
		if s.checksum != all[0].checksum {
			identical = false
		}
	}
	if identical {
		fmt.Printf("determinism: PASS (%d identical runs, checksum %016x)\n",
			len(all), all[0].checksum)
		return
	}
	fmt.Printf("determinism: FAIL\n")
	for _, s := range all {
		fmt.Printf("  run %d: %016x\n", s.runIndex, s.checksum)
	}
}
