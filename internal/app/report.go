package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/pixelgrid/chomp/internal/game"
)

// debugReportEntries caps how much of the sim log tail goes into a report.
const debugReportEntries = 80

// copyDebugReport snapshots the match and puts a plain-text report on the
// system clipboard, for pasting into a bug report.
func (a *App) copyDebugReport() {
	snap := a.core.Snapshot()
	_ = clipboard.WriteAll(buildDebugReport(snap, a.core.Log()))
}

func buildDebugReport(snap game.Snapshot, log *game.SimLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- chomp debug report ---\n")
	fmt.Fprintf(&b, "tick=%d state=%s checksum=%016x\n", snap.Tick, snap.State, snap.Fold(0))
	fmt.Fprintf(&b, "score=%d high=%d lives=%d level=%d pellets=%d\n",
		snap.Score, snap.HighScore, snap.Lives, snap.Level, snap.PelletsRemaining)
	fmt.Fprintf(&b, "global=%s evasion_left=%d strobe=%v\n",
		snap.GlobalMode, snap.EvasionLeft, snap.EvasionStrobe)
	fmt.Fprintf(&b, "player=(%.2f,%.2f) facing=%s\n", snap.Player.X, snap.Player.Y, snap.Player.Facing)
	for _, p := range snap.Pursuers {
		fmt.Fprintf(&b, "%-16s (%.2f,%.2f) facing=%-5s mode=%-16s target=(%d,%d)\n",
			p.Variant, p.X, p.Y, p.Facing, p.Mode, p.Target.Col, p.Target.Row)
	}

	entries := log.Entries()
	from := 0
	if len(entries) > debugReportEntries {
		from = len(entries) - debugReportEntries
	}
	fmt.Fprintf(&b, "\n== recent log (%d entries) ==\n", len(entries)-from)
	for _, e := range entries[from:] {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
