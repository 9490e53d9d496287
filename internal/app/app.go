// Package app is the windowed frontend: rendering, input, audio cues and
// high-score persistence. It drives the simulation core with wall-clock
// frame deltas and consumes its per-tick snapshots; no gameplay logic lives
// here.
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelgrid/chomp/internal/game"
)

// cellPx is the on-screen pixel size of one maze cell.
const cellPx = 24

// hudHeight is the pixel strip under the maze for score/lives text.
const hudHeight = 48

type App struct {
	core  *game.Game
	audio *CuePlayer
	store *HighScoreStore

	width  int
	height int

	prevKeys map[ebiten.Key]bool
	lastTime time.Time
}

// New builds the frontend around a fresh match, seeding the high score from
// disk. Audio failing to initialise is non-fatal: the game runs silent.
func New() (*App, error) {
	store, err := OpenHighScoreStore()
	if err != nil {
		return nil, err
	}
	core := game.New(store.Best())
	a := &App{
		core:     core,
		store:    store,
		prevKeys: make(map[ebiten.Key]bool),
		lastTime: time.Now(),
	}
	grid := core.Grid()
	a.width = grid.Cols * cellPx
	a.height = grid.Rows*cellPx + hudHeight
	a.audio = NewCuePlayer(len(grid.PelletSlots()))
	return a, nil
}

// keyPressed edge-detects a key without re-firing while held.
func (a *App) keyPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := a.prevKeys[k]
	a.prevKeys[k] = down
	return down && !was
}

func (a *App) Update() error {
	// Direction input buffers freely: the core honours it when legal.
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		a.core.QueueDirection(game.DirUp)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		a.core.QueueDirection(game.DirDown)
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		a.core.QueueDirection(game.DirLeft)
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		a.core.QueueDirection(game.DirRight)
	}
	if a.keyPressed(ebiten.KeyEnter) || a.keyPressed(ebiten.KeySpace) {
		a.core.PressStart()
	}
	if a.keyPressed(ebiten.KeyP) || a.keyPressed(ebiten.KeyEscape) {
		a.core.TogglePause()
	}
	if a.keyPressed(ebiten.KeyF2) {
		a.copyDebugReport()
	}

	// Wall clock only decides how many fixed ticks run; the core caps
	// oversized deltas after a stall.
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now
	a.core.Advance(dt)

	snap := a.core.Snapshot()
	a.audio.Consume(snap)
	a.store.Observe(snap)
	return nil
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
