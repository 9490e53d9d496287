package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/pixelgrid/chomp/internal/game"
)

// hudFace renders all HUD text from the x/image bitmap font.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	colWall      = color.RGBA{R: 28, G: 38, B: 160, A: 255}
	colDenWall   = color.RGBA{R: 70, G: 70, B: 180, A: 255}
	colDoor      = color.RGBA{R: 230, G: 150, B: 180, A: 255}
	colPellet    = color.RGBA{R: 240, G: 200, B: 150, A: 255}
	colPlayer    = color.RGBA{R: 250, G: 220, B: 40, A: 255}
	colFright    = color.RGBA{R: 40, G: 60, B: 230, A: 255}
	colFrightAlt = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colEyes      = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colText      = color.RGBA{R: 235, G: 235, B: 235, A: 255}
)

// pursuerColors maps variant to body colour.
var pursuerColors = [...]color.RGBA{
	game.VariantDirect:         {R: 230, G: 40, B: 40, A: 255},
	game.VariantAmbush:         {R: 240, G: 150, B: 200, A: 255},
	game.VariantLeaderRelative: {R: 60, G: 210, B: 230, A: 255},
	game.VariantThresholdFlee:  {R: 240, G: 170, B: 60, A: 255},
}

// px converts a world-unit coordinate to screen pixels.
func px(v float64) float32 {
	return float32(v * cellPx / game.TileSize)
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 12, A: 255})
	a.drawMaze(screen)
	snap := a.core.Snapshot()
	a.drawPursuers(screen, snap)
	a.drawPlayer(screen, snap)
	a.drawHUD(screen, snap)
}

func (a *App) drawMaze(screen *ebiten.Image) {
	grid := a.core.Grid()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			x := float32(col * cellPx)
			y := float32(row * cellPx)
			switch grid.CellAt(col, row) {
			case game.CellWall:
				vector.DrawFilledRect(screen, x+2, y+2, cellPx-4, cellPx-4, colWall, false)
			case game.CellDenWall:
				vector.DrawFilledRect(screen, x+2, y+2, cellPx-4, cellPx-4, colDenWall, false)
			case game.CellDenDoor:
				vector.DrawFilledRect(screen, x, y+float32(cellPx)/2-2, cellPx, 4, colDoor, false)
			case game.CellPellet:
				if a.core.HasPellet(col, row) {
					vector.DrawFilledCircle(screen, x+cellPx/2, y+cellPx/2, 3, colPellet, true)
				}
			case game.CellEnergizer:
				if a.core.HasPellet(col, row) {
					vector.DrawFilledCircle(screen, x+cellPx/2, y+cellPx/2, 8, colPellet, true)
				}
			}
		}
	}
}

func (a *App) drawPlayer(screen *ebiten.Image, snap game.Snapshot) {
	if snap.State == game.StateDying && snap.DeathAnim > 0 {
		// Death animation: the disc shrinks away over the animation window.
		t := 1 - float32(snap.DeathAnim)/60
		if t < 0 {
			t = 0
		}
		vector.DrawFilledCircle(screen, px(snap.Player.X), px(snap.Player.Y), 10*t, colPlayer, true)
		return
	}
	vector.DrawFilledCircle(screen, px(snap.Player.X), px(snap.Player.Y), 10, colPlayer, true)
	// Facing notch, the cheap stand-in for a mouth.
	dc, dr := snap.Player.Facing.Delta()
	nx := px(snap.Player.X) + float32(dc)*8
	ny := px(snap.Player.Y) + float32(dr)*8
	vector.DrawFilledCircle(screen, nx, ny, 3, color.RGBA{R: 8, G: 8, B: 12, A: 255}, true)
}

func (a *App) drawPursuers(screen *ebiten.Image, snap game.Snapshot) {
	for _, p := range snap.Pursuers {
		x, y := px(p.X), px(p.Y)
		switch p.Mode {
		case game.ModeReturning:
			// Eyes only on the way home.
			vector.DrawFilledCircle(screen, x-3, y, 3, colEyes, true)
			vector.DrawFilledCircle(screen, x+3, y, 3, colEyes, true)
		case game.ModeEvading:
			body := colFright
			if snap.EvasionStrobe {
				body = colFrightAlt
			}
			vector.DrawFilledCircle(screen, x, y, 10, body, true)
		default:
			vector.DrawFilledCircle(screen, x, y, 10, pursuerColors[p.Variant], true)
		}
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	baseY := float64(a.height - hudHeight + 16)
	line := fmt.Sprintf("SCORE %6d   HIGH %6d   LIVES %d   LEVEL %d",
		snap.Score, snap.HighScore, snap.Lives, snap.Level)
	drawText(screen, line, 8, baseY)

	var banner string
	switch snap.State {
	case game.StateStartScreen:
		banner = "PRESS ENTER TO START"
	case game.StateReady:
		banner = "READY!"
	case game.StatePaused:
		banner = "PAUSED"
	case game.StateGameOver:
		banner = "GAME OVER - PRESS ENTER"
	}
	if banner != "" {
		drawText(screen, banner, 8, baseY+20)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colText)
	text.Draw(screen, s, hudFace, op)
}
