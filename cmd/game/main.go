package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelgrid/chomp/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Chomp")
	ebiten.SetWindowSize(672, 792)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
