package game

// Contact tolerance is tile equality: agents collide on the tick they
// occupy the same tile, after both have moved.

// resolveCollisions runs the post-motion tests in fixed order: collectible,
// energizer, then every pursuer. At most one death transition is honoured
// per tick no matter how many pursuers share the player's tile.
func (g *Game) resolveCollisions() {
	pt := g.player.Tile()
	pt.Col = g.grid.WrapCol(pt.Col)

	if ate, energizer := g.pellets.Eat(pt.Col, pt.Row); ate {
		g.score.PelletsEaten++
		g.player.eatingSlow = true
		if energizer {
			g.score.ResetChain()
			g.modes.StartEvasion(g.cfg.EvasionTicks)
			if g.cfg.EvasionTicks > 0 {
				for _, p := range g.pursuers {
					p.StartEvading()
				}
			}
			g.emit(Event{Kind: EventEnergizerEaten, Tile: pt, Points: energizerPoints, Pursuer: -1})
			g.award(energizerPoints)
		} else {
			g.emit(Event{Kind: EventPelletEaten, Tile: pt, Points: pelletPoints, Pursuer: -1})
			g.award(pelletPoints)
		}
	}

	caught := false
	for i, p := range g.pursuers {
		switch p.Mode {
		case ModePenned, ModeReturning, ModeLeavingDen:
			// No interaction: waiting, eaten, or still inside the den.
			continue
		}
		t := p.Tile()
		t.Col = g.grid.WrapCol(t.Col)
		if t != pt {
			continue
		}
		if p.Mode == ModeEvading {
			pts := g.score.NextPursuerValue()
			p.MarkEaten()
			g.emit(Event{Kind: EventPursuerEaten, Tile: t, Points: pts, Pursuer: i})
			g.award(pts)
			continue
		}
		if !caught {
			caught = true
			g.emit(Event{Kind: EventPlayerCaught, Tile: t, Pursuer: i})
		}
	}
	if caught {
		g.setState(StateDying)
		g.countdown = dyingFreezeTicks
		g.deathAnim = 0
	}
}
