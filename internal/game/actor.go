package game

import "math"

// corneringRadius is the forgiveness window, in world units, inside which a
// perpendicular queued turn is honoured before the exact tile centre.
const corneringRadius = 3.0

// Actor is the shared tile-quantised movement state for the player and the
// pursuers: a continuous position, a facing, and a buffered next facing.
type Actor struct {
	X, Y   float64
	Facing Direction
	Queued Direction
}

// Tile returns the maze tile currently containing the actor.
func (a *Actor) Tile() Tile {
	return TileAt(a.X, a.Y)
}

// PlaceAt snaps the actor to the centre of a tile, stopped.
func (a *Actor) PlaceAt(t Tile, facing Direction) {
	a.X, a.Y = t.Center()
	a.Facing = facing
	a.Queued = DirNone
}

// Advance moves the actor by speed units along its facing for one tick,
// honouring the queued turn, clamping at walls, and wrapping through the
// tunnel row.
func (a *Actor) Advance(g *Grid, speed float64) {
	a.tryQueuedTurn(g)
	if a.Facing == DirNone {
		return
	}
	dc, dr := a.Facing.Delta()
	a.X += float64(dc) * speed
	a.Y += float64(dr) * speed
	a.clampAtWall(g)
	a.wrapTunnel(g)
}

// tryQueuedTurn applies the buffered direction if it is legal from the
// current tile. A perpendicular turn is only honoured once the actor's
// offset from tile centre along its travel axis is within corneringRadius;
// when honoured, that coordinate snaps to the centre so the new travel axis
// starts aligned.
func (a *Actor) tryQueuedTurn(g *Grid) {
	q := a.Queued
	if q == DirNone || q == a.Facing {
		return
	}
	t := a.Tile()
	dc, dr := q.Delta()
	if !g.IsWalkable(t.Col+dc, t.Row+dr) {
		return
	}
	if perpendicular(a.Facing, q) {
		cx, cy := t.Center()
		if a.Facing.Horizontal() {
			if math.Abs(a.X-cx) > corneringRadius {
				return // too far from centre, keep the turn buffered
			}
			a.X = cx
		} else {
			if math.Abs(a.Y-cy) > corneringRadius {
				return
			}
			a.Y = cy
		}
	}
	a.Facing = q
	a.Queued = DirNone
}

// clampAtWall stops the actor at tile centre when the cell ahead is not
// walkable, instead of overshooting into the wall.
func (a *Actor) clampAtWall(g *Grid) {
	t := a.Tile()
	dc, dr := a.Facing.Delta()
	if g.IsWalkable(t.Col+dc, t.Row+dr) {
		return
	}
	cx, cy := t.Center()
	switch a.Facing {
	case DirLeft:
		if a.X < cx {
			a.X = cx
			a.Facing = DirNone
		}
	case DirRight:
		if a.X > cx {
			a.X = cx
			a.Facing = DirNone
		}
	case DirUp:
		if a.Y < cy {
			a.Y = cy
			a.Facing = DirNone
		}
	case DirDown:
		if a.Y > cy {
			a.Y = cy
			a.Facing = DirNone
		}
	}
}

// wrapTunnel teleports the actor to the opposite edge when it crosses the
// maze's horizontal bounds on the tunnel row, preserving offset and facing.
func (a *Actor) wrapTunnel(g *Grid) {
	row := g.TunnelRow()
	if row == -1 || a.Tile().Row != row {
		return
	}
	w := float64(g.Cols) * TileSize
	if a.X < 0 {
		a.X += w
	} else if a.X >= w {
		a.X -= w
	}
}

// InTunnel reports whether the actor currently occupies a tunnel cell.
func (a *Actor) InTunnel(g *Grid) bool {
	t := a.Tile()
	return g.IsTunnel(t.Col, t.Row)
}

// tileDist is the Euclidean distance between two tiles in tile units. The
// zero vector has distance zero.
func tileDist(a, b Tile) float64 {
	dc := float64(a.Col - b.Col)
	dr := float64(a.Row - b.Row)
	return math.Sqrt(dc*dc + dr*dr)
}
