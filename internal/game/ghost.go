package game

// pursuerCount is fixed: one pursuer per targeting variant.
const pursuerCount = 4

// Pursuer speeds in world units per tick, before the level multiplier.
const (
	pursuerBaseSpeed    = 0.75
	pursuerEvasionSpeed = 0.50
	pursuerTunnelSpeed  = 0.40
	pursuerReturnSpeed  = 1.50
)

// PursuerMode is the per-agent behaviour state layered under the global
// scatter/chase phase.
type PursuerMode uint8

const (
	ModePenned          PursuerMode = iota // waiting in the den
	ModeLeavingDen                         // scripted walk to the den exit
	ModeFollowingGlobal                    // obeying the global phase
	ModeEvading                            // frightened, fleeing the player
	ModeReturning                          // eaten, racing back to the den
)

func (m PursuerMode) String() string {
	switch m {
	case ModePenned:
		return "penned"
	case ModeLeavingDen:
		return "leaving-den"
	case ModeFollowingGlobal:
		return "following-global"
	case ModeEvading:
		return "evading"
	case ModeReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Pursuer is one of the four maze agents hunting the player. Behaviour
// differences live entirely in the Variant tag and its targeting function;
// the record itself is shared.
type Pursuer struct {
	Actor
	Variant Variant
	Mode    PursuerMode

	HomeCorner Tile // scatter / retreat target
	RestTile   Tile // den spot: spawn (except slot 0) and recovery point
	Threshold  int  // per-life pellets required before den release

	// leader is the index of the pursuer whose tile feeds this agent's
	// targeting (leader-relative variant only), -1 for none. Read-only,
	// same-tick; never an ownership edge.
	leader int

	// Target is the tile computed by the last targeting pass. Kept on the
	// record for snapshots and the debug overlay.
	Target Tile

	lastChoice Tile // tile where the junction direction was last chosen
	descending bool // returning: past the door, dropping to the rest tile
}

// Release lets a penned pursuer begin leaving the den. Pursuers already out
// are unaffected.
func (p *Pursuer) Release() {
	if p.Mode != ModePenned {
		return
	}
	p.Mode = ModeLeavingDen
}

// StartEvading flips the pursuer into evasion with the mandatory abrupt
// facing reversal. Penned, leaving and eaten agents are immune.
func (p *Pursuer) StartEvading() {
	if p.Mode != ModeFollowingGlobal {
		return
	}
	p.Mode = ModeEvading
	p.Facing = p.Facing.Reverse()
	p.Queued = DirNone
	p.lastChoice = Tile{-1, -1}
}

// EndEvading returns an evading pursuer to the current global phase.
func (p *Pursuer) EndEvading() {
	if p.Mode == ModeEvading {
		p.Mode = ModeFollowingGlobal
	}
}

// MarkEaten sends the pursuer back to the den as disembodied eyes.
func (p *Pursuer) MarkEaten() {
	p.Mode = ModeReturning
	p.descending = false
	p.Queued = DirNone
	p.lastChoice = Tile{-1, -1}
}

// speed selects the pursuer's per-tick speed. Priority: returning-to-den >
// evasion > tunnel > base.
func (p *Pursuer) speed(g *Grid, mul float64) float64 {
	switch {
	case p.Mode == ModeReturning:
		return pursuerReturnSpeed
	case p.Mode == ModeEvading:
		return pursuerEvasionSpeed * mul
	case p.InTunnel(g):
		return pursuerTunnelSpeed * mul
	default:
		return pursuerBaseSpeed * mul
	}
}

// steer picks a direction when the pursuer enters a new tile: the legal exit
// minimising Euclidean distance from the candidate next tile to the target,
// excluding immediate reversal unless reversal is the only legal move. When
// flee is set the comparison is inverted (maximise distance), which is the
// deterministic evasion walk.
func (p *Pursuer) steer(g *Grid, target Tile, flee bool) {
	t := p.Tile()
	if t == p.lastChoice && p.Facing != DirNone {
		return
	}
	p.lastChoice = t
	dirs := g.AvailableDirections(t.Col, t.Row, p.Facing.Reverse())
	if len(dirs) == 0 {
		p.Facing = p.Facing.Reverse()
		p.Queued = DirNone
		return
	}
	best := dirs[0]
	bestDist := tileDist(t.Offset(best, 1), target)
	for _, d := range dirs[1:] {
		dist := tileDist(t.Offset(d, 1), target)
		if (!flee && dist < bestDist) || (flee && dist > bestDist) {
			best = d
			bestDist = dist
		}
	}
	if p.Facing == DirNone {
		p.Facing = best
	} else {
		p.Queued = best
	}
}

// stepLeavingDen walks the scripted den exit: align horizontally with the
// exit column, then rise through the door. Returns true on arrival at the
// den exit tile's centre.
func (p *Pursuer) stepLeavingDen(exit Tile, speed float64) bool {
	ex, ey := exit.Center()
	if p.X != ex {
		p.Facing = DirRight
		if p.X > ex {
			p.Facing = DirLeft
		}
		if step := ex - p.X; step > -speed && step < speed {
			p.X = ex
		} else if p.X < ex {
			p.X += speed
		} else {
			p.X -= speed
		}
		return false
	}
	p.Facing = DirUp
	if step := p.Y - ey; step < speed {
		p.Y = ey
		p.Facing = DirLeft
		p.Queued = DirNone
		p.lastChoice = Tile{-1, -1}
		return true
	}
	p.Y -= speed
	return false
}

// stepReturning navigates an eaten pursuer to the den exit, then drops it
// through the door to its rest tile. Returns true on recovery.
func (p *Pursuer) stepReturning(g *Grid, exit Tile, speed float64) bool {
	if !p.descending {
		p.steer(g, exit, false)
		p.Advance(g, speed)
		ex, ey := exit.Center()
		dx, dy := p.X-ex, p.Y-ey
		if dx > -speed && dx < speed && dy > -speed && dy < speed {
			p.X, p.Y = ex, ey
			p.descending = true
			p.Facing = DirDown
			p.Queued = DirNone
		}
		return false
	}
	// Drop through the door, then slide sideways onto the rest tile.
	rx, ry := p.RestTile.Center()
	if p.Y != ry {
		p.Facing = DirDown
		if step := ry - p.Y; step < speed {
			p.Y = ry
		} else {
			p.Y += speed
		}
		return false
	}
	if p.X != rx {
		p.Facing = DirRight
		if p.X > rx {
			p.Facing = DirLeft
		}
		if step := rx - p.X; step > -speed && step < speed {
			p.X = rx
		} else if p.X < rx {
			p.X += speed
		} else {
			p.X -= speed
		}
		return false
	}
	p.descending = false
	return true
}
