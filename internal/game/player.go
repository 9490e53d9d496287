package game

// Player speeds in world units per tick, before the level multiplier.
const (
	playerBaseSpeed    = 0.80
	playerEatingSpeed  = 0.71 // one-tick slowdown while chewing a pellet
	playerEvasionSpeed = 0.90 // boost while the evasion timer runs
)

const startingLives = 3

// Player is the single player-controlled agent. It is created once per
// match and repositioned, never recreated, between lives and levels.
type Player struct {
	Actor
	Lives int

	eatingSlow bool // set by the collision pass, consumed next tick
}

// NewPlayer creates the match's player at the grid's spawn tile.
func NewPlayer(g *Grid) *Player {
	p := &Player{Lives: startingLives}
	p.Respawn(g)
	return p
}

// Respawn repositions the player at the spawn tile, moving left.
func (p *Player) Respawn(g *Grid) {
	p.PlaceAt(g.PlayerSpawn, DirLeft)
	p.eatingSlow = false
}

// speed selects the player's per-tick speed. Priority: evasion boost >
// eating slowdown > base.
func (p *Player) speed(evasionActive bool, mul float64) float64 {
	switch {
	case evasionActive:
		return playerEvasionSpeed * mul
	case p.eatingSlow:
		return playerEatingSpeed * mul
	default:
		return playerBaseSpeed * mul
	}
}
