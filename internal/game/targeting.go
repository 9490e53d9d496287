package game

// fleeTileRadius is the chase/retreat switch distance for the
// threshold-flee variant. A distance of exactly this value retreats.
const fleeTileRadius = 8.0

// Variant selects a pursuer's targeting behaviour.
type Variant uint8

const (
	VariantDirect         Variant = iota // chases the player's tile
	VariantAmbush                        // aims four tiles ahead of the player
	VariantLeaderRelative                // doubles the leader→anchor vector
	VariantThresholdFlee                 // chases far, retreats near
)

func (v Variant) String() string {
	switch v {
	case VariantDirect:
		return "direct"
	case VariantAmbush:
		return "ambush"
	case VariantLeaderRelative:
		return "leader-relative"
	case VariantThresholdFlee:
		return "threshold-flee"
	default:
		return "unknown"
	}
}

// TargetInput is the world state a targeting function may read. Targeting is
// pure: same input, same tile out.
type TargetInput struct {
	PlayerTile   Tile
	PlayerFacing Direction
	SelfTile     Tile
	HomeCorner   Tile
	LeaderTile   Tile
	HasLeader    bool
}

// TargetFunc computes a pursuit target tile. The result may lie outside the
// maze; junction steering only compares distances to it, never walks it.
type TargetFunc func(TargetInput) Tile

// targetFuncs dispatches by variant. One agent record plus this table stands
// in for a per-variant type hierarchy.
var targetFuncs = [...]TargetFunc{
	VariantDirect:         targetDirect,
	VariantAmbush:         targetAmbush,
	VariantLeaderRelative: targetLeaderRelative,
	VariantThresholdFlee:  targetThresholdFlee,
}

func targetDirect(in TargetInput) Tile {
	return in.PlayerTile
}

// aheadOfPlayer projects n tiles along the player's facing. A stopped player
// counts as facing left. When the player faces up, the column additionally
// shifts n tiles negative. That is the classic overflow artifact and the
// targeting behaviour depends on it, so it stays.
func aheadOfPlayer(in TargetInput, n int) Tile {
	f := in.PlayerFacing
	if f == DirNone {
		f = DirLeft
	}
	t := in.PlayerTile.Offset(f, n)
	if f == DirUp {
		t.Col -= n
	}
	return t
}

func targetAmbush(in TargetInput) Tile {
	return aheadOfPlayer(in, 4)
}

func targetLeaderRelative(in TargetInput) Tile {
	anchor := aheadOfPlayer(in, 2)
	if !in.HasLeader {
		return anchor
	}
	return Tile{
		Col: in.LeaderTile.Col + 2*(anchor.Col-in.LeaderTile.Col),
		Row: in.LeaderTile.Row + 2*(anchor.Row-in.LeaderTile.Row),
	}
}

func targetThresholdFlee(in TargetInput) Tile {
	if tileDist(in.SelfTile, in.PlayerTile) > fleeTileRadius {
		return in.PlayerTile
	}
	return in.HomeCorner
}
