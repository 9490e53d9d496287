package game

import "fmt"

// EventKind identifies a discrete per-tick domain event. Events exist for
// external collaborators (rendering, audio, particles, persistence); the
// core never reads them back.
type EventKind uint8

const (
	EventPelletEaten EventKind = iota
	EventEnergizerEaten
	EventPursuerEaten
	EventPlayerCaught
	EventLevelComplete
	EventGameOver
	EventExtraLife
)

func (k EventKind) String() string {
	switch k {
	case EventPelletEaten:
		return "pellet_eaten"
	case EventEnergizerEaten:
		return "energizer_eaten"
	case EventPursuerEaten:
		return "pursuer_eaten"
	case EventPlayerCaught:
		return "player_caught"
	case EventLevelComplete:
		return "level_complete"
	case EventGameOver:
		return "game_over"
	case EventExtraLife:
		return "extra_life"
	default:
		return "unknown"
	}
}

// Event is one entry of the tick's ordered event list. The list is cleared
// at the start of every tick and must not be retained across ticks.
type Event struct {
	Kind    EventKind
	Tile    Tile // where it happened (pellet/energizer/pursuer events)
	Points  int  // points awarded, 0 if none
	Pursuer int  // pursuer slot for pursuer_eaten / player_caught, else -1
}

func (e Event) String() string {
	switch e.Kind {
	case EventPursuerEaten, EventPlayerCaught:
		return fmt.Sprintf("%s slot=%d pts=%d", e.Kind, e.Pursuer, e.Points)
	case EventPelletEaten, EventEnergizerEaten:
		return fmt.Sprintf("%s (%d,%d) pts=%d", e.Kind, e.Tile.Col, e.Tile.Row, e.Points)
	default:
		return e.Kind.String()
	}
}
