package game

// defaultMaze is the built-in 28x31 board. Legend: '#' wall, '.' pellet,
// 'o' energizer, ' ' open corridor, '=' den wall, '-' den door, 'h' den
// interior, 'H' den rest spot, 'T' tunnel wrap cell, 'P' player spawn.
var defaultMaze = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ===--=== ##.######",
	"######.## =hhhhhh= ##.######",
	"T      .  =hHhHhH=   .     T",
	"######.## =hhhhhh= ##.######",
	"######.## ======== ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// defaultGrid parses the built-in board. The layout is a compile-time
// constant, so a parse failure is a programming error.
func defaultGrid() *Grid {
	g, err := NewGrid(defaultMaze)
	if err != nil {
		panic("game: built-in maze is malformed: " + err.Error())
	}
	return g
}

// LevelConfig is the per-level tuning artifact consumed by the core.
type LevelConfig struct {
	// Pellets the player must eat (this life) before each pursuer may leave
	// the den, indexed by pursuer slot. Slot 0 starts outside and slot 1 is
	// released by the post-ready one-shot, so only slots 2 and 3 matter.
	DenExitThresholds [pursuerCount]int

	EvasionTicks int // energizer mode duration; 0 = points only, no mode effect

	// Speed multipliers applied to the base unit-per-tick speeds.
	PlayerSpeedMul  float64
	PursuerSpeedMul float64
}

// levelTable holds the tuning for levels 1..len(levelTable). Requests past
// the end clamp to the last entry.
var levelTable = []LevelConfig{
	{ // level 1
		DenExitThresholds: [pursuerCount]int{0, 0, 30, 90},
		EvasionTicks:      360,
		PlayerSpeedMul:    1.0,
		PursuerSpeedMul:   1.0,
	},
	{ // level 2
		DenExitThresholds: [pursuerCount]int{0, 0, 20, 60},
		EvasionTicks:      300,
		PlayerSpeedMul:    1.05,
		PursuerSpeedMul:   1.05,
	},
	{ // level 3
		DenExitThresholds: [pursuerCount]int{0, 0, 10, 40},
		EvasionTicks:      240,
		PlayerSpeedMul:    1.08,
		PursuerSpeedMul:   1.10,
	},
	{ // level 4
		DenExitThresholds: [pursuerCount]int{0, 0, 5, 20},
		EvasionTicks:      120,
		PlayerSpeedMul:    1.10,
		PursuerSpeedMul:   1.15,
	},
	{ // level 5+
		DenExitThresholds: [pursuerCount]int{0, 0, 0, 10},
		EvasionTicks:      0, // energizers still score but no longer frighten
		PlayerSpeedMul:    1.10,
		PursuerSpeedMul:   1.20,
	},
}

// ConfigForLevel returns the tuning for a 1-indexed level, clamping
// out-of-range requests to the nearest defined entry.
func ConfigForLevel(level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	if level > len(levelTable) {
		level = len(levelTable)
	}
	return levelTable[level-1]
}
