package game

import "fmt"

// TileSize is the width/height of one maze cell in world units.
const TileSize = 8.0

// CellKind identifies the static content of a maze cell.
type CellKind uint8

const (
	CellWall        CellKind = iota // solid maze wall
	CellOpen                        // walkable corridor, no collectible slot
	CellPellet                      // walkable, seeds a pellet
	CellEnergizer                   // walkable, seeds an energizer
	CellDenWall                     // pursuer den boundary
	CellDenDoor                     // den doorway: impassable to normal movement
	CellDenInterior                 // inside the den
	CellTunnel                      // wrap cell at the maze's horizontal edge
	cellKindCount                   // sentinel
)

// cellWalkable returns true if normal (non-den) movement may enter the cell.
// Den door and interior are excluded: agents inside the den follow scripted
// den paths rather than grid navigation.
func cellWalkable(k CellKind) bool {
	switch k {
	case CellOpen, CellPellet, CellEnergizer, CellTunnel:
		return true
	default:
		return false
	}
}

// Tile is an integer maze coordinate.
type Tile struct {
	Col int
	Row int
}

// Center returns the world-space centre of the tile.
func (t Tile) Center() (x, y float64) {
	return float64(t.Col)*TileSize + TileSize/2, float64(t.Row)*TileSize + TileSize/2
}

// Offset returns the tile shifted n steps in direction d.
func (t Tile) Offset(d Direction, n int) Tile {
	dc, dr := d.Delta()
	return Tile{Col: t.Col + dc*n, Row: t.Row + dr*n}
}

// TileAt returns the tile containing world position (x, y).
func TileAt(x, y float64) Tile {
	return Tile{Col: int(x / TileSize), Row: int(y / TileSize)}
}

// Grid is the immutable maze description. All mutation of collectible state
// lives in PelletOverlay; the Grid itself never changes after parse.
type Grid struct {
	Cols int
	Rows int

	cells     []CellKind // row-major: index = row*Cols + col
	tunnelRow int        // row containing the wrap cells, -1 if none

	PlayerSpawn Tile   // marked 'P' in the layout
	DoorTiles   []Tile // den door cells, left to right
	DenExit     Tile   // tile directly above the left door cell
	RestTiles   []Tile // den interior rest spots, left to right
}

// layout character → cell kind. Unknown characters fail the parse.
var layoutCells = map[byte]CellKind{
	'#': CellWall,
	' ': CellOpen,
	'.': CellPellet,
	'o': CellEnergizer,
	'=': CellDenWall,
	'-': CellDenDoor,
	'h': CellDenInterior,
	'H': CellDenInterior, // rest spot
	'T': CellTunnel,
	'P': CellOpen, // player spawn
}

// NewGrid parses an ASCII maze layout. Every row must have equal width and
// tunnel cells must come in a left/right pair on a single row.
func NewGrid(layout []string) (*Grid, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("grid: empty layout")
	}
	cols := len(layout[0])
	rows := len(layout)
	g := &Grid{
		Cols:      cols,
		Rows:      rows,
		cells:     make([]CellKind, cols*rows),
		tunnelRow: -1,
	}
	playerSeen := false
	for row, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("grid: row %d is %d chars, want %d", row, len(line), cols)
		}
		for col := 0; col < cols; col++ {
			ch := line[col]
			kind, ok := layoutCells[ch]
			if !ok {
				return nil, fmt.Errorf("grid: unknown layout char %q at (%d,%d)", ch, col, row)
			}
			g.cells[row*cols+col] = kind
			switch ch {
			case 'T':
				if g.tunnelRow != -1 && g.tunnelRow != row {
					return nil, fmt.Errorf("grid: tunnel cells on multiple rows (%d and %d)", g.tunnelRow, row)
				}
				g.tunnelRow = row
			case 'P':
				if playerSeen {
					return nil, fmt.Errorf("grid: multiple player spawns")
				}
				g.PlayerSpawn = Tile{col, row}
				playerSeen = true
			case '-':
				g.DoorTiles = append(g.DoorTiles, Tile{col, row})
			case 'H':
				g.RestTiles = append(g.RestTiles, Tile{col, row})
			}
		}
	}
	if !playerSeen {
		return nil, fmt.Errorf("grid: no player spawn marker")
	}
	if len(g.DoorTiles) == 0 {
		return nil, fmt.Errorf("grid: no den door")
	}
	if len(g.RestTiles) == 0 {
		return nil, fmt.Errorf("grid: no den rest tiles")
	}
	if g.tunnelRow != -1 {
		left := g.cells[g.tunnelRow*cols+0] == CellTunnel
		right := g.cells[g.tunnelRow*cols+cols-1] == CellTunnel
		if !left || !right {
			return nil, fmt.Errorf("grid: tunnel row %d must have wrap cells at both edges", g.tunnelRow)
		}
	}
	g.DenExit = Tile{g.DoorTiles[0].Col, g.DoorTiles[0].Row - 1}
	return g, nil
}

// WrapCol folds an out-of-range column back into [0, Cols). Used for any
// tile-column query on the tunnel row.
func (g *Grid) WrapCol(col int) int {
	for col < 0 {
		col += g.Cols
	}
	for col >= g.Cols {
		col -= g.Cols
	}
	return col
}

// CellAt returns the cell kind at (col, row). Out-of-range columns wrap on
// the tunnel row; every other out-of-range query is a wall.
func (g *Grid) CellAt(col, row int) CellKind {
	if row < 0 || row >= g.Rows {
		return CellWall
	}
	if col < 0 || col >= g.Cols {
		if row == g.tunnelRow {
			col = g.WrapCol(col)
		} else {
			return CellWall
		}
	}
	return g.cells[row*g.Cols+col]
}

// IsWalkable reports whether normal movement may enter (col, row).
func (g *Grid) IsWalkable(col, row int) bool {
	return cellWalkable(g.CellAt(col, row))
}

// IsTunnel reports whether (col, row) is a tunnel wrap cell.
func (g *Grid) IsTunnel(col, row int) bool {
	return g.CellAt(col, row) == CellTunnel
}

// TunnelRow returns the wrap row, or -1 if the maze has no tunnel.
func (g *Grid) TunnelRow() int {
	return g.tunnelRow
}

// IsDenInterior reports whether (col, row) is inside the den.
func (g *Grid) IsDenInterior(col, row int) bool {
	return g.CellAt(col, row) == CellDenInterior
}

// AvailableDirections returns the legal movement directions out of (col,
// row), in steering order, excluding the given direction (normally the
// reverse of the agent's facing). Pass DirNone to exclude nothing.
func (g *Grid) AvailableDirections(col, row int, exclude Direction) []Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range steerOrder {
		if d == exclude {
			continue
		}
		dc, dr := d.Delta()
		if g.IsWalkable(col+dc, row+dr) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// PelletSlots returns every tile that seeds a pellet or energizer, row-major.
func (g *Grid) PelletSlots() []Tile {
	var slots []Tile
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			k := g.cells[row*g.Cols+col]
			if k == CellPellet || k == CellEnergizer {
				slots = append(slots, Tile{col, row})
			}
		}
	}
	return slots
}

// PelletOverlay is the mutable collected/uncollected state layered over the
// grid's collectible slots. Cells only transition uncollected → collected;
// Reseed restores the full set.
type PelletOverlay struct {
	grid      *Grid
	present   []bool // row-major, true = still uncollected
	remaining int
	seeded    int // full count after a reseed
}

// NewPelletOverlay seeds the overlay from the grid's collectible cells.
func NewPelletOverlay(g *Grid) *PelletOverlay {
	p := &PelletOverlay{grid: g, present: make([]bool, g.Cols*g.Rows)}
	p.Reseed()
	return p
}

// Reseed restores every collectible slot to uncollected.
func (p *PelletOverlay) Reseed() {
	count := 0
	for row := 0; row < p.grid.Rows; row++ {
		for col := 0; col < p.grid.Cols; col++ {
			k := p.grid.cells[row*p.grid.Cols+col]
			has := k == CellPellet || k == CellEnergizer
			p.present[row*p.grid.Cols+col] = has
			if has {
				count++
			}
		}
	}
	p.remaining = count
	p.seeded = count
}

// HasPellet reports whether (col, row) still holds an uncollected slot of
// either size.
func (p *PelletOverlay) HasPellet(col, row int) bool {
	if row < 0 || row >= p.grid.Rows {
		return false
	}
	if col < 0 || col >= p.grid.Cols {
		if row != p.grid.tunnelRow {
			return false
		}
		col = p.grid.WrapCol(col)
	}
	return p.present[row*p.grid.Cols+col]
}

// Eat collects the slot at (col, row) if present. It returns whether
// anything was eaten and whether the slot was an energizer.
func (p *PelletOverlay) Eat(col, row int) (ate, energizer bool) {
	if !p.HasPellet(col, row) {
		return false, false
	}
	col = p.grid.WrapCol(col)
	p.present[row*p.grid.Cols+col] = false
	p.remaining--
	return true, p.grid.CellAt(col, row) == CellEnergizer
}

// Remaining returns the count of uncollected slots.
func (p *PelletOverlay) Remaining() int {
	return p.remaining
}

// Seeded returns the full slot count as of the last reseed.
func (p *PelletOverlay) Seeded() int {
	return p.seeded
}
