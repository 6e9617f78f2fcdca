// Package sokoban implements the block-pushing puzzle: the tile grid, push
// resolution, target bookkeeping, level parsing and the play session.
// Like the other packages under games/, it knows nothing about terminals;
// backends talk to it through Renderer and InputSource.
package sokoban

import "fmt"

// MaxDim is the side length of every grid. Levels larger than this are
// rejected at load time.
const MaxDim = 30

// Tile is the static terrain of a cell. Blocks are not tiles; whether a block
// occupies a cell is answered by Grid.BlockAt.
type Tile uint8

const (
	TileSpace Tile = iota
	TileWall
	TileTarget
)

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case TileSpace:
		return "Space"
	case TileWall:
		return "Wall"
	case TileTarget:
		return "Target"
	default:
		return "Unknown"
	}
}

// Position is a zero-based cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X int
	Y int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Block is a movable block. Blocks never overlap, so the position is its identity.
type Block struct {
	Pos Position
}

// Grid is one level: terrain, the player, the blocks and the number of blocks
// currently resting on target tiles.
//
// The terrain is fixed after parsing. Only Apply mutates the player, the blocks
// and blocksOnTarget, and it always does so together.
type Grid struct {
	tiles          [MaxDim][MaxDim]Tile
	player         Position
	blocks         []Block
	blocksOnTarget int
	id             int

	// Populated extent of the parsed rows, used for drawing.
	width  int
	height int
}

// NewGrid creates an empty grid: all Space, player at the origin, no blocks.
func NewGrid(id int) *Grid {
	return &Grid{id: id}
}

// ID returns the level id (0-based position in the level file).
func (g *Grid) ID() int {
	return g.id
}

// Width returns the width of the populated region.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of populated rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < MaxDim && p.Y >= 0 && p.Y < MaxDim
}

// InLevel returns true if p lies inside the parsed rows and columns.
func (g *Grid) InLevel(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// TileAt returns the terrain at p.
// It panics if p is off the grid: callers only ever ask about cells one unit
// step away from a valid position, so an out-of-bounds query is a bug.
func (g *Grid) TileAt(p Position) Tile {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("sokoban: tile query out of bounds at %v", p))
	}
	return g.tiles[p.Y][p.X]
}

// BlockAt returns the index of the block occupying p, if any.
// Linear scan; levels hold a handful of blocks.
func (g *Grid) BlockAt(p Position) (int, bool) {
	for i, b := range g.blocks {
		if b.Pos == p {
			return i, true
		}
	}
	return -1, false
}

// Player returns the player position.
func (g *Grid) Player() Position {
	return g.player
}

// Blocks returns a copy of the blocks in load order.
func (g *Grid) Blocks() []Block {
	out := make([]Block, len(g.blocks))
	copy(out, g.blocks)
	return out
}

// BlockCount returns the number of movable blocks.
func (g *Grid) BlockCount() int {
	return len(g.blocks)
}

// BlocksOnTarget returns how many blocks rest on target tiles.
func (g *Grid) BlocksOnTarget() int {
	return g.blocksOnTarget
}

// Solved reports whether every block rests on a target.
// A level without blocks is never solved.
func (g *Grid) Solved() bool {
	return len(g.blocks) > 0 && g.blocksOnTarget == len(g.blocks)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.blocks = make([]Block, len(g.blocks))
	copy(c.blocks, g.blocks)
	return &c
}

// Equal returns true if both grids hold identical state, block order included.
func (g *Grid) Equal(other *Grid) bool {
	if g.id != other.id || g.player != other.player ||
		g.blocksOnTarget != other.blocksOnTarget ||
		g.width != other.width || g.height != other.height ||
		g.tiles != other.tiles || len(g.blocks) != len(other.blocks) {
		return false
	}
	for i := range g.blocks {
		if g.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

// setTile writes terrain during parsing.
func (g *Grid) setTile(p Position, t Tile) {
	g.tiles[p.Y][p.X] = t
}

// addBlock places a block during parsing, keeping the target count in step.
func (g *Grid) addBlock(p Position) {
	g.blocks = append(g.blocks, Block{Pos: p})
	if g.tiles[p.Y][p.X] == TileTarget {
		g.blocksOnTarget++
	}
}
