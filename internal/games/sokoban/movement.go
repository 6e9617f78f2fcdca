package sokoban

// Direction is a movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the four movement directions.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// MoveKind classifies the outcome of a move request.
type MoveKind int

const (
	MoveRejected MoveKind = iota // wall, level edge or blocked push
	MoveWalked                   // player moved onto a free cell
	MovePushed                   // player moved and displaced one block
)

// String returns a human-readable name for the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveRejected:
		return "Rejected"
	case MoveWalked:
		return "Walked"
	case MovePushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// MoveResult is the state delta computed by Resolve. A rejected result carries
// no delta and applying it changes nothing.
type MoveResult struct {
	Kind MoveKind
	Dir  Direction

	From Position // player before
	To   Position // player after

	Block       int      // index of the pushed block, -1 if none
	BlockFrom   Position // pushed block before
	BlockTo     Position // pushed block after
	TargetDelta int      // change to blocks-on-target: -1, 0 or +1
}

// Moved reports whether the player changed position.
func (r MoveResult) Moved() bool {
	return r.Kind != MoveRejected
}

// Pushed reports whether a block was displaced.
func (r MoveResult) Pushed() bool {
	return r.Kind == MovePushed
}

// pushChainLimit is how many cells a move may examine: the cell the player
// steps into and, if it holds a block, the one cell behind it. Only one block
// can ever be displaced.
const pushChainLimit = 2

// blocked reports whether terrain stops anything from entering p.
// Cells outside the parsed level count as walls, so no probe leaves the grid.
func (g *Grid) blocked(p Position) bool {
	return !g.InLevel(p) || g.TileAt(p) == TileWall
}

// Resolve decides what a move in direction d would do. It never mutates g.
func Resolve(g *Grid, d Direction) MoveResult {
	from := g.player
	res := MoveResult{Kind: MoveRejected, Dir: d, From: from, To: from, Block: -1}
	if d == DirNone {
		return res
	}

	probe := from
	pushed := -1
	for depth := 0; depth < pushChainLimit; depth++ {
		probe = probe.Step(d)
		if g.blocked(probe) {
			return res
		}

		idx, occupied := g.BlockAt(probe)
		if !occupied {
			res.To = from.Step(d)
			if pushed < 0 {
				res.Kind = MoveWalked
				return res
			}
			res.Kind = MovePushed
			res.Block = pushed
			res.BlockFrom = res.To
			res.BlockTo = probe
			res.TargetDelta = targetDelta(g, res.BlockFrom, res.BlockTo)
			return res
		}

		// A block directly behind the pushed one: chains never move.
		if pushed >= 0 {
			return res
		}
		pushed = idx
	}
	return res
}

// Apply commits a resolved move. Player position, block position and the
// target count change together; a rejected result is a no-op.
func (g *Grid) Apply(r MoveResult) {
	if !r.Moved() {
		return
	}
	if r.Pushed() {
		g.blocks[r.Block].Pos = r.BlockTo
		g.blocksOnTarget += r.TargetDelta
	}
	g.player = r.To
}

// Move resolves and applies a move in direction d.
func Move(g *Grid, d Direction) MoveResult {
	r := Resolve(g, d)
	g.Apply(r)
	return r
}
