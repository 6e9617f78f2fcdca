package sokoban

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Level      int // 0-based level id
	LevelCount int

	Width  int
	Height int
	Tiles  [][]Tile // Height rows of Width tiles

	Player Position
	Blocks []Position

	BlocksOnTarget int
	Moves          int
	Pushes         int
	Solved         bool
	Complete       bool // last level solved
}

// Snapshot captures the state of the active level.
func (s *Session) Snapshot() Snapshot {
	g := s.grid

	tiles := make([][]Tile, g.height)
	for y := range tiles {
		tiles[y] = make([]Tile, g.width)
		copy(tiles[y], g.tiles[y][:g.width])
	}

	blocks := make([]Position, len(g.blocks))
	for i, b := range g.blocks {
		blocks[i] = b.Pos
	}

	return Snapshot{
		Level:          g.id,
		LevelCount:     len(s.levels),
		Width:          g.width,
		Height:         g.height,
		Tiles:          tiles,
		Player:         g.player,
		Blocks:         blocks,
		BlocksOnTarget: g.blocksOnTarget,
		Moves:          s.moves,
		Pushes:         s.pushes,
		Solved:         g.Solved(),
		Complete:       s.complete,
	}
}

// TileAt returns the terrain at p, or Space outside the captured region.
func (sn Snapshot) TileAt(p Position) Tile {
	if p.Y < 0 || p.Y >= len(sn.Tiles) || p.X < 0 || p.X >= len(sn.Tiles[p.Y]) {
		return TileSpace
	}
	return sn.Tiles[p.Y][p.X]
}

// HasBlock reports whether a block occupies p.
func (sn Snapshot) HasBlock(p Position) bool {
	for _, b := range sn.Blocks {
		if b == p {
			return true
		}
	}
	return false
}
