package sokoban

// targetDelta is the change in blocks-on-target when a block slides from one
// cell to another: +1 onto a target, -1 off a target, 0 otherwise.
// It is evaluated once per push and never for plain walks.
func targetDelta(g *Grid, from, to Position) int {
	was := g.TileAt(from) == TileTarget
	is := g.TileAt(to) == TileTarget
	switch {
	case !was && is:
		return 1
	case was && !is:
		return -1
	default:
		return 0
	}
}
