package sokoban

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoLevels is returned when level text contains no complete level.
	ErrNoLevels = errors.New("sokoban: no levels found")

	// ErrLevelTooLarge is returned when a level does not fit in MaxDim x MaxDim.
	ErrLevelTooLarge = errors.New("sokoban: level exceeds grid size")
)

// Level text grammar. A content row starts with a space or a wall and is at
// least two characters long; a divider is any row starting with '*' and closes
// the current level. Everything else is ignored. Both patterns are prefix
// matches, so trailing junk after a valid prefix is parsed permissively.
var (
	contentLine = regexp.MustCompile(`^[ X]+[ X*@.&]+`)
	dividerLine = regexp.MustCompile(`^\*+`)
)

// Level glyphs.
const (
	glyphWall   = 'X'
	glyphTarget = '.'
	glyphBlock  = '*'
	glyphPlayer = '@'
)

// ParseLevels splits level text into grids with ids 0..N-1 in file order.
// Rows after the last divider do not form a level.
func ParseLevels(text string) ([]*Grid, error) {
	var (
		levels []*Grid
		block  []string
	)

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case contentLine.MatchString(line):
			block = append(block, line)
		case dividerLine.MatchString(line):
			g, err := ParseLevel(len(levels), block)
			if err != nil {
				return nil, err
			}
			levels = append(levels, g)
			block = block[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sokoban: reading level text: %w", err)
	}

	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	return levels, nil
}

// ParseLevel builds one grid from its rows. Unknown characters become Space.
// If several '@' appear, the last one wins; with none the player starts at the
// origin.
func ParseLevel(id int, rows []string) (*Grid, error) {
	if len(rows) > MaxDim {
		return nil, fmt.Errorf("%w: level %d has %d rows (max %d)", ErrLevelTooLarge, id, len(rows), MaxDim)
	}

	g := NewGrid(id)
	g.height = len(rows)

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) > MaxDim {
			return nil, fmt.Errorf("%w: level %d row %d has %d columns (max %d)",
				ErrLevelTooLarge, id, y, len(runes), MaxDim)
		}
		if len(runes) > g.width {
			g.width = len(runes)
		}

		for x, r := range runes {
			p := Position{X: x, Y: y}
			switch r {
			case glyphWall:
				g.setTile(p, TileWall)
			case glyphTarget:
				g.setTile(p, TileTarget)
			case glyphBlock:
				g.setTile(p, TileSpace)
				g.addBlock(p)
			case glyphPlayer:
				g.setTile(p, TileSpace)
				g.player = p
			default:
				g.setTile(p, TileSpace)
			}
		}
	}

	return g, nil
}
