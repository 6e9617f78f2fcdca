package sokoban

import (
	"embed"
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

//go:embed packs/*.txt
var packFS embed.FS

// DefaultPack is the pack played when none is selected.
const DefaultPack = "classic"

// embeddedPack serves a level file compiled into the binary.
type embeddedPack string

func (p embeddedPack) ReadLevels() (string, error) {
	data, err := packFS.ReadFile("packs/" + string(p) + ".txt")
	if err != nil {
		return "", fmt.Errorf("sokoban: reading pack %s: %w", string(p), err)
	}
	return string(data), nil
}

func init() {
	registry.Register("classic", "Classic", embeddedPack("classic"))
	registry.Register("tutorial", "Tutorial", embeddedPack("tutorial"))
}
