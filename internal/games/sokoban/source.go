package sokoban

import (
	"fmt"
	"os"
	"path/filepath"
)

// LevelSource provides raw level text.
type LevelSource interface {
	ReadLevels() (string, error)
}

// FileSource reads levels from a file on disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a source for the given path. A leading "~" is expanded
// to the user's home directory when the file is read.
func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

// Resolve returns the absolute path of the file with "~" expanded.
func (s FileSource) Resolve() (string, error) {
	path := s.Path
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("sokoban: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// ReadLevels reads the whole file.
func (s FileSource) ReadLevels() (string, error) {
	path, err := s.Resolve()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("sokoban: reading levels %s: %w", path, err)
	}
	return string(data), nil
}

// StringSource serves level text held in memory.
type StringSource string

// ReadLevels returns the text itself.
func (s StringSource) ReadLevels() (string, error) {
	return string(s), nil
}

// LoadLevels reads and parses all levels from src.
func LoadLevels(src LevelSource) ([]*Grid, error) {
	text, err := src.ReadLevels()
	if err != nil {
		return nil, err
	}
	return ParseLevels(text)
}

// CloneLevels returns deep copies of the given grids, so several sessions can
// play the same level set independently.
func CloneLevels(levels []*Grid) []*Grid {
	out := make([]*Grid, len(levels))
	for i, g := range levels {
		out[i] = g.Clone()
	}
	return out
}
