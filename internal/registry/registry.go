// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the CLI and the
// servers to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Source provides the raw text of a level pack.
// It has the same shape as sokoban.LevelSource, so any pack can be loaded
// directly by the game package.
type Source interface {
	ReadLevels() (string, error)
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID    string
	Title string
}

type entry struct {
	title string
	src   Source
}

var (
	packs = make(map[string]entry)
	mu    sync.RWMutex
)

// Register adds a level pack to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id, title string, src Source) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := packs[id]; exists {
		panic(fmt.Sprintf("registry: pack %q already registered", id))
	}
	if src == nil {
		panic(fmt.Sprintf("registry: pack %q has no source", id))
	}

	packs[id] = entry{title: title, src: src}
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(packs))
	for id, e := range packs {
		result = append(result, PackInfo{
			ID:    id,
			Title: e.title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open returns the source of a pack by its ID.
// Returns an error if the pack ID is not registered.
func Open(id string) (Source, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := packs[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pack %q", id)
	}

	return e.src, nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := packs[id]
	return ok
}
