// Package registry maps game IDs to factories. Board variants register
// themselves from init(), so the CLI and SSH front end can list and create
// them without importing each one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/L0weN/ArmorCrush/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a game and the terminal platform.
// Games never import Bubble Tea: the platform maps keys and mouse events
// to core.InputFrame, drives Step at a fixed tick rate and displays
// whatever Render draws.
type Game interface {
	// ID returns the variant identifier used on the command line.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset builds a fresh board for cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the input collected since the last tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which has been cleared.
	Render(dst *core.Screen)

	// State returns the current status.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a factory under id. It panics if id is taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title(), Description: description},
		factory: f,
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata registered under id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
