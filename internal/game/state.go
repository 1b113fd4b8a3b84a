// Package game provides the dungeon controller: the outer exploration loop.
package game

// State represents where the game stands.
type State int

const (
	// StateExploring is the normal loop of entering rooms.
	StateExploring State = iota
	// StateDefeat means the player's health reached zero.
	StateDefeat
	// StateVictory means no room was left to explore.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExploring:
		return "exploring"
	case StateDefeat:
		return "defeat"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}
