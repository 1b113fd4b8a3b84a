package gamedata

import (
	"fmt"

	"github.com/samdwyer/dungeonseeker/internal/dice"
)

// Template is implemented by every definition kept in a Registry.
type Template interface {
	TemplateID() string
	Validate() error
}

// Registry holds a fixed pool of validated templates and spawns from it uniformly.
type Registry[T Template] struct {
	defs []T
	byID map[string]int
}

// NewRegistry validates defs and builds a registry.
// An empty pool and duplicate identifiers are rejected.
func NewRegistry[T Template](kind string, defs []T) (*Registry[T], error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("no %s templates loaded: %w", kind, ErrInvalidTemplate)
	}

	r := &Registry[T]{
		defs: defs,
		byID: make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[def.TemplateID()]; dup {
			return nil, fmt.Errorf("duplicate %s id %q: %w", kind, def.TemplateID(), ErrInvalidTemplate)
		}
		r.byID[def.TemplateID()] = i
	}
	return r, nil
}

// Spawn selects a template uniformly at random.
func (r *Registry[T]) Spawn(src dice.Source) *T {
	return &r.defs[src.Pick(len(r.defs))]
}

// GetByID returns the template with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.defs[i]
}

// All returns all templates in file order.
func (r *Registry[T]) All() []T {
	return r.defs
}

// Count returns the number of templates in the registry.
func (r *Registry[T]) Count() int {
	return len(r.defs)
}

// Tables bundles the three fixed pools the dungeon draws from.
type Tables struct {
	Monsters  *Registry[MonsterDef]
	Treasures *Registry[TreasureDef]
	Rooms     []RoomDef
}

// LoadTables loads and validates every embedded table.
func LoadTables() (*Tables, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	monsterReg, err := NewRegistry("monster", monsters)
	if err != nil {
		return nil, err
	}

	treasures, err := LoadTreasures()
	if err != nil {
		return nil, err
	}
	treasureReg, err := NewRegistry("treasure", treasures)
	if err != nil {
		return nil, err
	}

	rooms, err := LoadRooms()
	if err != nil {
		return nil, err
	}
	roomReg, err := NewRegistry("room", rooms)
	if err != nil {
		return nil, err
	}

	return &Tables{
		Monsters:  monsterReg,
		Treasures: treasureReg,
		Rooms:     roomReg.All(),
	}, nil
}

// MustLoadTables loads the tables, panicking on error.
func MustLoadTables() *Tables {
	tables, err := LoadTables()
	if err != nil {
		panic(err)
	}
	return tables
}
