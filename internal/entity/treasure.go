package entity

import "github.com/samdwyer/dungeonseeker/internal/gamedata"

// Treasure is a collected valuable. It is a value type and never changes.
type Treasure struct {
	Name  string
	Value int
}

// NewTreasureFromDef creates a treasure from a template, named in lang.
func NewTreasureFromDef(def *gamedata.TreasureDef, lang string) Treasure {
	return Treasure{
		Name:  def.Names.For(lang),
		Value: def.Value,
	}
}
