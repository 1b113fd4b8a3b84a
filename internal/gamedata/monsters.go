package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MonsterDef defines a monster template loaded from JSON.
type MonsterDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "goblin")
	Names   Names  `json:"names"`   // Display names by language
	Ability Names  `json:"ability"` // Special ability label; cosmetic only
	Glyph   string `json:"glyph"`   // Single character for the screen front end
	Color   string `json:"color"`   // Hex color code (e.g., "#00FF00")
	HP      int    `json:"hp"`      // Starting health of every spawned instance
	Attack  int    `json:"attack"`  // Upper bound of the monster's damage roll
}

// TemplateID returns the monster's identifier.
func (m MonsterDef) TemplateID() string { return m.ID }

// Validate checks the template. A monster rolls damage in [1, Attack], so an
// attack below 1 would make that range empty.
func (m MonsterDef) Validate() error {
	switch {
	case m.ID == "":
		return fmt.Errorf("monster without id: %w", ErrInvalidTemplate)
	case m.Names.For(DefaultLang) == "":
		return fmt.Errorf("monster %s has no %s name: %w", m.ID, DefaultLang, ErrInvalidTemplate)
	case m.HP < 1:
		return fmt.Errorf("monster %s has hp %d: %w", m.ID, m.HP, ErrInvalidTemplate)
	case m.Attack < 1:
		return fmt.Errorf("monster %s has attack %d: %w", m.ID, m.Attack, ErrInvalidTemplate)
	}
	return nil
}

// GlyphRune returns the glyph as a rune for rendering.
func (m MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return []rune(m.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (m MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster templates from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
