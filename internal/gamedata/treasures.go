package gamedata

import "fmt"

// TreasureDef defines a treasure template loaded from JSON.
type TreasureDef struct {
	ID    string `json:"id"`
	Names Names  `json:"names"`
	Value int    `json:"value"` // Points awarded when collected
}

// TemplateID returns the treasure's identifier.
func (t TreasureDef) TemplateID() string { return t.ID }

// Validate checks the template.
func (t TreasureDef) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("treasure without id: %w", ErrInvalidTemplate)
	case t.Names.For(DefaultLang) == "":
		return fmt.Errorf("treasure %s has no %s name: %w", t.ID, DefaultLang, ErrInvalidTemplate)
	case t.Value < 0:
		return fmt.Errorf("treasure %s has value %d: %w", t.ID, t.Value, ErrInvalidTemplate)
	}
	return nil
}

// TreasuresFile represents the structure of treasures.json.
type TreasuresFile struct {
	Treasures []TreasureDef `json:"treasures"`
}

// LoadTreasures loads treasure templates from the embedded treasures.json file.
func LoadTreasures() ([]TreasureDef, error) {
	file, err := Load[TreasuresFile]("treasures.json")
	if err != nil {
		return nil, err
	}
	return file.Treasures, nil
}

// RoomDef defines a room label loaded from JSON. Rooms carry no state.
type RoomDef struct {
	ID    string `json:"id"`
	Names Names  `json:"names"`
}

// TemplateID returns the room's identifier.
func (r RoomDef) TemplateID() string { return r.ID }

// Validate checks the template.
func (r RoomDef) Validate() error {
	if r.ID == "" || r.Names.For(DefaultLang) == "" {
		return fmt.Errorf("room %q needs an id and a %s name: %w", r.ID, DefaultLang, ErrInvalidTemplate)
	}
	return nil
}

// RoomsFile represents the structure of rooms.json.
type RoomsFile struct {
	Rooms []RoomDef `json:"rooms"`
}

// LoadRooms loads room labels from the embedded rooms.json file.
func LoadRooms() ([]RoomDef, error) {
	file, err := Load[RoomsFile]("rooms.json")
	if err != nil {
		return nil, err
	}
	return file.Rooms, nil
}
