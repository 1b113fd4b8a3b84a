// Package world provides the dungeon's room pool.
package world

import "github.com/samdwyer/dungeonseeker/internal/gamedata"

// Room is a labelled place in the dungeon. Rooms hold no state and may be
// visited any number of times.
type Room struct {
	ID   string
	Name string
}

// RoomsFromDefs creates rooms from their templates, named in lang.
func RoomsFromDefs(defs []gamedata.RoomDef, lang string) []Room {
	rooms := make([]Room, len(defs))
	for i, def := range defs {
		rooms[i] = Room{ID: def.ID, Name: def.Names.For(lang)}
	}
	return rooms
}
