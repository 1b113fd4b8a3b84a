package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "game.welcome", "Welcome to the Seeker's Dungeon!")
	message.SetString(lang, "game.defeat", "Game over! You have been defeated.")
	message.SetString(lang, "game.victory", "Congratulations! You have explored the dungeon.")

	message.SetString(lang, "room.entered", "You enter %s.")
	message.SetString(lang, "room.moving", "Moving to the next room...")

	message.SetString(lang, "combat.prompt", "Do you want to (a)ttack, (f)lee, (h)eal or use (m)agic? ")
	message.SetString(lang, "combat.appeared", "A wild %s appears!")
	message.SetString(lang, "combat.player_hit", "You deal %d damage to %s. (Monster health: %d)")
	message.SetString(lang, "combat.monster_hit", "%s deals %d damage to you. (Your health: %d)")
	message.SetString(lang, "combat.healed", "You heal %d health. %d heals left.")
	message.SetString(lang, "combat.heals_exhausted", "You have used up all your heals.")
	message.SetString(lang, "combat.magic_cast", "You cast a spell! %s takes %d damage from the magic blast. (Monster health: %d)")
	message.SetString(lang, "combat.magic_depleted", "Not enough magic energy for a spell!")
	message.SetString(lang, "combat.fled", "You ran away!")
	message.SetString(lang, "combat.monster_defeated", "%s is defeated!")

	message.SetString(lang, "treasure.found", "You found %s, worth %d points!")
	message.SetString(lang, "treasure.total", "You now have %d treasure points in total.")
	message.SetString(lang, "player.level_up", "You reached level %d! Your attack and magic have increased.")

	message.SetString(lang, "status.bar", "HP %d  LVL %d  ATK %d  MP %d  Heals %d  Treasure %d")
}
