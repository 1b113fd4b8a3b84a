package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Russian

	message.SetString(lang, "game.welcome", "Добро пожаловать в Подземелье Искателя!")
	message.SetString(lang, "game.defeat", "Игра окончена! Вы были побеждены.")
	message.SetString(lang, "game.victory", "Поздравляем! Вы успешно исследовали подземелье.")

	message.SetString(lang, "room.entered", "Вы вошли в %s.")
	message.SetString(lang, "room.moving", "Переход в следующую комнату...")

	message.SetString(lang, "combat.prompt", "Вы хотите (а)таковать, (б)ежать, (л)ечиться или (м)агия? ")
	message.SetString(lang, "combat.appeared", "Дикий %s появляется!")
	message.SetString(lang, "combat.player_hit", "Вы нанесли %d урона %s. (Здоровье монстра: %d)")
	message.SetString(lang, "combat.monster_hit", "%s нанёс %d урона вам. (Ваше здоровье: %d)")
	message.SetString(lang, "combat.healed", "Вы исцелились на %d здоровья. Осталось %d лечений.")
	message.SetString(lang, "combat.heals_exhausted", "Вы исчерпали все лечащие действия.")
	message.SetString(lang, "combat.magic_cast", "Вы использовали магию! %s получил %d урона от магического удара. (Здоровье монстра: %d)")
	message.SetString(lang, "combat.magic_depleted", "Недостаточно магической энергии для заклинания!")
	message.SetString(lang, "combat.fled", "Вы убежали!")
	message.SetString(lang, "combat.monster_defeated", "%s повержен!")

	message.SetString(lang, "treasure.found", "Вы нашли %s, стоимостью %d очков!")
	message.SetString(lang, "treasure.total", "Теперь у вас: %d общих очков сокровищ.")
	message.SetString(lang, "player.level_up", "Вы достигли уровня %d! Ваша атака и магия увеличены.")

	message.SetString(lang, "status.bar", "ОЗ %d  УР %d  АТК %d  МП %d  Лечения %d  Сокровища %d")
}
