package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
)

// ErrInvalidMonster indicates a monster whose stats make its attack impossible.
var ErrInvalidMonster = errors.New("invalid monster")

// Monster is a hostile creature, created fresh for each encounter.
type Monster struct {
	Def         *gamedata.MonsterDef // Template this monster was spawned from (nil for ad-hoc monsters)
	Name        string
	Health      int
	AttackPower int    // Upper bound of the damage roll
	Ability     string // Cosmetic; never invoked

	rng dice.Source
}

// NewMonster creates a monster with the given stats.
func NewMonster(name string, health, attackPower int, ability string, rng dice.Source) *Monster {
	return &Monster{
		Name:        name,
		Health:      health,
		AttackPower: attackPower,
		Ability:     ability,
		rng:         rng,
	}
}

// NewMonsterFromDef spawns a full-health monster from a template, named in lang.
func NewMonsterFromDef(def *gamedata.MonsterDef, lang string, rng dice.Source) *Monster {
	m := NewMonster(def.Names.For(lang), def.HP, def.Attack, def.Ability.For(lang), rng)
	m.Def = def
	return m
}

// Attack hits target for a uniform roll in [1, AttackPower].
// An AttackPower below 1 leaves no valid roll and is reported as an error.
func (m *Monster) Attack(target combat.Combatant) (int, error) {
	damage, err := m.rng.Between(1, m.AttackPower)
	if err != nil {
		return 0, fmt.Errorf("%s with attack power %d: %w: %w", m.Name, m.AttackPower, ErrInvalidMonster, err)
	}
	target.TakeDamage(damage)
	return damage, nil
}

// GetName returns the monster's name.
func (m *Monster) GetName() string { return m.Name }

// GetHP returns current health.
func (m *Monster) GetHP() int { return m.Health }

// IsAlive returns true if the monster has health remaining.
func (m *Monster) IsAlive() bool { return m.Health > 0 }

// TakeDamage subtracts amount from health and returns what is left.
func (m *Monster) TakeDamage(amount int) int {
	m.Health -= amount
	return m.Health
}

// Ensure Monster implements combat.Foe
var _ combat.Foe = (*Monster)(nil)
