// Package combat provides the turn-based encounter loop for the dungeon.
package combat

// Combatant is the interface for anything that can take part in an encounter.
type Combatant interface {
	GetName() string
	GetHP() int
	IsAlive() bool

	// TakeDamage subtracts amount from health and returns the health left.
	// Negative amounts heal.
	TakeDamage(amount int) int
}

// Hero is the player's side of an encounter.
type Hero interface {
	Combatant

	// Attack strikes target and returns the damage dealt.
	Attack(target Combatant) (int, error)
	// Heal restores health. ok is false when no heals are left.
	Heal() (amount int, ok bool, err error)
	// CastMagic damages target with a spell. ok is false when the magic
	// pool is too low.
	CastMagic(target Combatant) (damage int, ok bool, err error)
	// HealsLeft returns the number of heals remaining.
	HealsLeft() int
}

// Foe is the monster's side of an encounter.
type Foe interface {
	Combatant

	// Attack strikes target and returns the damage dealt.
	Attack(target Combatant) (int, error)
}
