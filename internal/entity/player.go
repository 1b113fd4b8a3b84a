// Package entity provides the player, monsters and treasure.
package entity

import (
	"fmt"

	"github.com/samdwyer/dungeonseeker/internal/combat"
	"github.com/samdwyer/dungeonseeker/internal/dice"
)

// Starting stats and growth. Level-ups happen every TreasuresPerLevel finds.
const (
	StartHealth       = 100
	StartLevel        = 1
	StartAttack       = 10
	StartMagic        = 30
	StartHeals        = 3
	AttackSpread      = 5  // weapon damage is Attack ± AttackSpread
	AttackPerLevel    = 5
	MagicPerLevel     = 10
	SpellCost         = 10
	SpellMinDamage    = 15
	SpellMaxDamage    = 30
	HealMin           = 10
	HealMax           = 20
	TreasuresPerLevel = 3
)

// Player is the adventurer exploring the dungeon.
type Player struct {
	Name        string
	Health      int // May exceed StartHealth through healing
	Level       int
	AttackPower int // Centre of the weapon damage roll
	Magic       int // Spell pool; each cast costs SpellCost
	Armor       int // Carried but never used
	Heals       int // Heals remaining for the whole game
	Treasures   []Treasure

	rng dice.Source
}

// NewPlayer creates a player with starting stats, rolling with rng.
func NewPlayer(name string, rng dice.Source) *Player {
	return &Player{
		Name:        name,
		Health:      StartHealth,
		Level:       StartLevel,
		AttackPower: StartAttack,
		Magic:       StartMagic,
		Heals:       StartHeals,
		rng:         rng,
	}
}

// =============================================================================
// Combat actions
// =============================================================================

// Attack hits target for a uniform roll in [AttackPower-5, AttackPower+5].
// With AttackPower below 5 the roll can be negative and heal the target.
func (p *Player) Attack(target combat.Combatant) (int, error) {
	damage, err := p.rng.Between(p.AttackPower-AttackSpread, p.AttackPower+AttackSpread)
	if err != nil {
		return 0, fmt.Errorf("weapon roll: %w", err)
	}
	target.TakeDamage(damage)
	return damage, nil
}

// Heal restores a uniform [10, 20] health, uncapped, if any heals are left.
func (p *Player) Heal() (int, bool, error) {
	if p.Heals <= 0 {
		return 0, false, nil
	}
	amount, err := p.rng.Between(HealMin, HealMax)
	if err != nil {
		return 0, false, fmt.Errorf("heal roll: %w", err)
	}
	p.Health += amount
	p.Heals--
	return amount, true, nil
}

// CastMagic spends SpellCost magic to deal a uniform [15, 30] damage.
// Nothing happens when the pool is below SpellCost.
func (p *Player) CastMagic(target combat.Combatant) (int, bool, error) {
	if p.Magic < SpellCost {
		return 0, false, nil
	}
	damage, err := p.rng.Between(SpellMinDamage, SpellMaxDamage)
	if err != nil {
		return 0, false, fmt.Errorf("spell roll: %w", err)
	}
	p.Magic -= SpellCost
	target.TakeDamage(damage)
	return damage, true, nil
}

// =============================================================================
// Treasure and progression
// =============================================================================

// CollectTreasure adds t to the hoard. Every TreasuresPerLevel-th treasure
// raises the level, attack power and magic; leveledUp reports whether this one did.
func (p *Player) CollectTreasure(t Treasure) (leveledUp bool) {
	p.Treasures = append(p.Treasures, t)
	if len(p.Treasures)%TreasuresPerLevel != 0 {
		return false
	}
	p.Level++
	p.AttackPower += AttackPerLevel
	p.Magic += MagicPerLevel
	return true
}

// TotalTreasureValue returns the summed value of every collected treasure.
func (p *Player) TotalTreasureValue() int {
	total := 0
	for _, t := range p.Treasures {
		total += t.Value
	}
	return total
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the player's name.
func (p *Player) GetName() string { return p.Name }

// GetHP returns current health.
func (p *Player) GetHP() int { return p.Health }

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage subtracts amount from health and returns what is left.
func (p *Player) TakeDamage(amount int) int {
	p.Health -= amount
	return p.Health
}

// HealsLeft returns the number of heals remaining.
func (p *Player) HealsLeft() int { return p.Heals }

// Ensure Player implements combat.Hero
var _ combat.Hero = (*Player)(nil)
