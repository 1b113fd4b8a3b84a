package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/dungeonseeker/internal/dice"
	"github.com/samdwyer/dungeonseeker/internal/gamedata"
)

func TestMonsterAttackRange(t *testing.T) {
	rng := dice.NewRand(3)
	m := NewMonster("Orc", 50, 10, "Shrapnel Bomb", rng)

	for i := 0; i < 500; i++ {
		p := NewPlayer("Seeker", &dice.Script{})
		damage, err := m.Attack(p)
		if err != nil {
			t.Fatalf("Attack() error: %v", err)
		}
		if damage < 1 || damage > 10 {
			t.Fatalf("damage = %d, want within [1, 10]", damage)
		}
		if p.Health != 100-damage {
			t.Fatalf("player health = %d, want %d", p.Health, 100-damage)
		}
	}
}

func TestMonsterZeroAttackPowerIsAnError(t *testing.T) {
	m := NewMonster("Rat", 5, 0, "", dice.NewRand(1))
	p := NewPlayer("Seeker", &dice.Script{})

	_, err := m.Attack(p)
	if !errors.Is(err, ErrInvalidMonster) {
		t.Errorf("Attack() error = %v, want ErrInvalidMonster", err)
	}
	if !errors.Is(err, dice.ErrEmptyRange) {
		t.Errorf("Attack() error = %v, want wrapped ErrEmptyRange", err)
	}
	if p.Health != 100 {
		t.Errorf("player health = %d, want 100", p.Health)
	}
}

func TestMonsterIsAlive(t *testing.T) {
	m := NewMonster("Goblin", 5, 5, "", &dice.Script{})
	if !m.IsAlive() {
		t.Error("monster with 5 health should be alive")
	}
	if left := m.TakeDamage(5); left != 0 || m.IsAlive() {
		t.Errorf("after 5 damage: health %d alive %v, want 0 false", left, m.IsAlive())
	}
}

func TestSpawnedMonstersAreIndependent(t *testing.T) {
	tables := gamedata.MustLoadTables()
	def := tables.Monsters.GetByID("goblin")

	first := NewMonsterFromDef(def, "en", &dice.Script{})
	first.TakeDamage(25)

	second := NewMonsterFromDef(def, "en", &dice.Script{})
	if second.Health != 30 {
		t.Errorf("fresh goblin health = %d, want 30", second.Health)
	}
	if second.Name != "Goblin" || second.AttackPower != 5 || second.Ability != "Fireball" {
		t.Errorf("goblin = %+v", second)
	}
	if def.HP != 30 {
		t.Errorf("template hp changed to %d", def.HP)
	}
}

func TestLocalizedNames(t *testing.T) {
	tables := gamedata.MustLoadTables()

	m := NewMonsterFromDef(tables.Monsters.GetByID("dragon"), "ru", &dice.Script{})
	if m.Name != "Дракон" {
		t.Errorf("ru dragon name = %q", m.Name)
	}

	tr := NewTreasureFromDef(tables.Treasures.GetByID("gold_coin"), "ru")
	if tr.Name != "Золотая монета" || tr.Value != 10 {
		t.Errorf("ru coin = %+v", tr)
	}
}
