package combat

import (
	"testing"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

func noCritSource() *rng.Sequence {
	return &rng.Sequence{Floats: []float64{0.99}}
}

func TestResolveAttackBaseline(t *testing.T) {
	// attacker {attack:50, luck:0}, defender {defense:10}, no skill,
	// RNG fixed to "no crit" → damage 40, no crit.
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 50, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 10, MaxHP: 100}

	outcome := ResolveAttack(noCritSource(), attacker, defender, model.SkillEffects{}, 1)

	if outcome.Damage != 40 {
		t.Errorf("Damage = %d, want 40", outcome.Damage)
	}
	if outcome.Critical || outcome.MegaCritical {
		t.Errorf("outcome = %+v, want no crit", outcome)
	}
}

func TestResolveAttackMinimumDamage(t *testing.T) {
	tests := []struct {
		name     string
		attack   int32
		defense  int32
		minDmg   int32
		wantDmg  int32
	}{
		{"defense exceeds attack", 5, 100, 1, 1},
		{"zero attack", 0, 50, 1, 1},
		{"negative stats coerced", -20, -5, 1, 1},
		{"configured minimum 3", 5, 100, 3, 3},
		{"normal hit unaffected", 50, 10, 1, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker := model.CombatantStats{Role: model.RolePlayer, Attack: tt.attack, MaxHP: 10}
			defender := model.CombatantStats{Role: model.RoleMonster, Defense: tt.defense, MaxHP: 10}
			outcome := ResolveAttack(noCritSource(), attacker, defender, model.SkillEffects{}, tt.minDmg)
			if outcome.Damage != tt.wantDmg {
				t.Errorf("Damage = %d, want %d", outcome.Damage, tt.wantDmg)
			}
		})
	}
}

func TestMegaCriticalImpliesCritical(t *testing.T) {
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 50, Luck: 100, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 10, MaxHP: 100}

	for seed := uint64(0); seed < 500; seed++ {
		outcome := ResolveAttack(rng.Seeded(seed), attacker, defender, model.SkillEffects{}, 1)
		if outcome.MegaCritical && !outcome.Critical {
			t.Fatalf("seed %d: mega-critical without critical", seed)
		}
	}
}

func TestCritChanceMonotonicAndCapped(t *testing.T) {
	prev := 0.0
	for luck := int32(0); luck <= 2000; luck++ {
		chance := CritChance(luck, model.RolePlayer)
		if chance < prev {
			t.Fatalf("crit chance decreased at luck %d: %v < %v", luck, chance, prev)
		}
		if chance > PlayerCritCeiling {
			t.Fatalf("crit chance %v exceeds player ceiling at luck %d", chance, luck)
		}
		prev = chance
	}

	if got := CritChance(2000, model.RoleMonster); got != MonsterCritCeiling {
		t.Errorf("monster chance at extreme luck = %v, want ceiling %v", got, MonsterCritCeiling)
	}
}

func TestMegaCritChance(t *testing.T) {
	tests := []struct {
		luck int32
		want float64
	}{
		{0, 0},
		{10, 5},
		{50, 25},
		{200, 25}, // capped
		{-5, 0},
	}
	for _, tt := range tests {
		if got := MegaCritChance(tt.luck); got != tt.want {
			t.Errorf("MegaCritChance(%d) = %v, want %v", tt.luck, got, tt.want)
		}
	}
}

func TestResolveAttackCritMultipliers(t *testing.T) {
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 10, MaxHP: 100}

	tests := []struct {
		name    string
		role    model.Role
		floats  []float64 // crit roll, mega roll
		wantDmg int32
		crit    bool
		mega    bool
	}{
		// luck 100: player chance capped at 40%, mega chance capped at 25%.
		{"player crit", model.RolePlayer, []float64{0.10, 0.99}, 70, true, false},   // ceil(50×1.6)−10
		{"player mega", model.RolePlayer, []float64{0.10, 0.10}, 90, true, true},    // ceil(50×2.0)−10
		{"monster crit", model.RoleMonster, []float64{0.10, 0.99}, 65, true, false}, // ceil(50×1.5)−10
		{"monster mega", model.RoleMonster, []float64{0.10, 0.10}, 78, true, true},  // ceil(50×1.75)−10
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attacker := model.CombatantStats{Role: tt.role, Attack: 50, Luck: 100, MaxHP: 100}
			src := &rng.Sequence{Floats: tt.floats}
			outcome := ResolveAttack(src, attacker, defender, model.SkillEffects{}, 1)
			if outcome.Damage != tt.wantDmg || outcome.Critical != tt.crit || outcome.MegaCritical != tt.mega {
				t.Errorf("outcome = %+v, want damage=%d crit=%v mega=%v",
					outcome, tt.wantDmg, tt.crit, tt.mega)
			}
		})
	}
}

func TestResolveAttackMagicBypassesDefense(t *testing.T) {
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 30, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 500, MaxHP: 100}

	effects := model.SkillEffects{DamageType: model.DamageTypeMagic}
	outcome := ResolveAttack(noCritSource(), attacker, defender, effects, 1)

	if outcome.Damage != 30 {
		t.Errorf("magic damage = %d, want 30 (defense ignored)", outcome.Damage)
	}
}

func TestResolveAttackDefensePenetration(t *testing.T) {
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 50, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 20, MaxHP: 100}

	effects := model.SkillEffects{DefensePenetration: 0.5}
	outcome := ResolveAttack(noCritSource(), attacker, defender, effects, 1)

	// Effective defense: floor(20 × 0.5) = 10.
	if outcome.Damage != 40 {
		t.Errorf("Damage = %d, want 40", outcome.Damage)
	}
}

func TestResolveAttackBonusCritChance(t *testing.T) {
	// Luck 5 alone gives ~4.9%; +30 bonus points pushes a 0.20 roll into
	// crit territory.
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 50, Luck: 5, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 10, MaxHP: 100}

	src := &rng.Sequence{Floats: []float64{0.20, 0.99}}
	plain := ResolveAttack(src, attacker, defender, model.SkillEffects{}, 1)
	if plain.Critical {
		t.Fatal("0.20 roll must not crit at luck 5 without bonus")
	}

	src = &rng.Sequence{Floats: []float64{0.20, 0.99}}
	boosted := ResolveAttack(src, attacker, defender, model.SkillEffects{BonusCritChance: 30}, 1)
	if !boosted.Critical {
		t.Fatal("0.20 roll must crit with +30 bonus crit points")
	}
}

func TestResolveAttackSkillMultiplier(t *testing.T) {
	attacker := model.CombatantStats{Role: model.RolePlayer, Attack: 50, MaxHP: 100}
	defender := model.CombatantStats{Role: model.RoleMonster, Defense: 10, MaxHP: 100}

	effects := model.SkillEffects{DamageMultiplier: 1.8}
	outcome := ResolveAttack(noCritSource(), attacker, defender, effects, 1)

	// ceil(50 × 1.8) − 10 = 80.
	if outcome.Damage != 80 {
		t.Errorf("Damage = %d, want 80", outcome.Damage)
	}
}
