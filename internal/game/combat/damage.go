// Package combat implements attack resolution: the single-hit damage
// formula with critical and mega-critical tiers, the skill effect layer on
// top of it, and the victory reward calculation.
package combat

import (
	"math"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// Canonical crit constant table. Monsters use slightly lower ceilings and
// multipliers than players so a lucky monster never trivializes a fight.
const (
	// Crit chance ceiling in percent, per attacker role.
	PlayerCritCeiling  = 40.0
	MonsterCritCeiling = 30.0

	// Damage multiplier on a critical hit.
	PlayerCritMultiplier  = 1.6
	MonsterCritMultiplier = 1.5

	// Damage multiplier on a mega-critical hit.
	PlayerMegaCritMultiplier  = 2.0
	MonsterMegaCritMultiplier = 1.75

	// Mega-crit chance cap in percent.
	MegaCritChanceCap = 25.0
)

// DefaultMinDamage is the damage floor when no configured minimum applies.
const DefaultMinDamage int32 = 1

// CritChance returns the critical hit chance in percent for the given luck
// and attacker role.
//
// Formula: 100 × (1 − 0.99^luck), clamped to the role ceiling. Diminishing
// returns: each point of luck is worth less than the previous one, and the
// ceiling holds even as luck → ∞.
func CritChance(luck int32, role model.Role) float64 {
	if luck < 0 {
		luck = 0
	}
	chance := 100.0 * (1.0 - math.Pow(0.99, float64(luck)))

	ceiling := PlayerCritCeiling
	if role == model.RoleMonster {
		ceiling = MonsterCritCeiling
	}
	if chance > ceiling {
		chance = ceiling
	}
	return chance
}

// MegaCritChance returns the chance in percent that a critical hit is
// promoted to mega-critical: min(25, luck/2), clamped to [0,100].
func MegaCritChance(luck int32) float64 {
	if luck < 0 {
		luck = 0
	}
	chance := float64(luck) / 2.0
	if chance > MegaCritChanceCap {
		chance = MegaCritChanceCap
	}
	return chance
}

// critMultiplier returns the damage multiplier for the crit tier reached.
func critMultiplier(role model.Role, crit, mega bool) float64 {
	switch {
	case mega && role == model.RoleMonster:
		return MonsterMegaCritMultiplier
	case mega:
		return PlayerMegaCritMultiplier
	case crit && role == model.RoleMonster:
		return MonsterCritMultiplier
	case crit:
		return PlayerCritMultiplier
	default:
		return 1.0
	}
}

// ResolveAttack computes the outcome of a single hit.
//
// Algorithm:
//  1. Crit chance from attacker luck (role-capped), plus any bonus crit
//     points from effects, clamped to [0,100].
//  2. Roll crit; on crit, an independent roll against MegaCritChance can
//     promote the hit to mega-critical.
//  3. boosted = ceil(attack × skill multiplier × crit multiplier).
//  4. Magic damage bypasses defense; otherwise subtract defense reduced by
//     the penetration fraction (floored at 0).
//  5. Floor the result at minDamage.
//
// Pure given a fixed Source: never mutates attacker or defender. Negative
// stat inputs are coerced through NormalizeStats before use.
func ResolveAttack(src rng.Source, attacker, defender model.CombatantStats, effects model.SkillEffects, minDamage int32) model.AttackOutcome {
	attacker = model.NormalizeStats(attacker)
	defender = model.NormalizeStats(defender)
	if minDamage < 0 {
		minDamage = 0
	}

	chance := CritChance(attacker.Luck, attacker.Role) + effects.BonusCritChance
	if chance < 0 {
		chance = 0
	}
	if chance > 100 {
		chance = 100
	}

	var crit, mega bool
	if chance > 0 && src.Float64()*100.0 <= chance {
		crit = true
		if megaChance := MegaCritChance(attacker.Luck); megaChance > 0 && src.Float64()*100.0 <= megaChance {
			mega = true
		}
	}

	boosted := math.Ceil(float64(attacker.Attack) * effects.Multiplier() * critMultiplier(attacker.Role, crit, mega))

	var damage float64
	if effects.IsMagic() {
		damage = boosted
	} else {
		pen := effects.DefensePenetration
		if pen < 0 {
			pen = 0
		}
		if pen > 1 {
			pen = 1
		}
		effDefense := math.Floor(float64(defender.Defense) * (1.0 - pen))
		if effDefense < 0 {
			effDefense = 0
		}
		damage = boosted - effDefense
	}

	if damage < float64(minDamage) {
		damage = float64(minDamage)
	}

	return model.AttackOutcome{
		Damage:       int32(damage),
		Critical:     crit,
		MegaCritical: mega,
	}
}
