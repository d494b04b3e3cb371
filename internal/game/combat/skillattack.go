package combat

import (
	"fmt"
	"math"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// DoubleAttackMaxChance is the hard cap on the initiative-derived double
// attack chance for basic attacks.
const DoubleAttackMaxChance = 0.50

// DefaultLowHPThreshold is the current/max HP ratio below which low-HP
// skill boosts activate, when no configured threshold applies.
const DefaultLowHPThreshold = 0.30

// SkillResult is the aggregate outcome of one attack action, basic or
// skill-driven: total damage across all hits, the per-hit outcomes, and the
// ordered narration consumed by the presentation layer.
type SkillResult struct {
	TotalDamage int32
	Hits        []model.AttackOutcome
	Log         []string
}

// DoubleAttackChance returns the basic-attack extra-hit chance derived
// from initiative, as a fraction: min(initiative × 0.25 / 100, 0.50).
//
// This is deliberately a distinct mechanic from skill MultiHit: skills
// state an exact hit count, basic attacks roll a capped chance for one
// extra hit. The two rules came from different places in the original
// game and are kept separate.
func DoubleAttackChance(initiative int32) float64 {
	if initiative < 0 {
		initiative = 0
	}
	chance := float64(initiative) * 0.25 / 100.0
	if chance > DoubleAttackMaxChance {
		chance = DoubleAttackMaxChance
	}
	return chance
}

// ResolveSkillAttack layers skill modifiers on top of the damage resolver
// and resolves the full attack action.
//
// Rules, in order:
//  1. Hit count: MultiHit from the effect set (minimum 1) when a skill is
//     used; a double-attack roll from attacker initiative for basic
//     attacks (effects == nil).
//  2. Defense penetration and bonus crit chance pass through to
//     ResolveAttack for this resolution only.
//  3. LowHPDamageBoost multiplies the skill damage multiplier by
//     (1 + boost) while the attacker is below lowHPThreshold of max HP.
//  4. Each hit is resolved independently and narrated with one log line.
//
// Cooldown and mana bookkeeping belong to the caller; this function
// computes outcomes only and never mutates either combatant. Malformed
// effect data (NaN or infinite modifiers) degrades to a zero-damage result
// with a diagnostic log entry instead of failing the combat round.
func ResolveSkillAttack(src rng.Source, attacker, defender model.CombatantStats, effects *model.SkillEffects, minDamage int32, lowHPThreshold float64) SkillResult {
	attacker = model.NormalizeStats(attacker)
	defender = model.NormalizeStats(defender)
	if lowHPThreshold <= 0 || lowHPThreshold > 1 {
		lowHPThreshold = DefaultLowHPThreshold
	}

	var resolved model.SkillEffects
	hits := 1

	if effects != nil {
		if malformed(*effects) {
			return SkillResult{
				Log: []string{"A habilidade falhou: dados de habilidade inválidos."},
			}
		}
		resolved = *effects
		if resolved.MultiHit > 1 {
			hits = int(resolved.MultiHit)
		}

		if resolved.LowHPDamageBoost > 0 &&
			float64(attacker.CurrentHP) < lowHPThreshold*float64(attacker.MaxHP) {
			resolved.DamageMultiplier = resolved.Multiplier() * (1.0 + resolved.LowHPDamageBoost)
		}
	} else {
		// Basic attack: initiative can grant one extra hit.
		if chance := DoubleAttackChance(attacker.Initiative); chance > 0 && src.Float64() < chance {
			hits = 2
		}
	}

	var result SkillResult
	for i := 0; i < hits; i++ {
		outcome := ResolveAttack(src, attacker, defender, resolved, minDamage)
		result.Hits = append(result.Hits, outcome)
		result.TotalDamage += outcome.Damage
		result.Log = append(result.Log, hitLogLine(i+1, hits, outcome))
	}

	return result
}

// malformed reports whether the effect set carries non-finite numeric
// modifiers. A single bad catalog row must never crash an active round.
func malformed(e model.SkillEffects) bool {
	for _, v := range []float64{e.DefensePenetration, e.BonusCritChance, e.DamageMultiplier, e.LowHPDamageBoost} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

// hitLogLine narrates a single hit. The engine emits plain text; chat
// markup is the presentation layer's business.
func hitLogLine(n, total int, outcome model.AttackOutcome) string {
	var line string
	if total > 1 {
		line = fmt.Sprintf("Golpe %d/%d: %d de dano", n, total, outcome.Damage)
	} else {
		line = fmt.Sprintf("Você causou %d de dano", outcome.Damage)
	}
	switch {
	case outcome.MegaCritical:
		line += " (MEGA CRÍTICO!)"
	case outcome.Critical:
		line += " (crítico!)"
	}
	return line
}
