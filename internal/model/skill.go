package model

// Damage type tags. Magic damage bypasses defense entirely.
const (
	DamageTypePhysical = "physical"
	DamageTypeMagic    = "magic"
)

// SkillEffects is the sparse modifier set of one skill, owned by catalog
// data and read-only to the engine. Zero values mean "modifier absent".
type SkillEffects struct {
	// MultiHit is the number of hits per use (minimum 1 applies at
	// resolution; 0 means unspecified).
	MultiHit int32 `yaml:"multi_hit"`

	// DefensePenetration is the fraction of defender defense ignored,
	// in [0,1].
	DefensePenetration float64 `yaml:"defense_penetration"`

	// BonusCritChance is added to the attacker's crit chance, in
	// percentage points.
	BonusCritChance float64 `yaml:"bonus_crit_chance"`

	// DamageMultiplier scales the attack before mitigation (0 means 1.0).
	DamageMultiplier float64 `yaml:"damage_multiplier"`

	// DamageType is physical (default) or magic.
	DamageType string `yaml:"damage_type"`

	// LowHPDamageBoost is the extra damage fraction applied while the
	// attacker is below the low-HP threshold.
	LowHPDamageBoost float64 `yaml:"low_hp_dmg_boost"`
}

// Multiplier returns the effective damage multiplier, defaulting to 1.0.
func (e SkillEffects) Multiplier() float64 {
	if e.DamageMultiplier <= 0 {
		return 1.0
	}
	return e.DamageMultiplier
}

// IsMagic reports whether the skill deals defense-bypassing magic damage.
func (e SkillEffects) IsMagic() bool {
	return e.DamageType == DamageTypeMagic
}
