package model

// Role distinguishes player-controlled combatants from monsters.
// Crit ceilings and crit multipliers differ per role.
type Role int

const (
	RolePlayer Role = iota
	RoleMonster
)

// String returns human-readable role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Baseline values applied by NormalizeStats for missing or negative fields.
// Luck defaults to 5 so crit math never operates on an undefined value;
// MaxHP defaults to 1 so HP ratios never divide by zero.
const (
	BaselineAttack     int32 = 0
	BaselineDefense    int32 = 0
	BaselineInitiative int32 = 0
	BaselineLuck       int32 = 5
	BaselineMaxHP      int32 = 1
)

// CombatantStats is the normalized read-only stat view of one combatant,
// player or monster. It is derived fresh for each resolution call and never
// persisted on its own.
type CombatantStats struct {
	Role       Role  `json:"role"`
	Attack     int32 `json:"attack"`
	Defense    int32 `json:"defense"`
	Initiative int32 `json:"initiative"`
	Luck       int32 `json:"luck"`
	MaxHP      int32 `json:"max_hp"`
	CurrentHP  int32 `json:"current_hp"`
}

// NormalizeStats coerces a raw stat set into a valid CombatantStats.
// Negative attack/defense/initiative are clamped to 0, non-positive luck
// falls back to the baseline, and MaxHP is floored at 1. CurrentHP is
// clamped to [0, MaxHP]; a zero CurrentHP on input is treated as "not
// provided" and set to MaxHP.
func NormalizeStats(s CombatantStats) CombatantStats {
	if s.Attack < 0 {
		s.Attack = BaselineAttack
	}
	if s.Defense < 0 {
		s.Defense = BaselineDefense
	}
	if s.Initiative < 0 {
		s.Initiative = BaselineInitiative
	}
	if s.Luck <= 0 {
		s.Luck = BaselineLuck
	}
	if s.MaxHP < BaselineMaxHP {
		s.MaxHP = BaselineMaxHP
	}
	if s.CurrentHP <= 0 {
		s.CurrentHP = s.MaxHP
	}
	if s.CurrentHP > s.MaxHP {
		s.CurrentHP = s.MaxHP
	}
	return s
}
