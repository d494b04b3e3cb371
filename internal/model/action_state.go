package model

import "time"

// ActionState is the single activity a player is currently engaged in.
// Exactly one state is active per player; every gated operation validates
// the stored state before mutating anything.
type ActionState string

const (
	StateIdle             ActionState = "idle"
	StateInCombat         ActionState = "in_combat"
	StateWorking          ActionState = "working"
	StateDismantling      ActionState = "dismantling"
	StateDismantlingBatch ActionState = "dismantling_batch"
	StateEvolutionLobby   ActionState = "evolution_lobby"
	StateEvolutionCombat  ActionState = "evolution_combat"
)

// IsProfession reports whether the state is one of the timed profession
// activities resolved by a later completion step.
func (s ActionState) IsProfession() bool {
	switch s {
	case StateWorking, StateDismantling, StateDismantlingBatch:
		return true
	}
	return false
}

// IsCombat reports whether the state is a live encounter (regular hunt or
// evolution trial combat).
func (s ActionState) IsCombat() bool {
	return s == StateInCombat || s == StateEvolutionCombat
}

// CombatSnapshot is the details payload of an in_combat / evolution_combat
// state: everything a turn needs so resolution never re-reads transient UI
// state. Created at hunt start, discarded when the encounter resolves.
type CombatSnapshot struct {
	MonsterID    string         `json:"monster_id"`
	MonsterName  string         `json:"monster_name"`
	MonsterStats CombatantStats `json:"monster_stats"`
	MonsterHP    int32          `json:"monster_hp"`

	// BattleLog is the ordered human-readable narration consumed by the
	// presentation layer. The engine appends, never formats markup.
	BattleLog []string `json:"battle_log"`

	// Cooldowns maps skill id to remaining turns. Decremented once per
	// completed turn by the turn-advance routine, never by the resolvers.
	Cooldowns map[string]int32 `json:"cooldowns"`

	// SafeRegion marks encounters in zones where defeat carries no XP
	// penalty.
	SafeRegion bool `json:"safe_region"`

	// Trial marks the one-shot evolution encounter.
	Trial bool `json:"trial,omitempty"`
}

// WorkDetails is the details payload of working / dismantling states.
// Inputs are removed up front; completion is resolved later against the
// stored timestamp, never by blocking.
type WorkDetails struct {
	RecipeID    string           `json:"recipe_id"`
	Consumed    map[string]int32 `json:"consumed"`
	Batch       int32            `json:"batch,omitempty"`
	CompletesAt time.Time        `json:"completes_at"`
}

// ActionDetails is the opaque per-state payload stored on the player
// record. At most one of the fields is set, matching the active state.
type ActionDetails struct {
	Combat *CombatSnapshot `json:"combat,omitempty"`
	Work   *WorkDetails    `json:"work,omitempty"`
}
