package model

// AttackOutcome is the result of resolving a single hit.
// Invariant: Damage >= the configured minimum regardless of inputs, and
// MegaCritical implies Critical.
type AttackOutcome struct {
	Damage       int32
	Critical     bool
	MegaCritical bool
}

// ItemDrop is one looted item stack inside a reward bundle.
type ItemDrop struct {
	BaseID string
	Count  int32
}

// RewardBundle is the transient outcome of one victory: computed once,
// applied to the player record, then discarded.
type RewardBundle struct {
	XP       int64
	Currency int64
	Items    []ItemDrop
}
