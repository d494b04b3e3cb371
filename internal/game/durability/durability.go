// Package durability implements equipped-item wear: the
// full → worn → broken state machine and the end-of-battle wear pass.
package durability

import "github.com/Eldorabotpy/eldora-engine/internal/model"

// State is the wear state of one item.
type State int

const (
	StateFull   State = iota // current == max
	StateWorn                // 0 < current < max
	StateBroken              // current == 0
)

// String returns human-readable state name.
func (s State) String() string {
	switch s {
	case StateFull:
		return "full"
	case StateWorn:
		return "worn"
	case StateBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// StateOf classifies the item's current wear.
func StateOf(item *model.Item) State {
	switch {
	case item.Durability <= 0:
		return StateBroken
	case item.Durability >= item.MaxDurability:
		return StateFull
	default:
		return StateWorn
	}
}

// IsBroken reports whether the item is at 0 durability. Pure predicate.
func IsBroken(item *model.Item) bool {
	return item != nil && item.IsBroken()
}

// Consume decrements current durability by amount, floored at 0, and
// reports whether this call caused the transition into broken. The
// transition fires exactly once: consuming on an already-broken item
// reports false.
func Consume(item *model.Item, amount int32) (brokenNow bool) {
	if item == nil || amount <= 0 {
		return false
	}
	if item.Durability <= 0 {
		return false
	}

	item.Durability -= amount
	if item.Durability < 0 {
		item.Durability = 0
	}
	return item.Durability == 0
}

// RestoreToMax resets current durability to max and reports whether
// anything changed. Idempotent: restoring an already-full item is a no-op
// reporting false.
func RestoreToMax(item *model.Item) (changed bool) {
	if item == nil || item.Durability == item.MaxDurability {
		return false
	}
	item.Durability = item.MaxDurability
	return true
}

// ApplyBattleWear decrements every equipped slot independently by amount
// at battle end and returns the slots whose items broke during this pass.
// Broken items stay equipped; they just stop contributing bonuses until
// repaired.
func ApplyBattleWear(equipment map[string]*model.Item, amount int32) (brokenSlots []string) {
	for _, slot := range model.EquipSlots {
		item := equipment[slot]
		if item == nil {
			continue
		}
		if Consume(item, amount) {
			brokenSlots = append(brokenSlots, slot)
		}
	}
	return brokenSlots
}
