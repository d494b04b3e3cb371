package model

import "fmt"

// DefaultDurability is the initial current/max durability pair for generated
// items whose base template does not override it.
const DefaultDurability int32 = 20

// Attribute is a single rolled bonus on an item instance: where it came
// from (primary roll, affix roll, admin grant) and its value.
type Attribute struct {
	Source string `json:"source"`
	Value  int32  `json:"value"`
}

// Attribute source tags.
const (
	AttrSourcePrimary = "primary"
	AttrSourceAffix   = "affix"
)

// Item is a concrete generated item instance. It is owned by exactly one
// player record at a time; trading reassigns ownership atomically at the
// persistence layer. All mutation happens under the owner's action lock,
// so the struct itself carries no synchronization.
//
// Invariant: 0 <= Durability <= MaxDurability. An item at 0 durability is
// broken and contributes no combat bonuses until repaired, but it stays
// equipped.
type Item struct {
	BaseID        string               `json:"base_id"`
	Rarity        Rarity               `json:"rarity"`
	Slot          string               `json:"slot"`
	Durability    int32                `json:"durability"`
	MaxDurability int32                `json:"max_durability"`
	Attributes    map[string]Attribute `json:"attributes"`
}

// NewItem creates an item instance with validation.
// Rarity falls back to the lowest tier when unknown; durability must be a
// valid pair.
func NewItem(baseID string, rarity Rarity, slot string, durability, maxDurability int32) (*Item, error) {
	if baseID == "" {
		return nil, fmt.Errorf("baseID cannot be empty")
	}
	if !rarity.IsValid() {
		rarity = RarityComum
	}
	if maxDurability <= 0 {
		return nil, fmt.Errorf("maxDurability must be > 0, got %d", maxDurability)
	}
	if durability < 0 || durability > maxDurability {
		return nil, fmt.Errorf("durability %d out of range [0,%d]", durability, maxDurability)
	}

	return &Item{
		BaseID:        baseID,
		Rarity:        rarity,
		Slot:          slot,
		Durability:    durability,
		MaxDurability: maxDurability,
		Attributes:    make(map[string]Attribute),
	}, nil
}

// IsBroken reports whether the item is at 0 durability.
func (i *Item) IsBroken() bool {
	return i.Durability <= 0
}

// AttributeValue returns the value of the named attribute, 0 if absent.
func (i *Item) AttributeValue(name string) int32 {
	return i.Attributes[name].Value
}

// EffectiveAttributeValue is AttributeValue gated on durability: a broken
// item contributes nothing until repaired.
func (i *Item) EffectiveAttributeValue(name string) int32 {
	if i.IsBroken() {
		return 0
	}
	return i.AttributeValue(name)
}

// Clone returns a deep copy. Used when snapshotting equipment into an
// encounter so an aborted turn never leaks partial mutation.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Attributes = make(map[string]Attribute, len(i.Attributes))
	for k, v := range i.Attributes {
		cp.Attributes[k] = v
	}
	return &cp
}
