// Package itemgen produces procedurally-statted item instances from base
// templates. It is the single item factory: loot, craft outputs and admin
// grants all materialize items through it.
package itemgen

import (
	"github.com/Eldorabotpy/eldora-engine/internal/data"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// Generator rolls item instances from the static catalogs. Stateless; all
// randomness comes from the Source passed per call, so a fixed seed
// reproduces the exact item.
type Generator struct{}

// New returns the item generator.
func New() *Generator {
	return &Generator{}
}

// Generate creates an item instance from a base template.
//
// Rules:
//  1. The base's equip slot selects the primary stat (armor → vitalidade,
//     boots → agilidade, gloves → sorte, weapon/jewelry → the owner
//     class's damage attribute).
//  2. The primary value rolls within the rarity-keyed range.
//  3. The rarity's fixed affix budget selects that many distinct secondary
//     affixes from the shared pool, primary excluded, each rolled within
//     its own rarity-keyed range.
//  4. Durability starts at the default [20,20] pair unless the base
//     overrides the maximum.
//
// A requested rarity outside the known tiers falls back to the lowest. An
// unknown base id, or a base without a primary-stat mapping (materials,
// plain accessories), yields an item with an empty attribute set — that is
// a valid item, not a failure. ownerLevel is part of the generation
// contract for catalog hooks keyed by level; the current range tables key
// by rarity only.
func (g *Generator) Generate(src rng.Source, baseID string, rarity model.Rarity, ownerClass string, ownerLevel int32) (*model.Item, error) {
	if !rarity.IsValid() {
		rarity = model.RarityComum
	}

	slot := ""
	maxDurability := model.DefaultDurability
	if base := data.GetItemBase(baseID); base != nil {
		slot = base.Slot
		if base.MaxDurability > 0 {
			maxDurability = base.MaxDurability
		}
	}

	item, err := model.NewItem(baseID, rarity, slot, maxDurability, maxDurability)
	if err != nil {
		return nil, err
	}

	primary, hasPrimary := data.PrimaryStatForSlot(slot, ownerClass)
	if !hasPrimary {
		return item, nil
	}

	item.Attributes[primary] = model.Attribute{
		Source: model.AttrSourcePrimary,
		Value:  rollRange(src, rarity, primary),
	}

	budget := data.GetAffixBudget(rarity)
	if budget <= 0 {
		return item, nil
	}

	candidates := make([]string, 0, len(data.AffixPool))
	for _, affix := range data.AffixPool {
		if affix != primary {
			candidates = append(candidates, affix)
		}
	}

	for i := 0; i < budget && len(candidates) > 0; i++ {
		idx := src.IntN(len(candidates))
		affix := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		item.Attributes[affix] = model.Attribute{
			Source: model.AttrSourceAffix,
			Value:  rollRange(src, rarity, affix),
		}
	}

	return item, nil
}

// rollRange rolls a value within the attribute's rarity-keyed range,
// falling back to the lowest tier when the table has no row.
func rollRange(src rng.Source, rarity model.Rarity, attr string) int32 {
	r, ok := data.GetStatRange(rarity, attr)
	if !ok {
		if r, ok = data.GetStatRange(model.RarityComum, attr); !ok {
			return 0
		}
	}
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + int32(src.IntN(int(r.Max-r.Min+1)))
}
