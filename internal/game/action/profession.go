package action

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Eldorabotpy/eldora-engine/internal/data"
	"github.com/Eldorabotpy/eldora-engine/internal/game/durability"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

// CompletionResult is the output of a finished profession action.
type CompletionResult struct {
	// Items holds crafted item instances delivered to the bag.
	Items []*model.Item

	// Materials maps base id → count returned to the inventory.
	Materials map[string]int32
}

// StartWork transitions idle → working for a crafting recipe. Inputs are
// removed up front; the stored completion timestamp lets a later
// completion step resolve the action without re-reading transient UI
// state.
func (m *Manager) StartWork(ctx context.Context, playerID int64, recipeID string) error {
	return m.withPlayer(ctx, "start work", playerID, func(p *model.Player) error {
		if err := requireIdle(p); err != nil {
			return err
		}

		recipe := data.GetRecipeTemplate(recipeID)
		if recipe == nil {
			return ErrUnknownRecipe
		}

		// Validate the whole input set before touching the inventory so
		// a rejection leaves the record untouched.
		for baseID, count := range recipe.Inputs {
			if p.Inventory[baseID] < count {
				return ErrMissingInputs
			}
		}
		consumed := make(map[string]int32, len(recipe.Inputs))
		for baseID, count := range recipe.Inputs {
			p.RemoveItem(baseID, count)
			consumed[baseID] = count
		}

		p.State = model.StateWorking
		p.Details = model.ActionDetails{Work: &model.WorkDetails{
			RecipeID:    recipe.ID,
			Consumed:    consumed,
			CompletesAt: m.clock.Now().Add(recipe.Duration),
		}}

		slog.Info("work started", "player", p.Name, "recipe", recipe.ID)
		return nil
	})
}

// StartDismantle transitions idle → dismantling for a single item.
func (m *Manager) StartDismantle(ctx context.Context, playerID int64, baseID string) error {
	return m.startDismantle(ctx, playerID, baseID, 1, model.StateDismantling)
}

// StartDismantleBatch transitions idle → dismantling_batch for count
// items of the same base. Duration scales linearly with the batch size.
func (m *Manager) StartDismantleBatch(ctx context.Context, playerID int64, baseID string, count int32) error {
	if count < 1 {
		count = 1
	}
	return m.startDismantle(ctx, playerID, baseID, count, model.StateDismantlingBatch)
}

func (m *Manager) startDismantle(ctx context.Context, playerID int64, baseID string, count int32, state model.ActionState) error {
	return m.withPlayer(ctx, "start dismantle", playerID, func(p *model.Player) error {
		if err := requireIdle(p); err != nil {
			return err
		}

		base := data.GetItemBase(baseID)
		if base == nil || len(base.Dismantle) == 0 {
			return ErrCannotDismantle
		}
		if !p.RemoveItem(baseID, count) {
			return ErrMissingInputs
		}

		p.State = state
		p.Details = model.ActionDetails{Work: &model.WorkDetails{
			RecipeID:    baseID,
			Consumed:    map[string]int32{baseID: count},
			Batch:       count,
			CompletesAt: m.clock.Now().Add(time.Duration(count) * data.DismantleDuration),
		}}

		slog.Info("dismantle started", "player", p.Name, "base", baseID, "count", count)
		return nil
	})
}

// Complete resolves a finished profession action: produces outputs and
// clears the state. Rejected while the stored timestamp is still in the
// future.
func (m *Manager) Complete(ctx context.Context, playerID int64) (*CompletionResult, error) {
	var result *CompletionResult

	err := m.withPlayer(ctx, "complete", playerID, func(p *model.Player) error {
		if !p.State.IsProfession() || p.Details.Work == nil {
			return ErrNoPendingWork
		}
		work := p.Details.Work
		if m.clock.Now().Before(work.CompletesAt) {
			return ErrNotReady
		}

		out := &CompletionResult{Materials: make(map[string]int32)}

		switch p.State {
		case model.StateWorking:
			recipe := data.GetRecipeTemplate(work.RecipeID)
			if recipe == nil {
				// Recipe vanished from the catalog mid-action: return
				// the consumed inputs instead of losing them.
				slog.Warn("recipe missing at completion", "recipe", work.RecipeID, "player", p.Name)
				for baseID, count := range work.Consumed {
					p.AddItem(baseID, count)
					out.Materials[baseID] += count
				}
				break
			}
			for i := int32(0); i < recipe.Count; i++ {
				item, err := m.gen.Generate(m.rng, recipe.Output, recipe.Rarity, p.Class, p.Level)
				if err != nil {
					return fmt.Errorf("generating craft output: %w", err)
				}
				if item.Slot == "" {
					p.AddItem(item.BaseID, 1)
					out.Materials[item.BaseID]++
				} else {
					p.Bag = append(p.Bag, item)
					out.Items = append(out.Items, item)
				}
			}

		case model.StateDismantling, model.StateDismantlingBatch:
			base := data.GetItemBase(work.RecipeID)
			if base != nil {
				batch := work.Batch
				if batch < 1 {
					batch = 1
				}
				for matID, count := range base.Dismantle {
					total := count * batch
					p.AddItem(matID, total)
					out.Materials[matID] += total
				}
			}
		}

		p.State = model.StateIdle
		p.Details = model.ActionDetails{}
		result = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Repair restores the equipped item in the slot to full durability.
// Requires idle (repairs happen at the bench, not mid-fight). Reports
// ErrNothingToRepair when the slot is empty or already at max.
func (m *Manager) Repair(ctx context.Context, playerID int64, slot string) error {
	return m.withPlayer(ctx, "repair", playerID, func(p *model.Player) error {
		if err := requireIdle(p); err != nil {
			return err
		}
		item := p.Equipment[slot]
		if item == nil {
			return ErrNothingToRepair
		}
		if !durability.RestoreToMax(item) {
			return ErrNothingToRepair
		}
		slog.Info("item repaired", "player", p.Name, "slot", slot, "base", item.BaseID)
		return nil
	})
}
