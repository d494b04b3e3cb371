package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Eldorabotpy/eldora-engine/internal/data"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

// StartEvolutionTrial transitions idle → evolution_lobby. Entering the
// lobby fully restores HP and MP before the trial fight.
func (m *Manager) StartEvolutionTrial(ctx context.Context, playerID int64) error {
	return m.withPlayer(ctx, "start evolution trial", playerID, func(p *model.Player) error {
		if err := requireIdle(p); err != nil {
			return err
		}
		p.State = model.StateEvolutionLobby
		p.Details = model.ActionDetails{}
		p.RestoreVitals()
		slog.Info("evolution lobby entered", "player", p.Name)
		return nil
	})
}

// EnterEvolutionCombat starts the one-shot trial encounter against the
// ancestral guardian: evolution_lobby → evolution_combat. The fight is
// then driven by the regular Attack/UseSkill/Flee turns; victory counts
// the trial as completed.
func (m *Manager) EnterEvolutionCombat(ctx context.Context, playerID int64) error {
	return m.withPlayer(ctx, "enter evolution combat", playerID, func(p *model.Player) error {
		if p.State != model.StateEvolutionLobby {
			return ErrNotInLobby
		}

		tmpl := data.GetMonsterTemplate(data.EvolutionTrialMonsterID)
		if tmpl == nil {
			return ErrUnknownMonster
		}

		stats := tmpl.Stats()
		p.State = model.StateEvolutionCombat
		p.Details = model.ActionDetails{Combat: &model.CombatSnapshot{
			MonsterID:    tmpl.ID,
			MonsterName:  tmpl.Name,
			MonsterStats: stats,
			MonsterHP:    stats.MaxHP,
			BattleLog:    []string{fmt.Sprintf("O %s desperta...", tmpl.Name)},
			Cooldowns:    make(map[string]int32),
			SafeRegion:   data.IsSafeRegion(tmpl.Region),
			Trial:        true,
		}}

		slog.Info("evolution combat entered", "player", p.Name)
		return nil
	})
}

// GrantItem materializes an admin-granted item instance into the player's
// bag through the one item factory. Allowed in any action state: it
// touches inventory only, never the activity gate.
func (m *Manager) GrantItem(ctx context.Context, playerID int64, baseID string, rarity model.Rarity) (*model.Item, error) {
	var granted *model.Item

	err := m.withPlayer(ctx, "grant item", playerID, func(p *model.Player) error {
		item, err := m.gen.Generate(m.rng, baseID, rarity, p.Class, p.Level)
		if err != nil {
			return fmt.Errorf("generating granted item: %w", err)
		}
		if item.Slot == "" {
			p.AddItem(item.BaseID, 1)
		} else {
			p.Bag = append(p.Bag, item)
		}
		granted = item
		slog.Info("item granted", "player", p.Name, "base", baseID, "rarity", item.Rarity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return granted, nil
}
