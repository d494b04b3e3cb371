package action

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Eldorabotpy/eldora-engine/internal/data"
	"github.com/Eldorabotpy/eldora-engine/internal/game/combat"
	"github.com/Eldorabotpy/eldora-engine/internal/game/durability"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

// TurnResult is the outcome of one committed combat turn.
type TurnResult struct {
	// Log holds the narration lines appended this turn, in order.
	Log []string

	// DamageDealt / DamageTaken are this turn's totals.
	DamageDealt int32
	DamageTaken int32

	Victory bool
	Defeat  bool

	// Reward is set on victory only.
	Reward *model.RewardBundle

	// BrokenSlots lists equipment that broke during the end-of-battle
	// wear pass.
	BrokenSlots []string
}

// StartHunt transitions idle → in_combat, storing the encounter snapshot
// (monster stats, empty battle log, empty cooldown map) on the record.
func (m *Manager) StartHunt(ctx context.Context, playerID int64, monsterID string) error {
	return m.withPlayer(ctx, "start hunt", playerID, func(p *model.Player) error {
		if err := requireIdle(p); err != nil {
			return err
		}

		tmpl := data.GetMonsterTemplate(monsterID)
		if tmpl == nil {
			return ErrUnknownMonster
		}

		stats := tmpl.Stats()
		p.State = model.StateInCombat
		p.Details = model.ActionDetails{Combat: &model.CombatSnapshot{
			MonsterID:    tmpl.ID,
			MonsterName:  tmpl.Name,
			MonsterStats: stats,
			MonsterHP:    stats.MaxHP,
			BattleLog:    []string{fmt.Sprintf("Você encontrou %s!", tmpl.Name)},
			Cooldowns:    make(map[string]int32),
			SafeRegion:   data.IsSafeRegion(tmpl.Region),
		}}

		slog.Info("hunt started", "player", p.Name, "monster", tmpl.ID)
		return nil
	})
}

// Attack resolves one basic-attack turn.
func (m *Manager) Attack(ctx context.Context, playerID int64) (*TurnResult, error) {
	return m.combatTurn(ctx, "attack", playerID, "")
}

// UseSkill resolves one skill turn: validates cooldown and mana, consumes
// MP, sets the cooldown counter and resolves the hit(s).
func (m *Manager) UseSkill(ctx context.Context, playerID int64, skillID string) (*TurnResult, error) {
	return m.combatTurn(ctx, "use skill", playerID, skillID)
}

// Flee abandons the encounter: in_combat → idle, snapshot discarded. No
// partial turn effects are applied.
func (m *Manager) Flee(ctx context.Context, playerID int64) error {
	return m.withPlayer(ctx, "flee", playerID, func(p *model.Player) error {
		if !p.State.IsCombat() || p.Details.Combat == nil {
			return ErrNotInCombat
		}
		slog.Info("player fled", "player", p.Name, "monster", p.Details.Combat.MonsterID)
		p.State = model.StateIdle
		p.Details = model.ActionDetails{}
		return nil
	})
}

// combatTurn runs one full turn: advance cooldowns, resolve the player's
// hit (basic or skill), let the monster retaliate, and settle victory or
// defeat. The whole turn commits atomically via the enclosing Save.
func (m *Manager) combatTurn(ctx context.Context, op string, playerID int64, skillID string) (*TurnResult, error) {
	var result *TurnResult

	err := m.withPlayer(ctx, op, playerID, func(p *model.Player) error {
		// Every turn re-validates the stored state: a stale or replayed
		// action against a finished encounter is a rejection, not a crash.
		if !p.State.IsCombat() || p.Details.Combat == nil {
			return ErrNotInCombat
		}
		snap := p.Details.Combat

		// Turn advance: cooldowns tick down once per round, here and
		// never inside the resolvers.
		advanceCooldowns(snap)

		playerStats := p.CombatStats()

		effects, skillLog, err := m.prepareSkill(p, snap, skillID)
		if err != nil {
			return err
		}

		turn := &TurnResult{}
		turn.Log = append(turn.Log, skillLog...)

		hit := combat.ResolveSkillAttack(m.rng, playerStats, snap.MonsterStats, effects, m.combat.MinDamage, m.combat.LowHPThreshold)
		turn.DamageDealt = hit.TotalDamage
		turn.Log = append(turn.Log, hit.Log...)

		snap.MonsterHP -= hit.TotalDamage
		if snap.MonsterHP <= 0 {
			m.settleVictory(p, snap, turn)
			snap.BattleLog = append(snap.BattleLog, turn.Log...)
			result = turn
			return nil
		}

		// Monster retaliates with a basic attack; its current HP rides
		// along so low-HP mechanics see the real value.
		monsterStats := snap.MonsterStats
		monsterStats.CurrentHP = snap.MonsterHP
		counter := combat.ResolveSkillAttack(m.rng, monsterStats, playerStats, nil, m.combat.MinDamage, m.combat.LowHPThreshold)
		turn.DamageTaken = counter.TotalDamage
		turn.Log = append(turn.Log, fmt.Sprintf("%s contra-atacou: %d de dano", snap.MonsterName, counter.TotalDamage))

		p.CurrentHP -= counter.TotalDamage
		if p.CurrentHP <= 0 {
			m.settleDefeat(p, snap, turn)
		}

		snap.BattleLog = append(snap.BattleLog, turn.Log...)
		result = turn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// prepareSkill validates and charges a skill use. Empty skillID means a
// basic attack. An unknown skill id in the catalog is recovered as a
// no-op skill (basic attack) with a diagnostic line — a bad data row must
// not abort the round. Cooldown is set to CooldownTurns+1 because the
// counter ticks down once per subsequent round, including the next one.
func (m *Manager) prepareSkill(p *model.Player, snap *model.CombatSnapshot, skillID string) (*model.SkillEffects, []string, error) {
	if skillID == "" {
		return nil, nil, nil
	}

	if !p.HasSkill(skillID) {
		return nil, nil, ErrSkillNotLearned
	}

	tmpl := data.GetSkillTemplate(skillID)
	if tmpl == nil {
		slog.Warn("skill template missing", "skill", skillID, "player", p.Name)
		return nil, []string{"A habilidade falhou e você atacou normalmente."}, nil
	}

	if snap.Cooldowns[skillID] > 0 {
		return nil, nil, ErrOnCooldown
	}
	if p.CurrentMP < tmpl.ManaCost {
		return nil, nil, ErrInsufficientMana
	}

	p.CurrentMP -= tmpl.ManaCost
	if tmpl.CooldownTurns > 0 {
		snap.Cooldowns[skillID] = tmpl.CooldownTurns + 1
	}

	return &tmpl.Effects, []string{fmt.Sprintf("Você usou %s!", tmpl.Name)}, nil
}

// advanceCooldowns ticks every active cooldown down by one at the start
// of the round.
func advanceCooldowns(snap *model.CombatSnapshot) {
	for skill, turns := range snap.Cooldowns {
		if turns <= 1 {
			delete(snap.Cooldowns, skill)
		} else {
			snap.Cooldowns[skill] = turns - 1
		}
	}
}

// settleVictory applies end-of-battle wear, computes and applies the
// reward bundle, materializes equippable loot, and resets to idle.
func (m *Manager) settleVictory(p *model.Player, snap *model.CombatSnapshot, turn *TurnResult) {
	turn.Victory = true
	turn.Log = append(turn.Log, fmt.Sprintf("%s foi derrotado!", snap.MonsterName))

	turn.BrokenSlots = durability.ApplyBattleWear(p.Equipment, m.combat.BattleWear)
	for _, slot := range turn.BrokenSlots {
		turn.Log = append(turn.Log, fmt.Sprintf("Seu equipamento quebrou: %s", slot))
	}

	tmpl := data.GetMonsterTemplate(snap.MonsterID)
	reward := combat.CalculateReward(m.rng, tmpl, m.rates)
	p.XP += reward.XP
	p.Currency += reward.Currency
	if reward.XP > 0 || reward.Currency > 0 {
		turn.Log = append(turn.Log, fmt.Sprintf("Você ganhou %d XP e %d moedas.", reward.XP, reward.Currency))
	}

	for _, drop := range reward.Items {
		m.deliverDrop(p, tmpl, drop, turn)
	}

	if snap.Trial {
		p.TrialsCompleted++
		turn.Log = append(turn.Log, "Você provou seu valor diante do guardião!")
	}

	turn.Reward = &reward
	p.State = model.StateIdle
	p.Details = model.ActionDetails{}
}

// deliverDrop routes one loot stack: equippable bases materialize as
// generated instances in the bag, everything else stacks in the
// inventory.
func (m *Manager) deliverDrop(p *model.Player, tmpl *data.MonsterTemplate, drop model.ItemDrop, turn *TurnResult) {
	base := data.GetItemBase(drop.BaseID)
	if base == nil || base.Slot == "" {
		p.AddItem(drop.BaseID, drop.Count)
		turn.Log = append(turn.Log, fmt.Sprintf("Saque: %s ×%d", drop.BaseID, drop.Count))
		return
	}

	rarity := model.RarityComum
	for _, entry := range tmpl.Drops {
		if entry.BaseID == drop.BaseID && entry.Rarity != "" {
			rarity = entry.Rarity
			break
		}
	}

	for i := int32(0); i < drop.Count; i++ {
		item, err := m.gen.Generate(m.rng, drop.BaseID, rarity, p.Class, p.Level)
		if err != nil {
			slog.Error("generating loot item", "base", drop.BaseID, "err", err)
			continue
		}
		p.Bag = append(p.Bag, item)
		turn.Log = append(turn.Log, fmt.Sprintf("Saque: %s (%s)", base.Name, item.Rarity))
	}
}

// settleDefeat applies wear, the out-of-safe-region XP penalty, revives
// the player at 1 HP and resets to idle.
func (m *Manager) settleDefeat(p *model.Player, snap *model.CombatSnapshot, turn *TurnResult) {
	turn.Defeat = true
	turn.Log = append(turn.Log, fmt.Sprintf("Você foi derrotado por %s...", snap.MonsterName))

	turn.BrokenSlots = durability.ApplyBattleWear(p.Equipment, m.combat.BattleWear)
	for _, slot := range turn.BrokenSlots {
		turn.Log = append(turn.Log, fmt.Sprintf("Seu equipamento quebrou: %s", slot))
	}

	if !snap.SafeRegion && m.combat.DefeatXPPenaltyPercent > 0 {
		penalty := p.XP * int64(m.combat.DefeatXPPenaltyPercent) / 100
		if penalty > 0 {
			p.XP -= penalty
			turn.Log = append(turn.Log, fmt.Sprintf("Você perdeu %d XP.", penalty))
		}
	}

	p.CurrentHP = 1
	p.State = model.StateIdle
	p.Details = model.ActionDetails{}
}
