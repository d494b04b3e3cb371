package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Eldorabotpy/eldora-engine/internal/game/itemgen"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// The JSONB columns must round-trip a full record losslessly: a generated
// item reloaded from storage carries the exact same attribute set.
func TestPlayerDocumentRoundTrip(t *testing.T) {
	gen := itemgen.New()
	src := rng.Seeded(42)

	weapon, err := gen.Generate(src, "espada_aco", model.RarityLendario, "guerreiro", 12)
	require.NoError(t, err)
	bagged, err := gen.Generate(src, "botas_couro", model.RarityRaro, "guerreiro", 12)
	require.NoError(t, err)

	p := &model.Player{
		ID: 7, Name: "Aldric", Class: "guerreiro", Level: 12,
		XP: 3400, Currency: 120,
		CurrentHP: 88, MaxHP: 120, CurrentMP: 30, MaxMP: 50,
		BaseAttack: 40, BaseDefense: 15, BaseLuck: 8,
		Equipment: map[string]*model.Item{model.SlotWeapon: weapon},
		Inventory: map[string]int32{"minerio_ferro": 6, "pele_de_lobo": 2},
		Bag:       []*model.Item{bagged},
		Skills:    []string{"golpe_poderoso", "perfuracao"},
		State:     model.StateWorking,
		Details: model.ActionDetails{Work: &model.WorkDetails{
			RecipeID:    "forjar_espada_ferro",
			Consumed:    map[string]int32{"minerio_ferro": 3, "madeira_rara": 1},
			CompletesAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
		}},
	}

	for _, doc := range []any{p.Equipment, p.Inventory, p.Bag, p.Skills, p.Details} {
		raw, err := json.Marshal(doc)
		require.NoError(t, err)
		require.NotEmpty(t, raw)
	}

	raw, err := json.Marshal(p.Equipment)
	require.NoError(t, err)
	var equipment map[string]*model.Item
	require.NoError(t, json.Unmarshal(raw, &equipment))
	require.Equal(t, p.Equipment, equipment, "generated attributes must survive storage")

	raw, err = json.Marshal(p.Details)
	require.NoError(t, err)
	var details model.ActionDetails
	require.NoError(t, json.Unmarshal(raw, &details))
	require.Equal(t, p.Details, details)
}

// Combat snapshots persist mid-fight: monster stats, battle log and
// cooldowns must all survive the trip.
func TestCombatSnapshotRoundTrip(t *testing.T) {
	details := model.ActionDetails{Combat: &model.CombatSnapshot{
		MonsterID:   "urso_da_floresta",
		MonsterName: "Urso da Floresta",
		MonsterStats: model.CombatantStats{
			Role: model.RoleMonster, Attack: 40, Defense: 18,
			Initiative: 8, Luck: 6, MaxHP: 220, CurrentHP: 220,
		},
		MonsterHP: 148,
		BattleLog: []string{"Você encontrou Urso da Floresta!", "Você causou 72 de dano"},
		Cooldowns: map[string]int32{"golpe_poderoso": 2},
	}}

	raw, err := json.Marshal(details)
	require.NoError(t, err)

	var got model.ActionDetails
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, details, got)
}
