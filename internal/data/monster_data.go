// Package data holds the static game catalogs: monster templates, item
// bases, skill definitions, rarity tables and region flags.
//
// Catalogs are read-only lookup tables keyed by string id. Accessors return
// nil (or false) for unknown keys — "not found" is a normal result here,
// never an error and never a panic.
package data

import "github.com/Eldorabotpy/eldora-engine/internal/model"

// DropEntry is one loot roll on a monster: chance in percent, count range,
// and the rarity the generated item rolls at when the base is equippable.
type DropEntry struct {
	BaseID string
	Chance float64
	Min    int32
	Max    int32
	Rarity model.Rarity
}

// MonsterTemplate is the catalog stat block of one monster.
type MonsterTemplate struct {
	ID    string
	Name  string
	Level int32

	Attack     int32
	Defense    int32
	Initiative int32
	Luck       int32
	MaxHP      int32

	Region string

	// Victory rewards before rate multipliers.
	XP       int64
	Currency int64
	Drops    []DropEntry
}

// Stats returns the normalized combat stat view of the template.
func (m *MonsterTemplate) Stats() model.CombatantStats {
	return model.NormalizeStats(model.CombatantStats{
		Role:       model.RoleMonster,
		Attack:     m.Attack,
		Defense:    m.Defense,
		Initiative: m.Initiative,
		Luck:       m.Luck,
		MaxHP:      m.MaxHP,
	})
}

var monsterTable = map[string]*MonsterTemplate{
	"rato_gigante": {
		ID: "rato_gigante", Name: "Rato Gigante", Level: 2,
		Attack: 8, Defense: 2, Initiative: 6, Luck: 3, MaxHP: 30,
		Region: "vila_eldora", XP: 15, Currency: 5,
		Drops: []DropEntry{
			{BaseID: "couro_rasgado", Chance: 60, Min: 1, Max: 2},
		},
	},
	"lobo_cinzento": {
		ID: "lobo_cinzento", Name: "Lobo Cinzento", Level: 5,
		Attack: 18, Defense: 6, Initiative: 14, Luck: 5, MaxHP: 70,
		Region: "floresta_umbria", XP: 45, Currency: 12,
		Drops: []DropEntry{
			{BaseID: "pele_de_lobo", Chance: 70, Min: 1, Max: 3},
			{BaseID: "botas_couro", Chance: 8, Min: 1, Max: 1, Rarity: model.RarityComum},
		},
	},
	"goblin_batedor": {
		ID: "goblin_batedor", Name: "Goblin Batedor", Level: 8,
		Attack: 26, Defense: 10, Initiative: 20, Luck: 8, MaxHP: 110,
		Region: "floresta_umbria", XP: 80, Currency: 30,
		Drops: []DropEntry{
			{BaseID: "minerio_ferro", Chance: 45, Min: 1, Max: 2},
			{BaseID: "adaga_enferrujada", Chance: 10, Min: 1, Max: 1, Rarity: model.RarityBom},
		},
	},
	"urso_da_floresta": {
		ID: "urso_da_floresta", Name: "Urso da Floresta", Level: 12,
		Attack: 40, Defense: 18, Initiative: 8, Luck: 6, MaxHP: 220,
		Region: "floresta_umbria", XP: 160, Currency: 55,
		Drops: []DropEntry{
			{BaseID: "pele_de_urso", Chance: 80, Min: 1, Max: 2},
			{BaseID: "peitoral_couro", Chance: 12, Min: 1, Max: 1, Rarity: model.RarityRaro},
		},
	},
	"espectro_da_cripta": {
		ID: "espectro_da_cripta", Name: "Espectro da Cripta", Level: 18,
		Attack: 62, Defense: 24, Initiative: 26, Luck: 14, MaxHP: 380,
		Region: "cripta_sombria", XP: 340, Currency: 120,
		Drops: []DropEntry{
			{BaseID: "essencia_espectral", Chance: 50, Min: 1, Max: 2},
			{BaseID: "anel_prata", Chance: 6, Min: 1, Max: 1, Rarity: model.RarityEpico},
		},
	},
	"guardiao_ancestral": {
		ID: "guardiao_ancestral", Name: "Guardião Ancestral", Level: 25,
		Attack: 95, Defense: 40, Initiative: 18, Luck: 10, MaxHP: 900,
		Region: "santuario_da_evolucao", XP: 0, Currency: 0,
	},
}

// GetMonsterTemplate returns the template for the given id, nil if unknown.
func GetMonsterTemplate(id string) *MonsterTemplate {
	return monsterTable[id]
}

// EvolutionTrialMonsterID is the guardian fought in the evolution trial.
const EvolutionTrialMonsterID = "guardiao_ancestral"

// safeRegions are zones where defeat carries no XP penalty.
var safeRegions = map[string]bool{
	"vila_eldora":           true,
	"santuario_da_evolucao": true,
}

// IsSafeRegion reports whether the region is flagged safe.
func IsSafeRegion(region string) bool {
	return safeRegions[region]
}
