package data

import "github.com/Eldorabotpy/eldora-engine/internal/model"

// StatRange is the inclusive [Min,Max] roll range of one attribute at one
// rarity tier.
type StatRange struct {
	Min int32
	Max int32
}

// statRangeTable is the rarity-stratified roll table. Values scale strictly
// upward with tier. Every attribute in the affix pool (plus the class
// damage primaries) has a row at every tier.
var statRangeTable = map[model.Rarity]map[string]StatRange{
	model.RarityComum: {
		model.AttrForca:        {1, 4},
		model.AttrInteligencia: {1, 4},
		model.AttrFuria:        {1, 2},
		model.AttrDefesa:       {1, 3},
		model.AttrVitalidade:   {1, 3},
		model.AttrAgilidade:    {1, 3},
		model.AttrSorte:        {1, 2},
	},
	model.RarityBom: {
		model.AttrForca:        {3, 7},
		model.AttrInteligencia: {3, 7},
		model.AttrFuria:        {2, 4},
		model.AttrDefesa:       {2, 5},
		model.AttrVitalidade:   {2, 5},
		model.AttrAgilidade:    {2, 5},
		model.AttrSorte:        {2, 4},
	},
	model.RarityRaro: {
		model.AttrForca:        {6, 12},
		model.AttrInteligencia: {6, 12},
		model.AttrFuria:        {3, 7},
		model.AttrDefesa:       {4, 8},
		model.AttrVitalidade:   {4, 8},
		model.AttrAgilidade:    {4, 8},
		model.AttrSorte:        {3, 7},
	},
	model.RarityEpico: {
		model.AttrForca:        {10, 18},
		model.AttrInteligencia: {10, 18},
		model.AttrFuria:        {6, 11},
		model.AttrDefesa:       {7, 13},
		model.AttrVitalidade:   {7, 13},
		model.AttrAgilidade:    {7, 13},
		model.AttrSorte:        {6, 10},
	},
	model.RarityLendario: {
		model.AttrForca:        {16, 28},
		model.AttrInteligencia: {16, 28},
		model.AttrFuria:        {10, 17},
		model.AttrDefesa:       {12, 20},
		model.AttrVitalidade:   {12, 20},
		model.AttrAgilidade:    {12, 20},
		model.AttrSorte:        {9, 15},
	},
}

// GetStatRange returns the roll range for the attribute at the given
// rarity. ok is false when either key is unknown.
func GetStatRange(rarity model.Rarity, attr string) (StatRange, bool) {
	tier, ok := statRangeTable[rarity]
	if !ok {
		return StatRange{}, false
	}
	r, ok := tier[attr]
	return r, ok
}

// affixBudgetTable is the fixed number of secondary affixes per tier.
// Not randomized.
var affixBudgetTable = map[model.Rarity]int{
	model.RarityComum:    0,
	model.RarityBom:      1,
	model.RarityRaro:     2,
	model.RarityEpico:    3,
	model.RarityLendario: 4,
}

// GetAffixBudget returns the affix budget for the rarity, 0 for unknown
// tiers.
func GetAffixBudget(rarity model.Rarity) int {
	return affixBudgetTable[rarity]
}

// AffixPool is the class-agnostic shared pool secondary affixes are drawn
// from. Stable order; selection excludes the item's primary stat.
var AffixPool = []string{
	model.AttrFuria,
	model.AttrDefesa,
	model.AttrVitalidade,
	model.AttrAgilidade,
	model.AttrSorte,
}
