package model

// Rarity is the ordered item rarity tier. Tier names are the catalog keys
// of the original game data and are kept verbatim.
type Rarity string

const (
	RarityComum    Rarity = "comum"
	RarityBom      Rarity = "bom"
	RarityRaro     Rarity = "raro"
	RarityEpico    Rarity = "epico"
	RarityLendario Rarity = "lendario"
)

// rarityOrder maps each tier to its position in the ordering, lowest first.
var rarityOrder = map[Rarity]int{
	RarityComum:    0,
	RarityBom:      1,
	RarityRaro:     2,
	RarityEpico:    3,
	RarityLendario: 4,
}

// IsValid reports whether r is a known rarity tier.
func (r Rarity) IsValid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// Order returns the tier position (0 = lowest). Unknown tiers order as the
// lowest tier.
func (r Rarity) Order() int {
	return rarityOrder[r]
}

// Rarities returns all tiers in ascending order.
func Rarities() []Rarity {
	return []Rarity{RarityComum, RarityBom, RarityRaro, RarityEpico, RarityLendario}
}
