package data

import "github.com/Eldorabotpy/eldora-engine/internal/model"

// ItemBase is the catalog template an item instance is generated from.
// Slot is empty for materials and consumables (non-equippable bases).
type ItemBase struct {
	ID   string
	Name string
	Slot string

	// MaxDurability overrides the default [20,20] pair when > 0.
	MaxDurability int32

	// Dismantle maps material base id → count returned when the item is
	// broken down.
	Dismantle map[string]int32
}

var itemBaseTable = map[string]*ItemBase{
	// Weapons
	"adaga_enferrujada": {ID: "adaga_enferrujada", Name: "Adaga Enferrujada", Slot: model.SlotWeapon,
		Dismantle: map[string]int32{"minerio_ferro": 1}},
	"espada_ferro": {ID: "espada_ferro", Name: "Espada de Ferro", Slot: model.SlotWeapon,
		Dismantle: map[string]int32{"minerio_ferro": 2}},
	"espada_aco": {ID: "espada_aco", Name: "Espada de Aço", Slot: model.SlotWeapon, MaxDurability: 30,
		Dismantle: map[string]int32{"minerio_ferro": 3}},
	"cajado_carvalho": {ID: "cajado_carvalho", Name: "Cajado de Carvalho", Slot: model.SlotWeapon,
		Dismantle: map[string]int32{"madeira_rara": 2}},

	// Armor
	"peitoral_couro": {ID: "peitoral_couro", Name: "Peitoral de Couro", Slot: model.SlotChest,
		Dismantle: map[string]int32{"pele_de_lobo": 2}},
	"peitoral_aco": {ID: "peitoral_aco", Name: "Peitoral de Aço", Slot: model.SlotChest, MaxDurability: 40,
		Dismantle: map[string]int32{"minerio_ferro": 4}},
	"elmo_ferro":      {ID: "elmo_ferro", Name: "Elmo de Ferro", Slot: model.SlotHead, Dismantle: map[string]int32{"minerio_ferro": 2}},
	"calcas_couro":    {ID: "calcas_couro", Name: "Calças de Couro", Slot: model.SlotLegs, Dismantle: map[string]int32{"pele_de_lobo": 1}},
	"botas_couro":     {ID: "botas_couro", Name: "Botas de Couro", Slot: model.SlotBoots, Dismantle: map[string]int32{"pele_de_lobo": 1}},
	"luvas_couro":     {ID: "luvas_couro", Name: "Luvas de Couro", Slot: model.SlotGloves, Dismantle: map[string]int32{"pele_de_lobo": 1}},
	"colar_osso":      {ID: "colar_osso", Name: "Colar de Osso", Slot: model.SlotNeck},
	"anel_prata":      {ID: "anel_prata", Name: "Anel de Prata", Slot: model.SlotRing},
	"brinco_ametista": {ID: "brinco_ametista", Name: "Brinco de Ametista", Slot: model.SlotEarring},

	// Materials (no slot, never generated with stats)
	"couro_rasgado":      {ID: "couro_rasgado", Name: "Couro Rasgado"},
	"pele_de_lobo":       {ID: "pele_de_lobo", Name: "Pele de Lobo"},
	"pele_de_urso":       {ID: "pele_de_urso", Name: "Pele de Urso"},
	"minerio_ferro":      {ID: "minerio_ferro", Name: "Minério de Ferro"},
	"madeira_rara":       {ID: "madeira_rara", Name: "Madeira Rara"},
	"essencia_espectral": {ID: "essencia_espectral", Name: "Essência Espectral"},
}

// GetItemBase returns the base template for the given id, nil if unknown.
func GetItemBase(id string) *ItemBase {
	return itemBaseTable[id]
}

// classPrimaryAttr maps player class → the damage attribute its weapons and
// jewelry roll as primary.
var classPrimaryAttr = map[string]string{
	"guerreiro": model.AttrForca,
	"cacador":   model.AttrForca,
	"mago":      model.AttrInteligencia,
	"clerigo":   model.AttrInteligencia,
}

// ClassPrimaryAttribute returns the class damage attribute, defaulting to
// forca for unknown classes.
func ClassPrimaryAttribute(class string) string {
	if attr, ok := classPrimaryAttr[class]; ok {
		return attr
	}
	return model.AttrForca
}

// slotPrimaryAttr maps equip slot → primary stat. Weapon and jewelry slots
// map to the owner's class damage attribute and are handled separately.
var slotPrimaryAttr = map[string]string{
	model.SlotHead:   model.AttrVitalidade,
	model.SlotChest:  model.AttrVitalidade,
	model.SlotLegs:   model.AttrVitalidade,
	model.SlotNeck:   model.AttrVitalidade,
	model.SlotBoots:  model.AttrAgilidade,
	model.SlotGloves: model.AttrSorte,
}

// classPrimarySlots are the slots whose primary stat is the owner's class
// damage attribute.
var classPrimarySlots = map[string]bool{
	model.SlotWeapon:  true,
	model.SlotRing:    true,
	model.SlotEarring: true,
}

// PrimaryStatForSlot returns the primary stat rolled for the slot, given
// the owner's class. ok is false for slots with no primary-stat mapping
// (e.g. materials).
func PrimaryStatForSlot(slot, ownerClass string) (attr string, ok bool) {
	if classPrimarySlots[slot] {
		return ClassPrimaryAttribute(ownerClass), true
	}
	attr, ok = slotPrimaryAttr[slot]
	return attr, ok
}
