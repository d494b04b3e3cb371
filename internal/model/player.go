package model

// Equipment slot identifiers. Every slot wears independently at battle end.
const (
	SlotWeapon  = "weapon"
	SlotHead    = "head"
	SlotChest   = "chest"
	SlotLegs    = "legs"
	SlotBoots   = "boots"
	SlotGloves  = "gloves"
	SlotNeck    = "neck"
	SlotRing    = "ring"
	SlotEarring = "earring"
)

// EquipSlots lists every equipment slot in a stable order.
var EquipSlots = []string{
	SlotWeapon, SlotHead, SlotChest, SlotLegs, SlotBoots,
	SlotGloves, SlotNeck, SlotRing, SlotEarring,
}

// Item attribute vocabulary. Attribute names are the catalog keys of the
// original game data.
const (
	AttrForca        = "forca"        // weapon primary (fighter classes) → attack
	AttrInteligencia = "inteligencia" // weapon primary (caster classes) → attack
	AttrFuria        = "furia"        // affix → attack
	AttrDefesa       = "defesa"       // affix → defense
	AttrVitalidade   = "vitalidade"   // armor primary → max HP
	AttrAgilidade    = "agilidade"    // boots primary → initiative
	AttrSorte        = "sorte"        // gloves primary → luck
)

// HPPerVitality is the max-HP contribution per point of vitalidade.
const HPPerVitality int32 = 5

// Player is the typed subset of the persisted player record the engine
// reads and writes. Columns the engine does not model are owned by the
// persistence layer and pass through untouched.
type Player struct {
	ID    int64
	Name  string
	Class string
	Level int32

	XP       int64
	Currency int64

	CurrentHP int32
	MaxHP     int32
	CurrentMP int32
	MaxMP     int32

	// Base stats before equipment contribution.
	BaseAttack     int32
	BaseDefense    int32
	BaseInitiative int32
	BaseLuck       int32

	// Equipment maps slot → equipped item instance (nil slot = empty).
	Equipment map[string]*Item

	// Inventory maps item base id → stack count (materials and
	// consumables).
	Inventory map[string]int32

	// Bag holds generated item instances not currently equipped.
	Bag []*Item

	// Skills lists learned skill ids.
	Skills []string

	// TrialsCompleted counts won evolution trials.
	TrialsCompleted int32

	State   ActionState
	Details ActionDetails
}

// HasSkill reports whether the player has learned the given skill.
func (p *Player) HasSkill(skillID string) bool {
	for _, s := range p.Skills {
		if s == skillID {
			return true
		}
	}
	return false
}

// AddItem adds count of a base item to the inventory stack.
func (p *Player) AddItem(baseID string, count int32) {
	if count <= 0 {
		return
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int32)
	}
	p.Inventory[baseID] += count
}

// RemoveItem removes count of a base item, reporting whether the stack had
// enough. On false the inventory is unchanged.
func (p *Player) RemoveItem(baseID string, count int32) bool {
	if count <= 0 {
		return true
	}
	have := p.Inventory[baseID]
	if have < count {
		return false
	}
	if have == count {
		delete(p.Inventory, baseID)
	} else {
		p.Inventory[baseID] = have - count
	}
	return true
}

// CombatStats derives the normalized combat stat view from base stats plus
// every non-broken equipped item. Broken items stay equipped but contribute
// nothing.
//
// Attribute mapping: forca/inteligencia/furia → attack, defesa → defense,
// vitalidade → max HP (×HPPerVitality), agilidade → initiative,
// sorte → luck.
func (p *Player) CombatStats() CombatantStats {
	stats := CombatantStats{
		Role:       RolePlayer,
		Attack:     p.BaseAttack,
		Defense:    p.BaseDefense,
		Initiative: p.BaseInitiative,
		Luck:       p.BaseLuck,
		MaxHP:      p.MaxHP,
		CurrentHP:  p.CurrentHP,
	}

	for _, item := range p.Equipment {
		if item == nil || item.IsBroken() {
			continue
		}
		for name, attr := range item.Attributes {
			switch name {
			case AttrForca, AttrInteligencia, AttrFuria:
				stats.Attack += attr.Value
			case AttrDefesa:
				stats.Defense += attr.Value
			case AttrVitalidade:
				stats.MaxHP += attr.Value * HPPerVitality
			case AttrAgilidade:
				stats.Initiative += attr.Value
			case AttrSorte:
				stats.Luck += attr.Value
			}
		}
	}

	return NormalizeStats(stats)
}

// Equip places an item into its slot, returning the previously equipped
// item (nil if the slot was empty).
func (p *Player) Equip(item *Item) *Item {
	if item == nil || item.Slot == "" {
		return nil
	}
	if p.Equipment == nil {
		p.Equipment = make(map[string]*Item)
	}
	prev := p.Equipment[item.Slot]
	p.Equipment[item.Slot] = item
	return prev
}

// RestoreVitals sets HP and MP to their maximums.
func (p *Player) RestoreVitals() {
	p.CurrentHP = p.MaxHP
	p.CurrentMP = p.MaxMP
}

// Clone returns a deep copy of the record, including equipment, bag,
// inventory and the action details payload.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p

	cp.Equipment = make(map[string]*Item, len(p.Equipment))
	for slot, item := range p.Equipment {
		cp.Equipment[slot] = item.Clone()
	}
	cp.Inventory = make(map[string]int32, len(p.Inventory))
	for id, count := range p.Inventory {
		cp.Inventory[id] = count
	}
	cp.Bag = make([]*Item, len(p.Bag))
	for i, item := range p.Bag {
		cp.Bag[i] = item.Clone()
	}
	cp.Skills = append([]string(nil), p.Skills...)

	if p.Details.Combat != nil {
		snap := *p.Details.Combat
		snap.BattleLog = append([]string(nil), p.Details.Combat.BattleLog...)
		snap.Cooldowns = make(map[string]int32, len(p.Details.Combat.Cooldowns))
		for skill, turns := range p.Details.Combat.Cooldowns {
			snap.Cooldowns[skill] = turns
		}
		cp.Details.Combat = &snap
	}
	if p.Details.Work != nil {
		work := *p.Details.Work
		work.Consumed = make(map[string]int32, len(p.Details.Work.Consumed))
		for id, count := range p.Details.Work.Consumed {
			work.Consumed[id] = count
		}
		cp.Details.Work = &work
	}

	return &cp
}
