package data

import "github.com/Eldorabotpy/eldora-engine/internal/model"

// SkillTemplate is the catalog definition of one active skill: resource
// cost, cooldown, and the sparse effect set layered onto the damage
// resolver.
type SkillTemplate struct {
	ID            string
	Name          string
	ManaCost      int32
	CooldownTurns int32
	Effects       model.SkillEffects
}

var skillTable = map[string]*SkillTemplate{
	"golpe_poderoso": {
		ID: "golpe_poderoso", Name: "Golpe Poderoso",
		ManaCost: 10, CooldownTurns: 2,
		Effects: model.SkillEffects{
			DamageMultiplier: 1.8,
		},
	},
	"laminas_gemeas": {
		ID: "laminas_gemeas", Name: "Lâminas Gêmeas",
		ManaCost: 14, CooldownTurns: 3,
		Effects: model.SkillEffects{
			MultiHit:         2,
			DamageMultiplier: 0.9,
		},
	},
	"perfuracao": {
		ID: "perfuracao", Name: "Perfuração",
		ManaCost: 12, CooldownTurns: 3,
		Effects: model.SkillEffects{
			DamageMultiplier:   1.3,
			DefensePenetration: 0.5,
		},
	},
	"bola_de_fogo": {
		ID: "bola_de_fogo", Name: "Bola de Fogo",
		ManaCost: 18, CooldownTurns: 2,
		Effects: model.SkillEffects{
			DamageMultiplier: 1.5,
			DamageType:       model.DamageTypeMagic,
		},
	},
	"olho_da_tempestade": {
		ID: "olho_da_tempestade", Name: "Olho da Tempestade",
		ManaCost: 16, CooldownTurns: 4,
		Effects: model.SkillEffects{
			DamageMultiplier: 1.2,
			BonusCritChance:  20,
		},
	},
	"furia_do_condenado": {
		ID: "furia_do_condenado", Name: "Fúria do Condenado",
		ManaCost: 20, CooldownTurns: 5,
		Effects: model.SkillEffects{
			DamageMultiplier: 1.4,
			LowHPDamageBoost: 0.5,
		},
	},
}

// GetSkillTemplate returns the skill definition for the given id, nil if
// unknown.
func GetSkillTemplate(id string) *SkillTemplate {
	return skillTable[id]
}
