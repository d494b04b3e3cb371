package data

import (
	"time"

	"github.com/Eldorabotpy/eldora-engine/internal/model"
)

// RecipeTemplate is one crafting recipe resolved by the working state:
// inputs removed up front, output produced at completion.
type RecipeTemplate struct {
	ID       string
	Name     string
	Inputs   map[string]int32
	Output   string
	Count    int32
	Rarity   model.Rarity
	Duration time.Duration
}

var recipeTable = map[string]*RecipeTemplate{
	"forjar_espada_ferro": {
		ID: "forjar_espada_ferro", Name: "Forjar Espada de Ferro",
		Inputs:   map[string]int32{"minerio_ferro": 3, "madeira_rara": 1},
		Output:   "espada_ferro", Count: 1, Rarity: model.RarityBom,
		Duration: 30 * time.Minute,
	},
	"costurar_botas_couro": {
		ID: "costurar_botas_couro", Name: "Costurar Botas de Couro",
		Inputs:   map[string]int32{"pele_de_lobo": 2, "couro_rasgado": 2},
		Output:   "botas_couro", Count: 1, Rarity: model.RarityComum,
		Duration: 15 * time.Minute,
	},
	"forjar_peitoral_aco": {
		ID: "forjar_peitoral_aco", Name: "Forjar Peitoral de Aço",
		Inputs:   map[string]int32{"minerio_ferro": 6, "pele_de_urso": 1},
		Output:   "peitoral_aco", Count: 1, Rarity: model.RarityRaro,
		Duration: 2 * time.Hour,
	},
}

// GetRecipeTemplate returns the recipe for the given id, nil if unknown.
func GetRecipeTemplate(id string) *RecipeTemplate {
	return recipeTable[id]
}

// DismantleDuration is how long breaking down a single item takes.
// Batch dismantling scales linearly with item count.
const DismantleDuration = 5 * time.Minute
