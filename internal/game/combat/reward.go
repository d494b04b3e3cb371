package combat

import (
	"math"

	"github.com/Eldorabotpy/eldora-engine/internal/config"
	"github.com/Eldorabotpy/eldora-engine/internal/data"
	"github.com/Eldorabotpy/eldora-engine/internal/model"
	"github.com/Eldorabotpy/eldora-engine/internal/rng"
)

// RewardMultiplier folds the configured rates and every independent bonus
// source into one factor. Sources stack multiplicatively: two +50% bonuses
// yield ×2.25, not ×2.
func RewardMultiplier(base float64, rates config.Rates, extraBonuses ...float64) float64 {
	mult := base
	if mult <= 0 {
		mult = 1.0
	}
	if rates.EventBonus > 0 {
		mult *= 1.0 + rates.EventBonus
	}
	if rates.PremiumBonus > 0 {
		mult *= 1.0 + rates.PremiumBonus
	}
	for _, b := range extraBonuses {
		if b > 0 {
			mult *= 1.0 + b
		}
	}
	return mult
}

// CalculateReward computes the XP, currency and loot for defeating the
// monster. XP and currency scale by the stacked reward multiplier; each
// drop entry rolls independently (chance, then count in [min,max]).
//
// extraBonuses are additive fractions from further independent sources
// (class affinity, guild perks); each stacks as its own ×(1+bonus) factor.
// The bundle is transient: computed once per victory, applied to the
// player record by the caller, then discarded.
func CalculateReward(src rng.Source, monster *data.MonsterTemplate, rates config.Rates, extraBonuses ...float64) model.RewardBundle {
	if monster == nil {
		return model.RewardBundle{}
	}

	xpMult := RewardMultiplier(rates.XPMultiplier, rates, extraBonuses...)
	curMult := RewardMultiplier(rates.CurrencyMultiplier, rates, extraBonuses...)

	bundle := model.RewardBundle{
		XP:       int64(math.Round(float64(monster.XP) * xpMult)),
		Currency: int64(math.Round(float64(monster.Currency) * curMult)),
	}

	chanceMult := rates.DropChance
	if chanceMult <= 0 {
		chanceMult = 1.0
	}
	amountMult := rates.DropAmount
	if amountMult <= 0 {
		amountMult = 1.0
	}

	for _, drop := range monster.Drops {
		chance := drop.Chance * chanceMult
		if chance <= 0 {
			continue
		}
		if chance < 100 && src.Float64()*100.0 >= chance {
			continue
		}

		minCount := drop.Min
		maxCount := drop.Max
		if minCount <= 0 {
			minCount = 1
		}
		if maxCount < minCount {
			maxCount = minCount
		}

		count := minCount
		if maxCount > minCount {
			count = int32(src.IntN(int(maxCount-minCount+1))) + minCount
		}

		count = int32(float64(count) * amountMult)
		if count <= 0 {
			count = 1
		}

		bundle.Items = append(bundle.Items, model.ItemDrop{BaseID: drop.BaseID, Count: count})
	}

	return bundle
}
