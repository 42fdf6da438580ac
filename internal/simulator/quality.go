package simulator

import (
	"math"

	"github.com/osse101/HarvestCodex_Go/internal/utils"
)

// QualityTier is one of the four ordered crop quality grades
type QualityTier string

const (
	QualityRegular QualityTier = "regular"
	QualitySilver  QualityTier = "silver"
	QualityGold    QualityTier = "gold"
	QualityIridium QualityTier = "iridium"
)

// AllQualityTiers lists tiers from lowest to highest
var AllQualityTiers = []QualityTier{QualityRegular, QualitySilver, QualityGold, QualityIridium}

// IsValid reports whether q is a known tier
func (q QualityTier) IsValid() bool {
	switch q {
	case QualityRegular, QualitySilver, QualityGold, QualityIridium:
		return true
	}
	return false
}

// QualityInputs are the farming conditions that drive crop quality.
// Nominal ranges: level 0-10, tiers 0-3, essence 0-100.
type QualityInputs struct {
	PlayerLevel      int `json:"player_level"`
	FertilizerTier   int `json:"fertilizer_tier"`
	WorkbenchTier    int `json:"workbench_tier"`
	EssenceCollected int `json:"essence_collected"`
}

// QualityProbabilities is the chance of harvesting each tier
type QualityProbabilities struct {
	Regular float64 `json:"regular"`
	Silver  float64 `json:"silver"`
	Gold    float64 `json:"gold"`
	Iridium float64 `json:"iridium"`
}

// Sum returns the total probability mass
func (p QualityProbabilities) Sum() float64 {
	return p.Regular + p.Silver + p.Gold + p.Iridium
}

// Score combines the inputs into the single quality score the tiers are derived from
func (in QualityInputs) Score() float64 {
	return float64(in.PlayerLevel)*ScorePerPlayerLevel +
		float64(in.FertilizerTier)*ScorePerFertilizerTier +
		float64(in.EssenceCollected)*ScorePerEssence
}

// CalculateQualityProbabilities maps farming conditions to tier odds.
// Higher tiers are carved out of lower ones in a fixed order (iridium, gold, silver)
// and regular takes the remainder floored at 0. The result is not renormalized.
func CalculateQualityProbabilities(in QualityInputs) QualityProbabilities {
	score := in.Score()

	gold := utils.Clamp((score-GoldScoreOffset)/GoldScoreDivisor, 0, MaxGoldChance)
	silver := utils.Clamp(score/SilverScoreDivisor, 0, MaxSilverChance)

	iridium := 0.0
	if in.WorkbenchTier >= MinIridiumWorkbenchTier && score > IridiumScoreThreshold {
		iridium = (score - IridiumScoreThreshold) / IridiumScoreDivisor
		if in.WorkbenchTier == BoostedWorkbenchTier {
			iridium *= IridiumWorkbenchBoost
		}
	}
	iridium = math.Min(MaxIridiumChance, iridium)

	gold = math.Max(0, gold-iridium)
	silver = math.Max(0, silver-gold-iridium)
	regular := math.Max(0, 1-(silver+gold+iridium))

	return QualityProbabilities{
		Regular: regular,
		Silver:  silver,
		Gold:    gold,
		Iridium: iridium,
	}
}

var qualityColors = map[QualityTier]string{
	QualitySilver:  "text-slate-300",
	QualityGold:    "text-amber-400",
	QualityIridium: "text-purple-400",
}

// QualityColor returns the display color class for a tier
func QualityColor(tier QualityTier) string {
	if color, ok := qualityColors[tier]; ok {
		return color
	}
	return "text-white/60"
}

var qualityMultipliers = map[QualityTier]float64{
	QualityRegular: 1.0,
	QualitySilver:  1.25,
	QualityGold:    1.5,
	QualityIridium: 2.0,
}

// QualityMultiplier returns the sell price multiplier of a tier (1.0 for unknown tiers)
func QualityMultiplier(tier QualityTier) float64 {
	if mult, ok := qualityMultipliers[tier]; ok {
		return mult
	}
	return 1.0
}
