package simulator

import (
	"math"

	"github.com/osse101/HarvestCodex_Go/internal/utils"
)

// SpiritMessage is an advisory message key shown alongside comfort results
type SpiritMessage string

const (
	MsgMonoculture  SpiritMessage = "msgMonoculture"
	MsgBarren       SpiritMessage = "msgBarren"
	MsgWaterFeature SpiritMessage = "msgWaterFeature"
	MsgElderSpirit  SpiritMessage = "msgElderSpirit"
)

// ComfortInputs describe a farm area. Nominal ranges: crops 0-20, decor 0-100.
type ComfortInputs struct {
	UniqueCrops     int  `json:"unique_crops"`
	DecorValue      int  `json:"decor_value"`
	HasWaterFeature bool `json:"has_water_feature"`
	IsNight         bool `json:"is_night"`
}

// SpiritSpawnRate is the comfort score and the spirit spawning it allows.
// SpawnChance is a percentage rounded to two decimals.
type SpiritSpawnRate struct {
	ComfortLevel int             `json:"comfort_level"`
	SpawnChance  float64         `json:"spawn_chance"`
	MaxSpirits   int             `json:"max_spirits"`
	Messages     []SpiritMessage `json:"messages"`
}

// CalculateComfort scores a farm area and derives spirit spawning from it.
// Night applies its multiplier and extra spirits whether or not the comfort
// threshold was reached. Messages follow check order, not severity.
func CalculateComfort(in ComfortInputs) SpiritSpawnRate {
	variety := min(VarietySoftCap, in.UniqueCrops)*VarietyPointsPerCrop +
		max(0, in.UniqueCrops-VarietySoftCap)*VarietyPointsPastCap
	decor := math.Min(MaxDecorScore, float64(in.DecorValue)*DecorPointsPerValue)
	water := 0
	if in.HasWaterFeature {
		water = WaterFeatureBonus
	}

	comfort := min(MaxComfortLevel, int(math.Floor(float64(variety)+decor+float64(water))))

	spawnChance := 0.0
	maxSpirits := 0
	if comfort >= SpawnComfortThreshold {
		spawnChance = float64(comfort-SpawnComfortThreshold) * SpawnChancePerComfort
		maxSpirits = comfort/ComfortPerSpirit + 1
	}

	if in.IsNight {
		spawnChance *= NightSpawnMultiplier
		maxSpirits += NightExtraSpirits
	}

	messages := make([]SpiritMessage, 0, 4)
	if in.UniqueCrops < MonocultureCropThreshold {
		messages = append(messages, MsgMonoculture)
	}
	if in.DecorValue < BarrenDecorThreshold {
		messages = append(messages, MsgBarren)
	}
	if in.HasWaterFeature {
		messages = append(messages, MsgWaterFeature)
	}
	if comfort > ElderSpiritComfortLevel && in.IsNight {
		messages = append(messages, MsgElderSpirit)
	}

	return SpiritSpawnRate{
		ComfortLevel: comfort,
		SpawnChance:  utils.RoundTo(spawnChance*100, SpawnChancePrecision),
		MaxSpirits:   maxSpirits,
		Messages:     messages,
	}
}
