package simulator

import (
	"math"

	"github.com/osse101/HarvestCodex_Go/internal/utils"
)

// Season of the in-game year
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Biome a farm is placed in
type Biome string

const (
	BiomePlains Biome = "plains"
	BiomeForest Biome = "forest"
	BiomeDesert Biome = "desert"
	BiomeSnow   Biome = "snow"
)

// AllSeasons lists seasons in calendar order
var AllSeasons = []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}

// AllBiomes lists biomes in display order
var AllBiomes = []Biome{BiomePlains, BiomeForest, BiomeDesert, BiomeSnow}

// IsValid reports whether s is a known season
func (s Season) IsValid() bool {
	_, ok := Seasons[s]
	return ok
}

// IsValid reports whether b is a known biome
func (b Biome) IsValid() bool {
	_, ok := BiomeModifiers[b]
	return ok
}

// SeasonConfig describes a season's growth behaviour and weather
type SeasonConfig struct {
	Name             string   `json:"name"`
	GrowthMultiplier float64  `json:"growth_multiplier"`
	WeatherEvents    []string `json:"weather_events"`
	VisualColor      string   `json:"visual_color"`
}

// Seasons is the balance table for each season. Read-only.
var Seasons = map[Season]SeasonConfig{
	SeasonSpring: {
		Name:             "Spring",
		GrowthMultiplier: 1.0,
		WeatherEvents:    []string{"Rain", "Pollen Breeze", "Sun"},
		VisualColor:      "text-emerald-400",
	},
	SeasonSummer: {
		Name:             "Summer",
		GrowthMultiplier: 1.2,
		WeatherEvents:    []string{"Heatwave", "Clear Sky", "Thunderstorm"},
		VisualColor:      "text-amber-400",
	},
	SeasonAutumn: {
		Name:             "Autumn",
		GrowthMultiplier: 1.1,
		WeatherEvents:    []string{"Windy", "Rain", "Falling Leaves"},
		VisualColor:      "text-orange-400",
	},
	SeasonWinter: {
		Name:             "Winter",
		GrowthMultiplier: 0.5,
		WeatherEvents:    []string{"Snow", "Blizzard", "Cold Snap"},
		VisualColor:      "text-cyan-400",
	},
}

// BiomeModifiers are signed growth offsets per biome and season. A missing
// season entry counts as 0. Read-only.
var BiomeModifiers = map[Biome]map[Season]float64{
	BiomePlains: {SeasonSpring: 0.1, SeasonSummer: 0.0, SeasonAutumn: 0.0, SeasonWinter: -0.1},
	BiomeForest: {SeasonSpring: 0.2, SeasonSummer: -0.1, SeasonAutumn: 0.2, SeasonWinter: -0.2},
	BiomeDesert: {SeasonSpring: 0.0, SeasonSummer: 0.4, SeasonAutumn: 0.1, SeasonWinter: 0.1},
	BiomeSnow:   {SeasonSpring: -0.2, SeasonSummer: -0.1, SeasonAutumn: -0.3, SeasonWinter: 0.3},
}

// CalculateGrowthRate returns the crop growth multiplier for a season and biome.
// A greenhouse ignores the biome: winter becomes exactly 1.0 and other seasons
// get a 10% boost. Outdoors the rate never drops below 0.1.
func CalculateGrowthRate(season Season, biome Biome, hasGreenhouse bool) float64 {
	baseRate := Seasons[season].GrowthMultiplier

	if hasGreenhouse {
		if season == SeasonWinter {
			return GreenhouseWinterRate
		}
		return utils.RoundTo(baseRate*GreenhouseBoost, GrowthRatePrecision)
	}

	biomeMod := BiomeModifiers[biome][season]
	return utils.RoundTo(math.Max(MinGrowthRate, baseRate+biomeMod), GrowthRatePrecision)
}

// GrowthTableRow is one season/biome cell of the full growth table
type GrowthTableRow struct {
	Season     Season  `json:"season"`
	Biome      Biome   `json:"biome"`
	Outdoor    float64 `json:"outdoor"`
	Greenhouse float64 `json:"greenhouse"`
}

// GrowthTable evaluates every season and biome combination, in calendar then biome order
func GrowthTable() []GrowthTableRow {
	rows := make([]GrowthTableRow, 0, len(AllSeasons)*len(AllBiomes))
	for _, season := range AllSeasons {
		for _, biome := range AllBiomes {
			rows = append(rows, GrowthTableRow{
				Season:     season,
				Biome:      biome,
				Outdoor:    CalculateGrowthRate(season, biome, false),
				Greenhouse: CalculateGrowthRate(season, biome, true),
			})
		}
	}
	return rows
}
