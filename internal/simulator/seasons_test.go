package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowthRate(t *testing.T) {
	tests := []struct {
		name       string
		season     Season
		biome      Biome
		greenhouse bool
		expected   float64
	}{
		{"winter plains outdoors", SeasonWinter, BiomePlains, false, 0.4},
		{"summer desert outdoors", SeasonSummer, BiomeDesert, false, 1.6},
		{"autumn snow outdoors", SeasonAutumn, BiomeSnow, false, 0.8},
		{"spring forest outdoors", SeasonSpring, BiomeForest, false, 1.2},
		{"winter snow outdoors", SeasonWinter, BiomeSnow, false, 0.8},
		{"winter greenhouse is exactly one", SeasonWinter, BiomeSnow, true, 1.0},
		{"summer greenhouse boost", SeasonSummer, BiomeSnow, true, 1.32},
		{"autumn greenhouse ignores biome", SeasonAutumn, BiomeDesert, true, 1.21},
		{"spring greenhouse", SeasonSpring, BiomePlains, true, 1.1},
		{"unknown biome adds nothing", SeasonSummer, Biome("swamp"), false, 1.2},
		{"unknown season floors at minimum", Season("monsoon"), BiomePlains, false, MinGrowthRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateGrowthRate(tt.season, tt.biome, tt.greenhouse))
		})
	}
}

func TestSeasonsTable(t *testing.T) {
	assert.Equal(t, 1.0, Seasons[SeasonSpring].GrowthMultiplier)
	assert.Equal(t, 1.2, Seasons[SeasonSummer].GrowthMultiplier)
	assert.Equal(t, 1.1, Seasons[SeasonAutumn].GrowthMultiplier)
	assert.Equal(t, 0.5, Seasons[SeasonWinter].GrowthMultiplier)

	for _, season := range AllSeasons {
		assert.Len(t, Seasons[season].WeatherEvents, 3, season)
	}
}

func TestBiomeModifiersWithinBalanceRange(t *testing.T) {
	for _, biome := range AllBiomes {
		for _, season := range AllSeasons {
			mod := BiomeModifiers[biome][season]
			assert.GreaterOrEqual(t, mod, -0.3)
			assert.LessOrEqual(t, mod, 0.4)
		}
	}
}

func TestGrowthTable(t *testing.T) {
	rows := GrowthTable()

	assert.Len(t, rows, len(AllSeasons)*len(AllBiomes))
	assert.Equal(t, SeasonSpring, rows[0].Season)
	assert.Equal(t, BiomePlains, rows[0].Biome)

	last := rows[len(rows)-1]
	assert.Equal(t, SeasonWinter, last.Season)
	assert.Equal(t, BiomeSnow, last.Biome)
	assert.Equal(t, 0.8, last.Outdoor)
	assert.Equal(t, 1.0, last.Greenhouse)
}

func TestSeasonAndBiomeValidity(t *testing.T) {
	assert.True(t, SeasonAutumn.IsValid())
	assert.False(t, Season("fall").IsValid())
	assert.True(t, BiomeDesert.IsValid())
	assert.False(t, Biome("ocean").IsValid())
}
