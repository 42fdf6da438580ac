package simulator

import (
	"math"

	"github.com/osse101/HarvestCodex_Go/internal/utils"
)

// Processor is an artisan machine that turns a crop into a product
type Processor string

const (
	ProcessorKeg          Processor = "keg"
	ProcessorPreservesJar Processor = "preserves_jar"
)

// IsValid reports whether p is a known processor
func (p Processor) IsValid() bool {
	return p == ProcessorKeg || p == ProcessorPreservesJar
}

// ProcessingInput is a crop going into a processor
type ProcessingInput struct {
	Processor      Processor   `json:"processor"`
	InputBaseValue float64     `json:"input_base_value"`
	InputQuality   QualityTier `json:"input_quality"`
	HasArtisanPerk bool        `json:"has_artisan_perk"`
}

// ProcessingOutput is the resulting product and how it compares to selling the raw crop
type ProcessingOutput struct {
	Name                  string  `json:"name"`
	Value                 int     `json:"value"`
	ProcessingTimeMinutes int     `json:"processing_time_minutes"`
	ProfitRatio           float64 `json:"profit_ratio"`
}

// CalculateProcessingOutput values the processed product. The profit ratio
// compares it against selling the raw crop at its quality price. A base value
// of zero or less is costed as 1 so the ratio stays finite.
func CalculateProcessingOutput(in ProcessingInput) ProcessingOutput {
	var (
		outputValue float64
		name        string
		minutes     int
	)

	if in.Processor == ProcessorKeg {
		outputValue = in.InputBaseValue * KegValueMultiplier
		name = KegOutputName
		minutes = KegProcessingMinutes
	} else {
		outputValue = in.InputBaseValue*JarValueMultiplier + JarValueBonus
		name = JarOutputName
		minutes = JarProcessingMinutes
	}

	if in.HasArtisanPerk {
		outputValue *= ArtisanPerkMultiplier
	}

	costBase := in.InputBaseValue
	if costBase <= 0 {
		costBase = MinOpportunityCostBase
	}
	opportunityCost := costBase * QualityMultiplier(in.InputQuality)

	return ProcessingOutput{
		Name:                  name,
		Value:                 int(math.Floor(outputValue)),
		ProcessingTimeMinutes: minutes,
		ProfitRatio:           utils.RoundTo(outputValue/opportunityCost, ProfitRatioPrecision),
	}
}
