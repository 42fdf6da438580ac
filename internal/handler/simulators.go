package handler

import (
	"net/http"

	"github.com/osse101/HarvestCodex_Go/internal/metrics"
	"github.com/osse101/HarvestCodex_Go/internal/simulator"
)

// Simulator names used in metrics labels
const (
	SimulatorQuality    = "quality"
	SimulatorSeasons    = "seasons"
	SimulatorComfort    = "comfort"
	SimulatorProcessing = "processing"
)

// QualityRequest carries the quality calculator inputs within the UI ranges
type QualityRequest struct {
	PlayerLevel      int `json:"player_level" validate:"min=0,max=10"`
	FertilizerTier   int `json:"fertilizer_tier" validate:"min=0,max=3"`
	WorkbenchTier    int `json:"workbench_tier" validate:"min=0,max=3"`
	EssenceCollected int `json:"essence_collected" validate:"min=0,max=100"`
}

// QualityResponse is the quality calculator result
type QualityResponse struct {
	Score         float64                          `json:"score"`
	Probabilities simulator.QualityProbabilities   `json:"probabilities"`
	Colors        map[simulator.QualityTier]string `json:"colors"`
}

// SeasonsRequest selects a season and biome
type SeasonsRequest struct {
	Season        string `json:"season" validate:"required,season"`
	Biome         string `json:"biome" validate:"required,biome"`
	HasGreenhouse bool   `json:"has_greenhouse"`
}

// SeasonsResponse is the growth calculator result
type SeasonsResponse struct {
	Season        simulator.Season       `json:"season"`
	Biome         simulator.Biome        `json:"biome"`
	HasGreenhouse bool                   `json:"has_greenhouse"`
	GrowthRate    float64                `json:"growth_rate"`
	Config        simulator.SeasonConfig `json:"config"`
}

// SeasonsTableResponse exposes the balance data behind the growth calculator
type SeasonsTableResponse struct {
	Seasons        map[simulator.Season]simulator.SeasonConfig      `json:"seasons"`
	BiomeModifiers map[simulator.Biome]map[simulator.Season]float64 `json:"biome_modifiers"`
	Growth         []simulator.GrowthTableRow                       `json:"growth"`
}

// ComfortRequest describes a farm area within the UI ranges
type ComfortRequest struct {
	UniqueCrops     int  `json:"unique_crops" validate:"min=0,max=20"`
	DecorValue      int  `json:"decor_value" validate:"min=0,max=100"`
	HasWaterFeature bool `json:"has_water_feature"`
	IsNight         bool `json:"is_night"`
}

// ProcessingRequest is a crop going into a processor
type ProcessingRequest struct {
	Processor      string  `json:"processor" validate:"required,processor"`
	InputBaseValue float64 `json:"input_base_value" validate:"gt=0,max=1000000"`
	InputQuality   string  `json:"input_quality" validate:"required,quality"`
	HasArtisanPerk bool    `json:"has_artisan_perk"`
}

// SimulatorHandler serves the four balance calculators. All are pure.
type SimulatorHandler struct{}

// NewSimulatorHandler creates a simulator handler
func NewSimulatorHandler() *SimulatorHandler {
	return &SimulatorHandler{}
}

// HandleQuality computes crop quality odds
func (h *SimulatorHandler) HandleQuality(w http.ResponseWriter, r *http.Request) {
	var req QualityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Quality simulation"); err != nil {
		return
	}

	in := simulator.QualityInputs(req)
	colors := make(map[simulator.QualityTier]string, len(simulator.AllQualityTiers))
	for _, tier := range simulator.AllQualityTiers {
		colors[tier] = simulator.QualityColor(tier)
	}

	metrics.SimulatorRuns.WithLabelValues(SimulatorQuality).Inc()
	respondJSON(w, http.StatusOK, QualityResponse{
		Score:         in.Score(),
		Probabilities: simulator.CalculateQualityProbabilities(in),
		Colors:        colors,
	})
}

// HandleSeasons computes the growth rate for a season and biome
func (h *SimulatorHandler) HandleSeasons(w http.ResponseWriter, r *http.Request) {
	var req SeasonsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Seasons simulation"); err != nil {
		return
	}

	season := simulator.Season(req.Season)
	biome := simulator.Biome(req.Biome)

	metrics.SimulatorRuns.WithLabelValues(SimulatorSeasons).Inc()
	respondJSON(w, http.StatusOK, SeasonsResponse{
		Season:        season,
		Biome:         biome,
		HasGreenhouse: req.HasGreenhouse,
		GrowthRate:    simulator.CalculateGrowthRate(season, biome, req.HasGreenhouse),
		Config:        simulator.Seasons[season],
	})
}

// HandleSeasonsTable returns the season and biome balance tables
func (h *SimulatorHandler) HandleSeasonsTable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SeasonsTableResponse{
		Seasons:        simulator.Seasons,
		BiomeModifiers: simulator.BiomeModifiers,
		Growth:         simulator.GrowthTable(),
	})
}

// HandleComfort computes spirit spawning for a farm area
func (h *SimulatorHandler) HandleComfort(w http.ResponseWriter, r *http.Request) {
	var req ComfortRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Comfort simulation"); err != nil {
		return
	}

	metrics.SimulatorRuns.WithLabelValues(SimulatorComfort).Inc()
	respondJSON(w, http.StatusOK, simulator.CalculateComfort(simulator.ComfortInputs(req)))
}

// HandleProcessing values a processed product
func (h *SimulatorHandler) HandleProcessing(w http.ResponseWriter, r *http.Request) {
	var req ProcessingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Processing simulation"); err != nil {
		return
	}

	metrics.SimulatorRuns.WithLabelValues(SimulatorProcessing).Inc()
	respondJSON(w, http.StatusOK, simulator.CalculateProcessingOutput(simulator.ProcessingInput{
		Processor:      simulator.Processor(req.Processor),
		InputBaseValue: req.InputBaseValue,
		InputQuality:   simulator.QualityTier(req.InputQuality),
		HasArtisanPerk: req.HasArtisanPerk,
	}))
}
