package simulator

// Quality model constants
const (
	ScorePerPlayerLevel    = 5.0
	ScorePerFertilizerTier = 40.0
	ScorePerEssence        = 0.5

	GoldScoreOffset  = 50.0
	GoldScoreDivisor = 200.0
	MaxGoldChance    = 0.7

	SilverScoreDivisor = 150.0
	MaxSilverChance    = 0.9

	MinIridiumWorkbenchTier = 2
	BoostedWorkbenchTier    = 3
	IridiumScoreThreshold   = 100.0
	IridiumScoreDivisor     = 200.0
	IridiumWorkbenchBoost   = 1.5
	MaxIridiumChance        = 0.4
)

// Seasonal growth constants
const (
	GreenhouseWinterRate = 1.0
	GreenhouseBoost      = 1.1
	MinGrowthRate        = 0.1
	GrowthRatePrecision  = 2
)

// Comfort model constants
const (
	VarietySoftCap        = 10
	VarietyPointsPerCrop  = 3
	VarietyPointsPastCap  = 1
	DecorPointsPerValue   = 0.5
	MaxDecorScore         = 50.0
	WaterFeatureBonus     = 10
	MaxComfortLevel       = 100
	SpawnComfortThreshold = 20
	SpawnChancePerComfort = 0.002
	ComfortPerSpirit      = 20
	NightSpawnMultiplier  = 2.5
	NightExtraSpirits     = 2
	SpawnChancePrecision  = 2

	MonocultureCropThreshold = 5
	BarrenDecorThreshold     = 20
	ElderSpiritComfortLevel  = 80
)

// Processing model constants
const (
	KegValueMultiplier     = 3.0
	KegOutputName          = "Wine / Juice"
	KegProcessingMinutes   = 10000
	JarValueMultiplier     = 2.0
	JarValueBonus          = 50.0
	JarOutputName          = "Jelly / Pickles"
	JarProcessingMinutes   = 4000
	ArtisanPerkMultiplier  = 1.4
	ProfitRatioPrecision   = 2
	MinOpportunityCostBase = 1.0
)
