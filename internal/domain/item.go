package domain

import "strings"

// Game identifies which game an item originates from
type Game string

const (
	GameStardew Game = "stardew"
	GameHytale  Game = "hytale"
)

// Category groups catalog items for filtering
type Category string

const (
	CategoryCrops              Category = "crops"
	CategorySeeds              Category = "seeds"
	CategoryAnimalProducts     Category = "animal_products"
	CategoryProcessingMachines Category = "processing_machines"
	CategoryArtisanGoods       Category = "artisan_goods"
	CategoryDishes             Category = "dishes"
	CategoryForage             Category = "forage"
	CategoryMaterials          Category = "materials"
)

// Language codes supported for display names
const (
	LangEnglish    = "en"
	LangPortuguese = "pt"
)

// AllGames lists every game in display order
var AllGames = []Game{GameStardew, GameHytale}

// AllCategories lists every category in display order
var AllCategories = []Category{
	CategoryCrops,
	CategorySeeds,
	CategoryAnimalProducts,
	CategoryProcessingMachines,
	CategoryArtisanGoods,
	CategoryDishes,
	CategoryForage,
	CategoryMaterials,
}

// IsValid reports whether g is a known game
func (g Game) IsValid() bool {
	return g == GameStardew || g == GameHytale
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Item is a static catalog entry. Items are read-only reference data.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NamePt        string   `json:"namePt,omitempty"`
	Game          Game     `json:"game"`
	Category      Category `json:"category"`
	Description   string   `json:"description,omitempty"`
	DescriptionPt string   `json:"descriptionPt,omitempty"`
	Source        string   `json:"source,omitempty"`
	Value         *int     `json:"value,omitempty"`
	HytaleID      string   `json:"hytaleId,omitempty"`
}

// DisplayName returns the localized name, falling back to English
func (i Item) DisplayName(lang string) string {
	if lang == LangPortuguese && i.NamePt != "" {
		return i.NamePt
	}
	return i.Name
}

// DisplayDescription returns the localized description, falling back to English
func (i Item) DisplayDescription(lang string) string {
	if lang == LangPortuguese && i.DescriptionPt != "" {
		return i.DescriptionPt
	}
	return i.Description
}

// NormalizedName is the key used to match the same item across games
func (i Item) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(i.Name))
}

// CompletionFilter narrows a listing by the caller's completion state
type CompletionFilter string

const (
	CompletionFilterAll        CompletionFilter = "all"
	CompletionFilterCompleted  CompletionFilter = "completed"
	CompletionFilterIncomplete CompletionFilter = "incomplete"
)

// IsValid reports whether f is a known completion filter (empty means all)
func (f CompletionFilter) IsValid() bool {
	switch f {
	case "", CompletionFilterAll, CompletionFilterCompleted, CompletionFilterIncomplete:
		return true
	}
	return false
}
