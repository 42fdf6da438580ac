package catalog

import (
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/utils"
)

// CompletionLookup reports whether the caller has completed an item.
// A nil lookup means nothing is completed.
type CompletionLookup func(itemID string) bool

// Query narrows a catalog listing. Zero values mean "no filter".
type Query struct {
	Search     string
	Game       domain.Game
	Category   domain.Category
	Completion domain.CompletionFilter
	Compare    bool
}

// Filter returns matching items in catalog order. Search matches the English
// or localized name, ignoring case and accents. Compare keeps only items whose
// name exists in both games.
func (c *Catalog) Filter(q Query, completed CompletionLookup) []domain.Item {
	needle := foldKey(q.Search)
	out := make([]domain.Item, 0, len(c.items))

	for i, item := range c.items {
		if needle != "" && !c.keys[i].matchesName(needle) {
			continue
		}
		if q.Game != "" && item.Game != q.Game {
			continue
		}
		if q.Category != "" && item.Category != q.Category {
			continue
		}
		if q.Compare && !c.IsShared(item) {
			continue
		}
		if !matchesCompletion(q.Completion, isCompleted(completed, item.ID)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func isCompleted(completed CompletionLookup, itemID string) bool {
	return completed != nil && completed(itemID)
}

func matchesCompletion(filter domain.CompletionFilter, done bool) bool {
	switch filter {
	case domain.CompletionFilterCompleted:
		return done
	case domain.CompletionFilterIncomplete:
		return !done
	default:
		return true
	}
}

// Summary counts items per game and category
type Summary struct {
	Total       int                                     `json:"total"`
	ByGame      map[domain.Game]int                     `json:"by_game"`
	ByCategory  map[domain.Game]map[domain.Category]int `json:"by_category"`
	SharedNames int                                     `json:"shared_names"`
}

// Summarize counts the catalog contents
func (c *Catalog) Summarize() Summary {
	s := Summary{
		Total:       len(c.items),
		ByGame:      make(map[domain.Game]int, len(domain.AllGames)),
		ByCategory:  make(map[domain.Game]map[domain.Category]int, len(domain.AllGames)),
		SharedNames: len(c.sharedNames),
	}
	for _, item := range c.items {
		s.ByGame[item.Game]++
		if s.ByCategory[item.Game] == nil {
			s.ByCategory[item.Game] = make(map[domain.Category]int)
		}
		s.ByCategory[item.Game][item.Category]++
	}
	return s
}

// HytaleIDGroup is the engine identifier reference for one category
type HytaleIDGroup struct {
	Category domain.Category `json:"category"`
	Items    []domain.Item   `json:"items"`
}

// HytaleIDs lists Hytale items that carry an engine identifier, grouped by
// category in display order. Search also matches the identifier itself.
func (c *Catalog) HytaleIDs(search string) []HytaleIDGroup {
	needle := foldKey(search)
	byCategory := make(map[domain.Category][]domain.Item)

	for i, item := range c.items {
		if item.Game != domain.GameHytale || item.HytaleID == "" {
			continue
		}
		if needle != "" && !c.keys[i].matchesAny(needle) {
			continue
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]HytaleIDGroup, 0, len(byCategory))
	for _, category := range domain.AllCategories {
		if items, ok := byCategory[category]; ok {
			groups = append(groups, HytaleIDGroup{Category: category, Items: items})
		}
	}
	return groups
}

// Progress computes completion totals overall, per category and per game.
// Completed ids that are not in the catalog are ignored.
func (c *Catalog) Progress(completed CompletionLookup) domain.CompletionProgress {
	p := domain.CompletionProgress{
		Total:      len(c.items),
		ByCategory: make(map[domain.Category]domain.CountPair),
		ByGame:     make(map[domain.Game]domain.CountPair),
	}

	for _, item := range c.items {
		cat := p.ByCategory[item.Category]
		game := p.ByGame[item.Game]
		cat.Total++
		game.Total++
		if isCompleted(completed, item.ID) {
			p.Completed++
			cat.Completed++
			game.Completed++
		}
		p.ByCategory[item.Category] = cat
		p.ByGame[item.Game] = game
	}

	p.Percent = utils.Percent(p.Completed, p.Total)
	return p
}
