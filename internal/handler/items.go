package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// Query parameter names for item listings
const (
	QueryParamSearch     = "search"
	QueryParamGame       = "game"
	QueryParamCategory   = "category"
	QueryParamCompletion = "completion"
	QueryParamCompare    = "compare"
	QueryParamLang       = "lang"
)

// ItemListQuery is the validated form of the listing filters
type ItemListQuery struct {
	Search     string `json:"search" validate:"max=100"`
	Game       string `json:"game" validate:"game"`
	Category   string `json:"category" validate:"category"`
	Completion string `json:"completion" validate:"completion_filter"`
	Lang       string `json:"lang" validate:"max=35"`
}

// ItemView is a catalog item localized for the caller
type ItemView struct {
	domain.Item
	DisplayName        string `json:"displayName"`
	DisplayDescription string `json:"displayDescription,omitempty"`
	Shared             bool   `json:"shared"`
	Completed          bool   `json:"completed"`
}

// ItemListResponse is the body of GET /items
type ItemListResponse struct {
	Lang  string     `json:"lang"`
	Count int        `json:"count"`
	Items []ItemView `json:"items"`
}

// HytaleIDsResponse is the body of GET /items/hytale-ids
type HytaleIDsResponse struct {
	Lang   string                  `json:"lang"`
	Groups []catalog.HytaleIDGroup `json:"groups"`
}

// ItemHandler serves the read-only item catalog
type ItemHandler struct {
	catalog     *catalog.Catalog
	completions completion.Service
}

// NewItemHandler creates an item handler. completions decorates listings
// with the caller's completion state.
func NewItemHandler(c *catalog.Catalog, completions completion.Service) *ItemHandler {
	return &ItemHandler{catalog: c, completions: completions}
}

// HandleList lists items matching the search, game, category, completion and compare filters
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ItemListQuery{
		Search:     q.Get(QueryParamSearch),
		Game:       q.Get(QueryParamGame),
		Category:   q.Get(QueryParamCategory),
		Completion: q.Get(QueryParamCompletion),
		Lang:       q.Get(QueryParamLang),
	}
	if err := validateOrRespond(w, &params, ErrMsgInvalidQuery); err != nil {
		return
	}

	lang := requestLanguage(r)
	completed := h.completedLookup(r)

	items := h.catalog.Filter(catalog.Query{
		Search:     params.Search,
		Game:       domain.Game(params.Game),
		Category:   domain.Category(params.Category),
		Completion: domain.CompletionFilter(params.Completion),
		Compare:    GetBoolQueryParam(r, QueryParamCompare),
	}, completed)

	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, h.view(item, lang, completed))
	}

	respondJSON(w, http.StatusOK, ItemListResponse{Lang: lang, Count: len(views), Items: views})
}

// HandleGet returns one item by id
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := h.catalog.Get(id)
	if err != nil {
		respondServiceError(w, r, "get item", err)
		return
	}
	respondJSON(w, http.StatusOK, h.view(item, requestLanguage(r), h.completedLookup(r)))
}

// HandleSummary returns item counts per game and category
func (h *ItemHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Summarize())
}

// HandleHytaleIDs returns the engine identifier reference, grouped by category
func (h *ItemHandler) HandleHytaleIDs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HytaleIDsResponse{
		Lang:   requestLanguage(r),
		Groups: h.catalog.HytaleIDs(r.URL.Query().Get(QueryParamSearch)),
	})
}

func (h *ItemHandler) view(item domain.Item, lang string, completed catalog.CompletionLookup) ItemView {
	return ItemView{
		Item:               item,
		DisplayName:        item.DisplayName(lang),
		DisplayDescription: item.DisplayDescription(lang),
		Shared:             h.catalog.IsShared(item),
		Completed:          completed != nil && completed(item.ID),
	}
}

// completedLookup returns the caller's completion membership, or nil for
// anonymous callers. A store failure degrades to the cached set.
func (h *ItemHandler) completedLookup(r *http.Request) catalog.CompletionLookup {
	userID := auth.UserID(r.Context())
	if userID == "" || h.completions == nil {
		return nil
	}
	set, err := h.completions.Session(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgSessionLoadFailed, "error", err)
	}
	return set.Has
}

func requestLanguage(r *http.Request) string {
	return catalog.ResolveLanguage(r.URL.Query().Get(QueryParamLang), r.Header.Get("Accept-Language"))
}
