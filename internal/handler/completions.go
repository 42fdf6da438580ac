package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/catalog"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// RecentCompletionsLimit caps the recent rows returned with the completed set
const RecentCompletionsLimit = 10

// CompletionsResponse is the caller's completed set. Stale is set when the
// store could not be read and the cached set was served instead.
type CompletionsResponse struct {
	Count     int                         `json:"count"`
	Completed completion.Set              `json:"completed"`
	Recent    []domain.UserItemCompletion `json:"recent,omitempty"`
	Stale     bool                        `json:"stale,omitempty"`
}

// BatchRequest marks many items completed or incomplete at once
type BatchRequest struct {
	ItemIDs   []string `json:"item_ids" validate:"required,min=1,max=500,dive,required,max=64"`
	Completed *bool    `json:"completed" validate:"required"`
}

// CompletionHandler serves per-user completion tracking. Mutations by
// anonymous callers succeed without effect and report applied=false.
type CompletionHandler struct {
	completions completion.Service
	catalog     *catalog.Catalog
}

// NewCompletionHandler creates a completion handler
func NewCompletionHandler(completions completion.Service, c *catalog.Catalog) *CompletionHandler {
	return &CompletionHandler{completions: completions, catalog: c}
}

// HandleList returns the caller's completed item ids and the most recently
// completed rows
func (h *CompletionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	set, stale, ok := h.session(w, r, userID, "list completions")
	if !ok {
		return
	}

	resp := CompletionsResponse{Count: set.Len(), Completed: set, Stale: stale}
	if userID != "" && !stale {
		recent, err := h.completions.Recent(r.Context(), userID, RecentCompletionsLimit)
		if err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgRecentLoadFailed, "error", err)
		}
		resp.Recent = recent
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleProgress returns completion totals overall, per category and per game
func (h *CompletionHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	set, _, ok := h.session(w, r, auth.UserID(r.Context()), "completion progress")
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.catalog.Progress(set.Has))
}

// session loads the caller's set. A failed store read serves the cached set
// and reports it stale; any other error is written to w.
func (h *CompletionHandler) session(w http.ResponseWriter, r *http.Request, userID, op string) (completion.Set, bool, bool) {
	set, err := h.completions.Session(r.Context(), userID)
	switch {
	case err == nil:
		return set, false, true
	case errors.Is(err, domain.ErrCompletionFetchFailed):
		logger.FromContext(r.Context()).Warn(LogMsgServingStaleSet, "operation", op, "error", err)
		return set, true, true
	default:
		respondServiceError(w, r, op, err)
		return set, false, false
	}
}

// HandleToggle flips one item's completion
func (h *CompletionHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgItemIDRequired)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgToggleRequested, "item_id", itemID)

	result, err := h.completions.ToggleItemCompletion(r.Context(), auth.UserID(r.Context()), itemID)
	if err != nil {
		respondServiceError(w, r, "toggle completion", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleBatch marks every listed item completed or incomplete. Items whose
// write failed are rolled back individually and listed in failed.
func (h *CompletionHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Batch completion"); err != nil {
		return
	}

	userID := auth.UserID(r.Context())
	log := logger.FromContext(r.Context())
	log.Debug(LogMsgBatchRequested, "count", len(req.ItemIDs), "completed", *req.Completed)

	var (
		result completion.BatchResult
		err    error
	)
	if *req.Completed {
		result, err = h.completions.MarkItemsAsCompleted(r.Context(), userID, req.ItemIDs)
	} else {
		result, err = h.completions.MarkItemsAsIncomplete(r.Context(), userID, req.ItemIDs)
	}
	if err != nil {
		respondServiceError(w, r, "batch completion", err)
		return
	}

	if len(result.Failed) > 0 {
		log.Warn(LogMsgBatchPartialFailure, "failed", len(result.Failed), "applied", len(result.Applied))
	}
	respondJSON(w, http.StatusOK, result)
}
