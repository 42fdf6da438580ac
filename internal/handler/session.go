package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/HarvestCodex_Go/internal/auth"
	"github.com/osse101/HarvestCodex_Go/internal/completion"
	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/logger"
)

// SessionResponse is the caller's completion session after sign-in
type SessionResponse struct {
	UserID    string         `json:"user_id"`
	Count     int            `json:"count"`
	Completed completion.Set `json:"completed"`
	Stale     bool           `json:"stale,omitempty"`
}

// SessionHandler starts and ends completion sessions for signed-in users
type SessionHandler struct {
	completions completion.Service
}

// NewSessionHandler creates a session handler
func NewSessionHandler(completions completion.Service) *SessionHandler {
	return &SessionHandler{completions: completions}
}

// HandleLogin rebuilds the caller's completed set from the store. When the
// store cannot be read the cached set, possibly empty, is returned as stale.
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	if userID == "" {
		respondServiceError(w, r, "login", domain.ErrUnauthenticated)
		return
	}

	set, err := h.completions.Login(r.Context(), userID)
	stale := false
	if err != nil {
		if !errors.Is(err, domain.ErrCompletionFetchFailed) {
			respondServiceError(w, r, "login", err)
			return
		}
		logger.FromContext(r.Context()).Warn(LogMsgServingStaleSet, "operation", "login", "error", err)
		stale = true
	}

	respondJSON(w, http.StatusOK, SessionResponse{UserID: userID, Count: set.Len(), Completed: set, Stale: stale})
}

// HandleLogout clears the caller's cached set. Anonymous calls succeed.
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.completions.Logout(r.Context(), auth.UserID(r.Context()))
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignedOut})
}
